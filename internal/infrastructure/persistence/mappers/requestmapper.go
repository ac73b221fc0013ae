package mappers

import (
	"fmt"
	"time"

	"labdesk/internal/domain/request"
	"labdesk/internal/infrastructure/persistence/models"
	"labdesk/internal/shared/biztime"
)

func unixMilliPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := biztime.FromUnixMilli(*ms)
	return &t
}

// RequestMapper handles the conversion between request domain entities and
// persistence models.
type RequestMapper interface {
	ToModel(r *request.Request) *models.RequestModel
	ToDomain(model *models.RequestModel) (*request.Request, error)
	ReplyToModel(reply *request.Reply) *models.ReplyModel
	ReplyToDomain(model *models.ReplyModel) (*request.Reply, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.Request) *models.RequestModel {
	model := &models.RequestModel{
		ID:           r.ID(),
		Title:        r.Title(),
		Description:  r.Description(),
		CreatorID:    r.CreatorID(),
		LabSessionID: r.LabSessionID(),
		Status:       r.Status().String(),
		Priority:     r.Priority(),
		AssigneeID:   r.AssigneeID(),
		Metadata:     r.Metadata(),
		Version:      r.Version(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
		UpdatedAt:    r.UpdatedAt().UnixMilli(),
	}

	if r.ResolvedAt() != nil {
		resolved := r.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	status, err := request.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map request %s: %w", model.ID, err)
	}

	r, err := request.Reconstruct(
		model.ID,
		model.Title,
		model.Description,
		model.CreatorID,
		model.LabSessionID,
		status,
		model.Priority,
		model.AssigneeID,
		model.Metadata,
		model.Version,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
		unixMilliPtr(model.ResolvedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct request %s: %w", model.ID, err)
	}

	return r, nil
}

func (m *RequestMapperImpl) ReplyToModel(reply *request.Reply) *models.ReplyModel {
	return &models.ReplyModel{
		ID:        reply.ID(),
		RequestID: reply.RequestID(),
		TAID:      reply.TAID(),
		Message:   reply.Message(),
		CreatedAt: reply.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) ReplyToDomain(model *models.ReplyModel) (*request.Reply, error) {
	reply, err := request.ReconstructReply(
		model.ID,
		model.RequestID,
		model.TAID,
		model.Message,
		biztime.FromUnixMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct reply %s: %w", model.ID, err)
	}
	return reply, nil
}
