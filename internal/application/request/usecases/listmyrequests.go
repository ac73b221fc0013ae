package usecases

import (
	"context"

	"labdesk/internal/application/request/dto"
	"labdesk/internal/domain/actor"
	"labdesk/internal/domain/request"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type ListMyRequestsQuery struct {
	Actor    actor.Actor
	Status   string
	Page     int
	PageSize int
}

type ListMyRequestsResult struct {
	Requests []*dto.RequestDTO `json:"requests"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ListMyRequestsUseCase serves a student's own requests, newest first.
type ListMyRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListMyRequestsUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *ListMyRequestsUseCase {
	return &ListMyRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListMyRequestsUseCase) Execute(
	ctx context.Context,
	query ListMyRequestsQuery,
) (*ListMyRequestsResult, error) {
	if query.Actor.ID == "" {
		return nil, errors.NewInvalidArgumentError("actor ID is required")
	}
	if err := validatePageBounds(query.Page, query.PageSize); err != nil {
		return nil, err
	}

	creatorID := query.Actor.ID
	filter := request.Filter{
		CreatorID: &creatorID,
		Page:      query.Page,
		PageSize:  query.PageSize,
		Sort:      request.SortNewest,
	}

	if query.Status != "" {
		status, err := request.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewInvalidArgumentError(err.Error())
		}
		filter.Status = &status
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list own requests", "error", err, "creator_id", creatorID)
		return nil, errors.NewInternalError("failed to list requests")
	}

	return &ListMyRequestsResult{
		Requests: dto.ToRequestDTOs(requests),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
