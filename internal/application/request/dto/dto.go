package dto

import (
	"time"

	"labdesk/internal/domain/request"
)

type RequestDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreatorID    string     `json:"creator_id"`
	LabSessionID string     `json:"lab_session_id,omitempty"`
	Status       string     `json:"status"`
	Priority     int64      `json:"priority"`
	AssigneeID   *string    `json:"assignee_id"`
	Metadata     string     `json:"metadata,omitempty"`
	Version      int64      `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ResolvedAt   *time.Time `json:"resolved_at"`
}

func ToRequestDTO(r *request.Request) *RequestDTO {
	if r == nil {
		return nil
	}

	return &RequestDTO{
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
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
		ResolvedAt:   r.ResolvedAt(),
	}
}

func ToRequestDTOs(requests []*request.Request) []*RequestDTO {
	dtos := make([]*RequestDTO, 0, len(requests))
	for _, r := range requests {
		dtos = append(dtos, ToRequestDTO(r))
	}
	return dtos
}
