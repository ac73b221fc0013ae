package dto

import (
	"time"

	"labdesk/internal/domain/request"
)

type ReplyDTO struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	TAID      string    `json:"ta_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ToReplyDTO(r *request.Reply) *ReplyDTO {
	if r == nil {
		return nil
	}

	return &ReplyDTO{
		ID:        r.ID(),
		RequestID: r.RequestID(),
		TAID:      r.TAID(),
		Message:   r.Message(),
		CreatedAt: r.CreatedAt(),
	}
}

func ToReplyDTOs(replies []*request.Reply) []*ReplyDTO {
	dtos := make([]*ReplyDTO, 0, len(replies))
	for _, r := range replies {
		dtos = append(dtos, ToReplyDTO(r))
	}
	return dtos
}
