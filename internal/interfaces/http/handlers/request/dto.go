package request

import (
	"labdesk/internal/application/request/usecases"
	"labdesk/internal/domain/actor"
)

type CreateRequestBody struct {
	Title        string `json:"title" binding:"required,min=3,max=255"`
	Description  string `json:"description" binding:"required,min=10,max=10000"`
	LabSessionID string `json:"lab_session_id,omitempty"`
	Metadata     string `json:"metadata,omitempty"`
}

func (b *CreateRequestBody) ToCommand(a actor.Actor) usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		Actor:        a,
		Title:        b.Title,
		Description:  b.Description,
		LabSessionID: b.LabSessionID,
		Metadata:     b.Metadata,
	}
}

type UpdateRequestBody struct {
	Title       string `json:"title" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"required,min=10,max=10000"`
}

type ReprioritizeRequestBody struct {
	Priority *int64 `json:"priority" binding:"required"`
}
