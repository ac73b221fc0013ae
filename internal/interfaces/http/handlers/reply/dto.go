package reply

import (
	"labdesk/internal/application/reply/usecases"
	"labdesk/internal/domain/actor"
)

type PostReplyBody struct {
	Message string `json:"message" binding:"required,max=5000"`
}

func (b *PostReplyBody) ToCommand(a actor.Actor, requestID string) usecases.PostReplyCommand {
	return usecases.PostReplyCommand{
		Actor:     a,
		RequestID: requestID,
		Message:   b.Message,
	}
}
