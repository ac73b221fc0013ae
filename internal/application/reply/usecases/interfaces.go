package usecases

import (
	"context"

	"labdesk/internal/application/reply/dto"
)

type PostReplyExecutor interface {
	Execute(ctx context.Context, cmd PostReplyCommand) (*dto.ReplyDTO, error)
}

type ListRepliesExecutor interface {
	Execute(ctx context.Context, query ListRepliesQuery) ([]*dto.ReplyDTO, error)
}

type ListRepliesPageExecutor interface {
	Execute(ctx context.Context, query ListRepliesPageQuery) (*ListRepliesPageResult, error)
}
