package usecases

import (
	"context"
	stderrors "errors"

	"labdesk/internal/application/reply/dto"
	"labdesk/internal/domain/request"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type ListRepliesQuery struct {
	RequestID string
}

// ListRepliesUseCase returns a request's full thread, oldest first.
type ListRepliesUseCase struct {
	requestRepo request.Repository
	replyRepo   request.ReplyRepository
	logger      logger.Interface
}

func NewListRepliesUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	logger logger.Interface,
) *ListRepliesUseCase {
	return &ListRepliesUseCase{
		requestRepo: requestRepo,
		replyRepo:   replyRepo,
		logger:      logger,
	}
}

func (uc *ListRepliesUseCase) Execute(
	ctx context.Context,
	query ListRepliesQuery,
) ([]*dto.ReplyDTO, error) {
	if query.RequestID == "" {
		return nil, errors.NewInvalidArgumentError("request ID is required")
	}

	if _, err := uc.requestRepo.GetByID(ctx, query.RequestID); err != nil {
		if stderrors.Is(err, request.ErrNotFound) {
			return nil, errors.NewNotFoundError("request not found")
		}
		uc.logger.Errorw("failed to load request", "error", err, "request_id", query.RequestID)
		return nil, errors.NewInternalError("failed to load request")
	}

	replies, err := uc.replyRepo.ListByRequest(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to list replies", "error", err, "request_id", query.RequestID)
		return nil, errors.NewInternalError("failed to list replies")
	}

	return dto.ToReplyDTOs(replies), nil
}
