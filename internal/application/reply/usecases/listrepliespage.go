package usecases

import (
	"context"
	stderrors "errors"

	"labdesk/internal/application/reply/dto"
	"labdesk/internal/domain/request"
	"labdesk/internal/shared/constants"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type ListRepliesPageQuery struct {
	RequestID string
	Page      int
	PageSize  int
}

type ListRepliesPageResult struct {
	Replies  []*dto.ReplyDTO `json:"replies"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ListRepliesPageUseCase returns one page of a request's thread, newest
// first. Page is zero-based; page size is capped at the shared maximum.
type ListRepliesPageUseCase struct {
	requestRepo request.Repository
	replyRepo   request.ReplyRepository
	logger      logger.Interface
}

func NewListRepliesPageUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	logger logger.Interface,
) *ListRepliesPageUseCase {
	return &ListRepliesPageUseCase{
		requestRepo: requestRepo,
		replyRepo:   replyRepo,
		logger:      logger,
	}
}

func (uc *ListRepliesPageUseCase) Execute(
	ctx context.Context,
	query ListRepliesPageQuery,
) (*ListRepliesPageResult, error) {
	if query.RequestID == "" {
		return nil, errors.NewInvalidArgumentError("request ID is required")
	}
	if query.Page < 0 {
		return nil, errors.NewInvalidArgumentError("page must be non-negative")
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		return nil, errors.NewInvalidArgumentError("page size must be between 1 and 100")
	}

	if _, err := uc.requestRepo.GetByID(ctx, query.RequestID); err != nil {
		if stderrors.Is(err, request.ErrNotFound) {
			return nil, errors.NewNotFoundError("request not found")
		}
		uc.logger.Errorw("failed to load request", "error", err, "request_id", query.RequestID)
		return nil, errors.NewInternalError("failed to load request")
	}

	replies, total, err := uc.replyRepo.ListPageByRequest(ctx, query.RequestID, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list replies", "error", err, "request_id", query.RequestID)
		return nil, errors.NewInternalError("failed to list replies")
	}

	return &ListRepliesPageResult{
		Replies:  dto.ToReplyDTOs(replies),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
