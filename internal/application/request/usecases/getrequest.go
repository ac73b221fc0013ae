package usecases

import (
	"context"
	stderrors "errors"

	"labdesk/internal/application/request/dto"
	"labdesk/internal/domain/actor"
	"labdesk/internal/domain/request"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type GetRequestQuery struct {
	Actor     actor.Actor
	RequestID string
}

type GetRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(
	ctx context.Context,
	query GetRequestQuery,
) (*dto.RequestDTO, error) {
	if query.RequestID == "" {
		return nil, errors.NewInvalidArgumentError("request ID is required")
	}
	if query.Actor.ID == "" {
		return nil, errors.NewInvalidArgumentError("actor ID is required")
	}

	r, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		if stderrors.Is(err, request.ErrNotFound) {
			return nil, errors.NewNotFoundError("request not found")
		}
		uc.logger.Errorw("failed to load request", "error", err, "request_id", query.RequestID)
		return nil, errors.NewInternalError("failed to load request")
	}

	if err := request.VerifyCanView(query.Actor, r); err != nil {
		uc.logger.Warnw("view forbidden",
			"request_id", query.RequestID,
			"actor_id", query.Actor.ID)
		return nil, err
	}

	return dto.ToRequestDTO(r), nil
}
