package usecases

import (
	"context"
	stderrors "errors"

	"labdesk/internal/domain/actor"
	"labdesk/internal/domain/request"
	"labdesk/internal/domain/shared/events"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type DeleteRequestCommand struct {
	Actor     actor.Actor
	RequestID string
}

type DeleteRequestResult struct {
	RequestID string `json:"request_id"`
	Deleted   bool   `json:"deleted"`
}

// DeleteRequestUseCase removes a request and its reply thread. Only the
// creator may delete, and only while the request is unassigned; status is
// deliberately not part of the guard.
type DeleteRequestUseCase struct {
	requestRepo     request.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewDeleteRequestUseCase(
	requestRepo request.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo:     requestRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(
	ctx context.Context,
	cmd DeleteRequestCommand,
) (*DeleteRequestResult, error) {
	uc.logger.Infow("executing delete request use case",
		"request_id", cmd.RequestID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid delete request command", "error", err)
		return nil, err
	}

	r, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		if stderrors.Is(err, request.ErrNotFound) {
			return nil, errors.NewNotFoundError("request not found")
		}
		uc.logger.Errorw("failed to load request", "error", err, "request_id", cmd.RequestID)
		return nil, errors.NewInternalError("failed to load request")
	}

	if err := request.VerifyCanDelete(cmd.Actor, r); err != nil {
		uc.logger.Warnw("delete forbidden",
			"request_id", cmd.RequestID,
			"actor_id", cmd.Actor.ID)
		return nil, err
	}

	if err := r.CanBeDeleted(); err != nil {
		uc.logger.Warnw("delete rejected", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if err := uc.requestRepo.Delete(ctx, cmd.RequestID); err != nil {
		if stderrors.Is(err, request.ErrNotFound) {
			return nil, errors.NewNotFoundError("request not found")
		}
		uc.logger.Errorw("failed to delete request", "error", err, "request_id", cmd.RequestID)
		return nil, errors.NewInternalError("failed to delete request")
	}

	publishRequestEvent(uc.eventDispatcher, uc.logger, request.EventTypeDeleted, r)

	uc.logger.Infow("request deleted successfully", "request_id", cmd.RequestID)

	return &DeleteRequestResult{
		RequestID: cmd.RequestID,
		Deleted:   true,
	}, nil
}

func (uc *DeleteRequestUseCase) validateCommand(cmd DeleteRequestCommand) error {
	if cmd.RequestID == "" {
		return errors.NewInvalidArgumentError("request ID is required")
	}
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	return nil
}
