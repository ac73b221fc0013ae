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

type CancelRequestCommand struct {
	Actor     actor.Actor
	RequestID string
}

type CancelRequestResult struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Version   int64  `json:"version"`
}

type CancelRequestUseCase struct {
	requestRepo     request.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewCancelRequestUseCase(
	requestRepo request.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *CancelRequestUseCase {
	return &CancelRequestUseCase{
		requestRepo:     requestRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CancelRequestUseCase) Execute(
	ctx context.Context,
	cmd CancelRequestCommand,
) (*CancelRequestResult, error) {
	uc.logger.Infow("executing cancel request use case",
		"request_id", cmd.RequestID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid cancel request command", "error", err)
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

	if err := request.VerifyCanCancel(cmd.Actor, r); err != nil {
		uc.logger.Warnw("cancel forbidden",
			"request_id", cmd.RequestID,
			"actor_id", cmd.Actor.ID)
		return nil, err
	}

	expectedVersion := r.Version()

	if err := r.Cancel(); err != nil {
		uc.logger.Warnw("cancel rejected", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if err := uc.requestRepo.Update(ctx, r, expectedVersion); err != nil {
		switch {
		case stderrors.Is(err, request.ErrVersionConflict):
			return nil, errors.NewConflictError("request was modified concurrently")
		case stderrors.Is(err, request.ErrNotFound):
			return nil, errors.NewNotFoundError("request not found")
		default:
			uc.logger.Errorw("failed to update request", "error", err, "request_id", cmd.RequestID)
			return nil, errors.NewInternalError("failed to update request")
		}
	}

	publishRequestEvent(uc.eventDispatcher, uc.logger, request.EventTypeUpdated, r)

	uc.logger.Infow("request cancelled successfully", "request_id", r.ID())

	return &CancelRequestResult{
		RequestID: r.ID(),
		Status:    r.Status().String(),
		Version:   r.Version(),
	}, nil
}

func (uc *CancelRequestUseCase) validateCommand(cmd CancelRequestCommand) error {
	if cmd.RequestID == "" {
		return errors.NewInvalidArgumentError("request ID is required")
	}
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	return nil
}
