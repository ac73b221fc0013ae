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

type ReleaseRequestCommand struct {
	Actor     actor.Actor
	RequestID string
}

type ReleaseRequestResult struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Version   int64  `json:"version"`
}

// ReleaseRequestUseCase undoes an assignment: the request returns to the
// queue at its original priority and becomes claimable again.
type ReleaseRequestUseCase struct {
	requestRepo     request.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewReleaseRequestUseCase(
	requestRepo request.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *ReleaseRequestUseCase {
	return &ReleaseRequestUseCase{
		requestRepo:     requestRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ReleaseRequestUseCase) Execute(
	ctx context.Context,
	cmd ReleaseRequestCommand,
) (*ReleaseRequestResult, error) {
	uc.logger.Infow("executing release request use case",
		"request_id", cmd.RequestID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid release request command", "error", err)
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

	if err := request.VerifyCanRelease(cmd.Actor, r); err != nil {
		uc.logger.Warnw("release forbidden",
			"request_id", cmd.RequestID,
			"actor_id", cmd.Actor.ID)
		return nil, err
	}

	expectedVersion := r.Version()

	if err := r.Release(); err != nil {
		uc.logger.Warnw("release rejected", "request_id", cmd.RequestID, "error", err)
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

	uc.logger.Infow("request released successfully",
		"request_id", r.ID(),
		"released_by", cmd.Actor.ID)

	return &ReleaseRequestResult{
		RequestID: r.ID(),
		Status:    r.Status().String(),
		Version:   r.Version(),
	}, nil
}

func (uc *ReleaseRequestUseCase) validateCommand(cmd ReleaseRequestCommand) error {
	if cmd.RequestID == "" {
		return errors.NewInvalidArgumentError("request ID is required")
	}
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	return nil
}
