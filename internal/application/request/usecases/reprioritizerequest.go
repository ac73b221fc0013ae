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

type ReprioritizeRequestCommand struct {
	Actor     actor.Actor
	RequestID string
	Priority  int64
}

type ReprioritizeRequestResult struct {
	RequestID string `json:"request_id"`
	Priority  int64  `json:"priority"`
	Version   int64  `json:"version"`
}

// ReprioritizeRequestUseCase rewrites a request's queue rank. Lower values
// sort first; ties fall back to creation order.
type ReprioritizeRequestUseCase struct {
	requestRepo     request.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewReprioritizeRequestUseCase(
	requestRepo request.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *ReprioritizeRequestUseCase {
	return &ReprioritizeRequestUseCase{
		requestRepo:     requestRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ReprioritizeRequestUseCase) Execute(
	ctx context.Context,
	cmd ReprioritizeRequestCommand,
) (*ReprioritizeRequestResult, error) {
	uc.logger.Infow("executing reprioritize request use case",
		"request_id", cmd.RequestID,
		"actor_id", cmd.Actor.ID,
		"priority", cmd.Priority)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid reprioritize request command", "error", err)
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

	if err := request.VerifyCanReprioritize(cmd.Actor, r); err != nil {
		uc.logger.Warnw("reprioritize forbidden",
			"request_id", cmd.RequestID,
			"actor_id", cmd.Actor.ID)
		return nil, err
	}

	expectedVersion := r.Version()
	r.SetPriority(cmd.Priority)

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

	uc.logger.Infow("request reprioritized successfully",
		"request_id", r.ID(),
		"priority", cmd.Priority)

	return &ReprioritizeRequestResult{
		RequestID: r.ID(),
		Priority:  r.Priority(),
		Version:   r.Version(),
	}, nil
}

func (uc *ReprioritizeRequestUseCase) validateCommand(cmd ReprioritizeRequestCommand) error {
	if cmd.RequestID == "" {
		return errors.NewInvalidArgumentError("request ID is required")
	}
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	if cmd.Priority < 0 {
		return errors.NewInvalidArgumentError("priority must be non-negative")
	}
	return nil
}
