package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"labdesk/internal/domain/actor"
	"labdesk/internal/domain/request"
	"labdesk/internal/domain/shared/events"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type ResolveRequestCommand struct {
	Actor     actor.Actor
	RequestID string
}

type ResolveRequestResult struct {
	RequestID  string `json:"request_id"`
	Status     string `json:"status"`
	Version    int64  `json:"version"`
	ResolvedAt string `json:"resolved_at"`
}

type ResolveRequestUseCase struct {
	requestRepo     request.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewResolveRequestUseCase(
	requestRepo request.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *ResolveRequestUseCase {
	return &ResolveRequestUseCase{
		requestRepo:     requestRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ResolveRequestUseCase) Execute(
	ctx context.Context,
	cmd ResolveRequestCommand,
) (*ResolveRequestResult, error) {
	uc.logger.Infow("executing resolve request use case",
		"request_id", cmd.RequestID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid resolve request command", "error", err)
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

	if err := request.VerifyCanResolve(cmd.Actor, r); err != nil {
		uc.logger.Warnw("resolve forbidden",
			"request_id", cmd.RequestID,
			"actor_id", cmd.Actor.ID)
		return nil, err
	}

	expectedVersion := r.Version()

	if err := r.Resolve(); err != nil {
		uc.logger.Warnw("resolve rejected", "request_id", cmd.RequestID, "error", err)
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

	publishRequestEvent(uc.eventDispatcher, uc.logger, request.EventTypeResolved, r)

	uc.logger.Infow("request resolved successfully",
		"request_id", r.ID(),
		"resolved_by", cmd.Actor.ID)

	return &ResolveRequestResult{
		RequestID:  r.ID(),
		Status:     r.Status().String(),
		Version:    r.Version(),
		ResolvedAt: r.ResolvedAt().Format(time.RFC3339),
	}, nil
}

func (uc *ResolveRequestUseCase) validateCommand(cmd ResolveRequestCommand) error {
	if cmd.RequestID == "" {
		return errors.NewInvalidArgumentError("request ID is required")
	}
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	return nil
}
