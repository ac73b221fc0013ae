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

type ClaimRequestCommand struct {
	Actor     actor.Actor
	RequestID string
}

type ClaimRequestResult struct {
	RequestID  string `json:"request_id"`
	AssigneeID string `json:"assignee_id"`
	Status     string `json:"status"`
	Version    int64  `json:"version"`
	UpdatedAt  string `json:"updated_at"`
}

// ClaimRequestUseCase takes ownership of a pending request for a TA. Under
// contention exactly one caller wins: losers observe either AlreadyAssigned
// (when they read after the winner's commit) or Conflict (when the version
// compare-and-swap rejects their write). The engine never retries.
type ClaimRequestUseCase struct {
	requestRepo     request.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewClaimRequestUseCase(
	requestRepo request.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *ClaimRequestUseCase {
	return &ClaimRequestUseCase{
		requestRepo:     requestRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ClaimRequestUseCase) Execute(
	ctx context.Context,
	cmd ClaimRequestCommand,
) (*ClaimRequestResult, error) {
	uc.logger.Infow("executing claim request use case",
		"request_id", cmd.RequestID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid claim request command", "error", err)
		return nil, err
	}

	if err := request.VerifyCanAssign(cmd.Actor); err != nil {
		uc.logger.Warnw("claim forbidden", "actor_id", cmd.Actor.ID)
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

	expectedVersion := r.Version()

	if err := r.Claim(cmd.Actor.ID); err != nil {
		uc.logger.Warnw("claim rejected",
			"request_id", cmd.RequestID,
			"actor_id", cmd.Actor.ID,
			"error", err)
		return nil, err
	}

	if err := uc.requestRepo.Update(ctx, r, expectedVersion); err != nil {
		switch {
		case stderrors.Is(err, request.ErrVersionConflict):
			uc.logger.Infow("claim lost version race",
				"request_id", cmd.RequestID,
				"actor_id", cmd.Actor.ID)
			return nil, errors.NewConflictError("request was modified concurrently")
		case stderrors.Is(err, request.ErrNotFound):
			return nil, errors.NewNotFoundError("request not found")
		default:
			uc.logger.Errorw("failed to update request", "error", err, "request_id", cmd.RequestID)
			return nil, errors.NewInternalError("failed to update request")
		}
	}

	publishRequestEvent(uc.eventDispatcher, uc.logger, request.EventTypeAssigned, r)

	uc.logger.Infow("request claimed successfully",
		"request_id", r.ID(),
		"assignee_id", cmd.Actor.ID)

	return &ClaimRequestResult{
		RequestID:  r.ID(),
		AssigneeID: cmd.Actor.ID,
		Status:     r.Status().String(),
		Version:    r.Version(),
		UpdatedAt:  r.UpdatedAt().Format(time.RFC3339),
	}, nil
}

func (uc *ClaimRequestUseCase) validateCommand(cmd ClaimRequestCommand) error {
	if cmd.RequestID == "" {
		return errors.NewInvalidArgumentError("request ID is required")
	}
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	return nil
}
