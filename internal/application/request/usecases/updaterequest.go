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

type UpdateRequestCommand struct {
	Actor       actor.Actor
	RequestID   string
	Title       string
	Description string
}

type UpdateRequestResult struct {
	RequestID   string `json:"request_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     int64  `json:"version"`
	UpdatedAt   string `json:"updated_at"`
}

type UpdateRequestUseCase struct {
	requestRepo     request.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo request.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo:     requestRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(
	ctx context.Context,
	cmd UpdateRequestCommand,
) (*UpdateRequestResult, error) {
	uc.logger.Infow("executing update request use case",
		"request_id", cmd.RequestID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update request command", "error", err)
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

	if err := request.VerifyCanUpdate(cmd.Actor, r); err != nil {
		uc.logger.Warnw("update forbidden",
			"request_id", cmd.RequestID,
			"actor_id", cmd.Actor.ID)
		return nil, err
	}

	expectedVersion := r.Version()

	if err := r.Edit(cmd.Title, cmd.Description); err != nil {
		uc.logger.Warnw("update rejected", "request_id", cmd.RequestID, "error", err)
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

	uc.logger.Infow("request updated successfully", "request_id", r.ID())

	return &UpdateRequestResult{
		RequestID:   r.ID(),
		Title:       r.Title(),
		Description: r.Description(),
		Version:     r.Version(),
		UpdatedAt:   r.UpdatedAt().Format(time.RFC3339),
	}, nil
}

func (uc *UpdateRequestUseCase) validateCommand(cmd UpdateRequestCommand) error {
	if cmd.RequestID == "" {
		return errors.NewInvalidArgumentError("request ID is required")
	}
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	return nil
}
