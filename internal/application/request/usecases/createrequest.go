package usecases

import (
	"context"
	"time"

	"labdesk/internal/domain/actor"
	"labdesk/internal/domain/request"
	"labdesk/internal/domain/shared/events"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type CreateRequestCommand struct {
	Actor        actor.Actor
	Title        string
	Description  string
	LabSessionID string
	Metadata     string
}

type CreateRequestResult struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Priority  int64  `json:"priority"`
	Version   int64  `json:"version"`
	CreatedAt string `json:"created_at"`
}

type CreateRequestUseCase struct {
	requestRepo     request.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo:     requestRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CreateRequestUseCase) Execute(
	ctx context.Context,
	cmd CreateRequestCommand,
) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case",
		"creator_id", cmd.Actor.ID,
		"title", cmd.Title)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create request command", "error", err)
		return nil, err
	}

	r, err := request.New(cmd.Title, cmd.Description, cmd.Actor.ID, cmd.LabSessionID, cmd.Metadata)
	if err != nil {
		uc.logger.Errorw("failed to create request aggregate", "error", err)
		return nil, err
	}

	if err := uc.requestRepo.Save(ctx, r); err != nil {
		uc.logger.Errorw("failed to save request", "error", err, "request_id", r.ID())
		return nil, errors.NewInternalError("failed to save request")
	}

	publishRequestEvent(uc.eventDispatcher, uc.logger, request.EventTypeCreated, r)

	uc.logger.Infow("request created successfully",
		"request_id", r.ID(),
		"creator_id", cmd.Actor.ID)

	return &CreateRequestResult{
		ID:        r.ID(),
		Status:    r.Status().String(),
		Priority:  r.Priority(),
		Version:   r.Version(),
		CreatedAt: r.CreatedAt().Format(time.RFC3339),
	}, nil
}

func (uc *CreateRequestUseCase) validateCommand(cmd CreateRequestCommand) error {
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	return nil
}
