package usecases

import (
	"context"
	stderrors "errors"

	"labdesk/internal/application/reply/dto"
	"labdesk/internal/domain/actor"
	"labdesk/internal/domain/request"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type PostReplyCommand struct {
	Actor     actor.Actor
	RequestID string
	Message   string
}

// PostReplyUseCase appends a TA reply to a request's thread. Any TA may
// reply while the request is unassigned; once claimed, only the assignee.
// Replying never assigns the request and never touches its version.
type PostReplyUseCase struct {
	requestRepo request.Repository
	replyRepo   request.ReplyRepository
	logger      logger.Interface
}

func NewPostReplyUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	logger logger.Interface,
) *PostReplyUseCase {
	return &PostReplyUseCase{
		requestRepo: requestRepo,
		replyRepo:   replyRepo,
		logger:      logger,
	}
}

func (uc *PostReplyUseCase) Execute(
	ctx context.Context,
	cmd PostReplyCommand,
) (*dto.ReplyDTO, error) {
	uc.logger.Infow("executing post reply use case",
		"request_id", cmd.RequestID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid post reply command", "error", err)
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

	if r.Status().IsCancelled() {
		return nil, errors.NewInvalidStateError("cannot reply to a cancelled request")
	}

	if err := request.VerifyCanReply(cmd.Actor, r); err != nil {
		uc.logger.Warnw("reply forbidden",
			"request_id", cmd.RequestID,
			"actor_id", cmd.Actor.ID)
		return nil, err
	}

	reply, err := request.NewReply(cmd.RequestID, cmd.Actor.ID, cmd.Message)
	if err != nil {
		return nil, err
	}

	if err := uc.replyRepo.Append(ctx, reply); err != nil {
		uc.logger.Errorw("failed to append reply", "error", err, "request_id", cmd.RequestID)
		return nil, errors.NewInternalError("failed to save reply")
	}

	uc.logger.Infow("reply posted successfully",
		"reply_id", reply.ID(),
		"request_id", cmd.RequestID)

	return dto.ToReplyDTO(reply), nil
}

func (uc *PostReplyUseCase) validateCommand(cmd PostReplyCommand) error {
	if cmd.RequestID == "" {
		return errors.NewInvalidArgumentError("request ID is required")
	}
	if cmd.Actor.ID == "" {
		return errors.NewInvalidArgumentError("actor ID is required")
	}
	return nil
}
