package request

import (
	"time"

	"github.com/google/uuid"

	"labdesk/internal/shared/biztime"
	"labdesk/internal/shared/errors"
)

const messageMaxLen = 5000

// Reply is one TA's response on a request's thread. Replies are append-only:
// they are never edited or deleted by the engine, and they never contend on
// the request's version field.
type Reply struct {
	id        string
	requestID string
	taID      string
	message   string
	createdAt time.Time
}

func NewReply(requestID, taID, message string) (*Reply, error) {
	if requestID == "" {
		return nil, errors.NewInvalidArgumentError("request ID is required")
	}
	if taID == "" {
		return nil, errors.NewInvalidArgumentError("TA ID is required")
	}
	if len(message) == 0 {
		return nil, errors.NewInvalidArgumentError("reply message cannot be empty")
	}
	if len(message) > messageMaxLen {
		return nil, errors.NewInvalidArgumentError("reply message exceeds maximum length of 5000 characters")
	}

	return &Reply{
		id:        uuid.NewString(),
		requestID: requestID,
		taID:      taID,
		message:   message,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructReply(id, requestID, taID, message string, createdAt time.Time) (*Reply, error) {
	if id == "" {
		return nil, errors.NewInvalidArgumentError("reply ID cannot be empty")
	}
	if requestID == "" {
		return nil, errors.NewInvalidArgumentError("request ID is required")
	}

	return &Reply{
		id:        id,
		requestID: requestID,
		taID:      taID,
		message:   message,
		createdAt: createdAt,
	}, nil
}

func (r *Reply) ID() string {
	return r.id
}

func (r *Reply) RequestID() string {
	return r.requestID
}

func (r *Reply) TAID() string {
	return r.taID
}

func (r *Reply) Message() string {
	return r.message
}

func (r *Reply) CreatedAt() time.Time {
	return r.createdAt
}
