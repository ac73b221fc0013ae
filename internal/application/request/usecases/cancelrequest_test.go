package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/internal/domain/actor"
	"labdesk/internal/domain/request"
	"labdesk/internal/shared/errors"
)

func TestCancelRequest_Success(t *testing.T) {
	r := newStoredRequest(t)
	repo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*request.Request, error) {
			return r, nil
		},
	}
	dispatcher := &mockEventPublisher{}

	uc := NewCancelRequestUseCase(repo, dispatcher, newTestLogger())
	result, err := uc.Execute(context.Background(), CancelRequestCommand{
		Actor:     actor.New("student-1", actor.RoleStudent),
		RequestID: r.ID(),
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, "request:updated", dispatcher.published[0].GetEventType())
}

func TestCancelRequest_OnlyCreator(t *testing.T) {
	r := newStoredRequest(t)
	repo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*request.Request, error) {
			return r, nil
		},
	}

	uc := NewCancelRequestUseCase(repo, &mockEventPublisher{}, newTestLogger())
	_, err := uc.Execute(context.Background(), CancelRequestCommand{
		Actor:     actor.New("student-2", actor.RoleStudent),
		RequestID: r.ID(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, request.StatusPending, r.Status())
}

func TestCancelRequest_InProgress_InvalidTransition(t *testing.T) {
	r := newStoredRequest(t)
	require.NoError(t, r.Claim("ta-1"))

	repo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*request.Request, error) {
			return r, nil
		},
	}

	uc := NewCancelRequestUseCase(repo, &mockEventPublisher{}, newTestLogger())
	_, err := uc.Execute(context.Background(), CancelRequestCommand{
		Actor:     actor.New("student-1", actor.RoleStudent),
		RequestID: r.ID(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransitionError(err))
}
