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

func TestDeleteRequest_Success(t *testing.T) {
	r := newStoredRequest(t)
	deleted := ""
	repo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*request.Request, error) {
			return r, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	dispatcher := &mockEventPublisher{}

	uc := NewDeleteRequestUseCase(repo, dispatcher, newTestLogger())
	result, err := uc.Execute(context.Background(), DeleteRequestCommand{
		Actor:     actor.New("student-1", actor.RoleStudent),
		RequestID: r.ID(),
	})

	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, r.ID(), deleted)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, "request:deleted", dispatcher.published[0].GetEventType())
}

func TestDeleteRequest_UnassignedCancelled_Allowed(t *testing.T) {
	// The deletion guard checks only assignment, so a cancelled request that
	// never got claimed can still be removed by its creator.
	r := newStoredRequest(t)
	require.NoError(t, r.Cancel())

	repo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*request.Request, error) {
			return r, nil
		},
	}

	uc := NewDeleteRequestUseCase(repo, &mockEventPublisher{}, newTestLogger())
	result, err := uc.Execute(context.Background(), DeleteRequestCommand{
		Actor:     actor.New("student-1", actor.RoleStudent),
		RequestID: r.ID(),
	})

	require.NoError(t, err)
	assert.True(t, result.Deleted)
}

func TestDeleteRequest_Assigned_InvalidState(t *testing.T) {
	r := newStoredRequest(t)
	require.NoError(t, r.Claim("ta-1"))

	deletes := 0
	repo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*request.Request, error) {
			return r, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			deletes++
			return nil
		},
	}

	uc := NewDeleteRequestUseCase(repo, &mockEventPublisher{}, newTestLogger())
	_, err := uc.Execute(context.Background(), DeleteRequestCommand{
		Actor:     actor.New("student-1", actor.RoleStudent),
		RequestID: r.ID(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
	assert.Zero(t, deletes)
}

func TestDeleteRequest_OnlyCreator(t *testing.T) {
	r := newStoredRequest(t)
	repo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*request.Request, error) {
			return r, nil
		},
	}

	uc := NewDeleteRequestUseCase(repo, &mockEventPublisher{}, newTestLogger())
	_, err := uc.Execute(context.Background(), DeleteRequestCommand{
		Actor:     actor.New("ta-1", actor.RoleTA),
		RequestID: r.ID(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
