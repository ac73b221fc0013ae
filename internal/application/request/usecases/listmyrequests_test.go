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

func TestListMyRequests_FiltersByCreator(t *testing.T) {
	var captured request.Filter
	repo := &mockRequestRepository{
		ListFunc: func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
			captured = filter
			return []*request.Request{newStoredRequest(t)}, 1, nil
		},
	}

	uc := NewListMyRequestsUseCase(repo, newTestLogger())
	result, err := uc.Execute(context.Background(), ListMyRequestsQuery{
		Actor:    actor.New("student-1", actor.RoleStudent),
		Page:     0,
		PageSize: 20,
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	require.Len(t, result.Requests, 1)

	require.NotNil(t, captured.CreatorID)
	assert.Equal(t, "student-1", *captured.CreatorID)
	assert.Equal(t, request.SortNewest, captured.Sort)
	assert.Nil(t, captured.Status)
}

func TestListMyRequests_StatusFilter(t *testing.T) {
	var captured request.Filter
	repo := &mockRequestRepository{
		ListFunc: func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	uc := NewListMyRequestsUseCase(repo, newTestLogger())
	_, err := uc.Execute(context.Background(), ListMyRequestsQuery{
		Actor:    actor.New("student-1", actor.RoleStudent),
		Status:   "resolved",
		Page:     0,
		PageSize: 20,
	})

	require.NoError(t, err)
	require.NotNil(t, captured.Status)
	assert.Equal(t, request.StatusResolved, *captured.Status)
}

func TestListMyRequests_UnknownStatus(t *testing.T) {
	uc := NewListMyRequestsUseCase(&mockRequestRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListMyRequestsQuery{
		Actor:    actor.New("student-1", actor.RoleStudent),
		Status:   "archived",
		Page:     0,
		PageSize: 20,
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgumentError(err))
}

func TestListMyRequests_InvalidBounds(t *testing.T) {
	uc := NewListMyRequestsUseCase(&mockRequestRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListMyRequestsQuery{
		Actor:    actor.New("student-1", actor.RoleStudent),
		Page:     -1,
		PageSize: 20,
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgumentError(err))
}
