package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/internal/domain/request"
	"labdesk/internal/shared/errors"
)

func TestListRequests_QueueOrderFilter(t *testing.T) {
	var captured request.Filter
	repo := &mockRequestRepository{
		ListFunc: func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	uc := NewListRequestsUseCase(repo, newTestLogger())
	result, err := uc.Execute(context.Background(), ListRequestsQuery{
		Status:   "pending",
		Page:     0,
		PageSize: 20,
	})

	require.NoError(t, err)
	assert.EqualValues(t, 0, result.Total)
	assert.Equal(t, request.SortQueue, captured.Sort)
	require.NotNil(t, captured.Status)
	assert.Equal(t, request.StatusPending, *captured.Status)
}

func TestListRequests_PaginationBounds(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
	}{
		{name: "negative page", page: -1, pageSize: 20},
		{name: "zero page size", page: 0, pageSize: 0},
		{name: "page size over max", page: 0, pageSize: 101},
	}

	uc := NewListRequestsUseCase(&mockRequestRepository{}, newTestLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), ListRequestsQuery{
				Page:     tt.page,
				PageSize: tt.pageSize,
			})
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgumentError(err))
		})
	}
}

func TestListRequests_UnknownStatus(t *testing.T) {
	uc := NewListRequestsUseCase(&mockRequestRepository{}, newTestLogger())
	_, err := uc.Execute(context.Background(), ListRequestsQuery{
		Status:   "archived",
		Page:     0,
		PageSize: 20,
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgumentError(err))
}
