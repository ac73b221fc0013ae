package usecases

import (
	"context"

	"labdesk/internal/domain/request"
	"labdesk/internal/shared/logger"
)

type mockRequestRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*request.Request, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *request.Request) error {
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *request.Request, expectedVersion int64) error {
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id string) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, request.ErrNotFound
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	return nil, 0, nil
}

func (m *mockRequestRepository) CountByStatus(ctx context.Context, status request.Status) (int64, error) {
	return 0, nil
}

func (m *mockRequestRepository) AverageWaitSeconds(ctx context.Context) (*float64, error) {
	return nil, nil
}

type mockReplyRepository struct {
	AppendFunc            func(ctx context.Context, reply *request.Reply) error
	ListByRequestFunc     func(ctx context.Context, requestID string) ([]*request.Reply, error)
	ListPageByRequestFunc func(ctx context.Context, requestID string, page, pageSize int) ([]*request.Reply, int64, error)
	CountByRequestFunc    func(ctx context.Context, requestID string) (int64, error)
}

func (m *mockReplyRepository) Append(ctx context.Context, reply *request.Reply) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, reply)
	}
	return nil
}

func (m *mockReplyRepository) ListByRequest(ctx context.Context, requestID string) ([]*request.Reply, error) {
	if m.ListByRequestFunc != nil {
		return m.ListByRequestFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockReplyRepository) ListPageByRequest(ctx context.Context, requestID string, page, pageSize int) ([]*request.Reply, int64, error) {
	if m.ListPageByRequestFunc != nil {
		return m.ListPageByRequestFunc(ctx, requestID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockReplyRepository) CountByRequest(ctx context.Context, requestID string) (int64, error) {
	if m.CountByRequestFunc != nil {
		return m.CountByRequestFunc(ctx, requestID)
	}
	return 0, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
