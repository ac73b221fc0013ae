package usecases

import (
	"context"

	"labdesk/internal/domain/request"
	"labdesk/internal/domain/shared/events"
	"labdesk/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc               func(ctx context.Context, r *request.Request) error
	UpdateFunc             func(ctx context.Context, r *request.Request, expectedVersion int64) error
	DeleteFunc             func(ctx context.Context, id string) error
	GetByIDFunc            func(ctx context.Context, id string) (*request.Request, error)
	ListFunc               func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error)
	CountByStatusFunc      func(ctx context.Context, status request.Status) (int64, error)
	AverageWaitSecondsFunc func(ctx context.Context) (*float64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *request.Request, expectedVersion int64) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r, expectedVersion)
	}
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id string) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, request.ErrNotFound
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRequestRepository) CountByStatus(ctx context.Context, status request.Status) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockRequestRepository) AverageWaitSeconds(ctx context.Context) (*float64, error) {
	if m.AverageWaitSecondsFunc != nil {
		return m.AverageWaitSecondsFunc(ctx)
	}
	return nil, nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	published      []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
