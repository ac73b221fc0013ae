package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/internal/domain/actor"
	"labdesk/internal/domain/request"
	"labdesk/internal/shared/errors"
)

// fakeRequestStore is a map-backed Repository with real compare-and-swap
// semantics. GetByID hands out independent copies, so two callers reading
// the same row genuinely race at Update time.
type fakeRequestStore struct {
	mu   sync.Mutex
	rows map[string]*request.Request
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{rows: make(map[string]*request.Request)}
}

func (s *fakeRequestStore) copyOf(r *request.Request) *request.Request {
	copied, err := request.Reconstruct(
		r.ID(), r.Title(), r.Description(), r.CreatorID(), r.LabSessionID(),
		r.Status(), r.Priority(), r.AssigneeID(), r.Metadata(), r.Version(),
		r.CreatedAt(), r.UpdatedAt(), r.ResolvedAt(),
	)
	if err != nil {
		panic(err)
	}
	return copied
}

func (s *fakeRequestStore) Save(ctx context.Context, r *request.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[r.ID()] = s.copyOf(r)
	return nil
}

func (s *fakeRequestStore) Update(ctx context.Context, r *request.Request, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.rows[r.ID()]
	if !ok {
		return request.ErrNotFound
	}
	if stored.Version() != expectedVersion {
		return request.ErrVersionConflict
	}
	s.rows[r.ID()] = s.copyOf(r)
	return nil
}

func (s *fakeRequestStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return request.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *fakeRequestStore) GetByID(ctx context.Context, id string) (*request.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.rows[id]
	if !ok {
		return nil, request.ErrNotFound
	}
	return s.copyOf(stored), nil
}

func (s *fakeRequestStore) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*request.Request
	for _, r := range s.rows {
		if filter.Status != nil && r.Status() != *filter.Status {
			continue
		}
		if filter.CreatorID != nil && r.CreatorID() != *filter.CreatorID {
			continue
		}
		out = append(out, s.copyOf(r))
	}
	return out, int64(len(out)), nil
}

func (s *fakeRequestStore) CountByStatus(ctx context.Context, status request.Status) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, r := range s.rows {
		if r.Status() == status {
			n++
		}
	}
	return n, nil
}

func (s *fakeRequestStore) AverageWaitSeconds(ctx context.Context) (*float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	var n int64
	for _, r := range s.rows {
		if r.ResolvedAt() != nil {
			sum += r.ResolvedAt().Sub(r.CreatedAt()).Seconds()
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := sum / float64(n)
	return &avg, nil
}

// TestRequestLifecycleScenario walks one request through the full lifecycle
// against a store with real version semantics: create, contended claim,
// release, reclaim, resolve, and the stats view at the end.
func TestRequestLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	store := newFakeRequestStore()
	dispatcher := &mockEventPublisher{}
	log := newTestLogger()

	student := actor.New("student-1", actor.RoleStudent)
	ta1 := actor.New("ta-1", actor.RoleTA)
	ta2 := actor.New("ta-2", actor.RoleTA)

	create := NewCreateRequestUseCase(store, dispatcher, log)
	claim := NewClaimRequestUseCase(store, dispatcher, log)
	release := NewReleaseRequestUseCase(store, dispatcher, log)
	resolve := NewResolveRequestUseCase(store, dispatcher, log)
	listMine := NewListMyRequestsUseCase(store, log)
	stats := NewGetStatsUseCase(store, log)

	created, err := create.Execute(ctx, CreateRequestCommand{
		Actor:       student,
		Title:       "Deadlock in assignment 4",
		Description: "Two goroutines block forever on channel send",
	})
	require.NoError(t, err)
	requestID := created.ID

	// First claim wins.
	claimed, err := claim.Execute(ctx, ClaimRequestCommand{Actor: ta1, RequestID: requestID})
	require.NoError(t, err)
	assert.Equal(t, "ta-1", claimed.AssigneeID)

	// Second claim reads the committed winner and loses cleanly.
	_, err = claim.Execute(ctx, ClaimRequestCommand{Actor: ta2, RequestID: requestID})
	require.Error(t, err)
	assert.True(t, errors.IsClaimLostError(err))

	// The winner hands the request back; the other TA picks it up.
	_, err = release.Execute(ctx, ReleaseRequestCommand{Actor: ta1, RequestID: requestID})
	require.NoError(t, err)

	reclaimed, err := claim.Execute(ctx, ClaimRequestCommand{Actor: ta2, RequestID: requestID})
	require.NoError(t, err)
	assert.Equal(t, "ta-2", reclaimed.AssigneeID)

	// The previous assignee no longer holds the request.
	_, err = resolve.Execute(ctx, ResolveRequestCommand{Actor: ta1, RequestID: requestID})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	resolved, err := resolve.Execute(ctx, ResolveRequestCommand{Actor: ta2, RequestID: requestID})
	require.NoError(t, err)
	assert.Equal(t, "resolved", resolved.Status)

	mine, err := listMine.Execute(ctx, ListMyRequestsQuery{Actor: student, Page: 0, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, mine.Requests, 1)
	assert.Equal(t, "resolved", mine.Requests[0].Status)

	counters, err := stats.Execute(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counters.Resolved)
	assert.EqualValues(t, 1, counters.Total)
	require.NotNil(t, counters.AverageWaitSeconds)
}

// TestClaimRace_SingleWinner stages the true write race: every contender
// reads the same pending snapshot before any write lands, so the store's
// compare-and-swap picks exactly one winner.
func TestClaimRace_SingleWinner(t *testing.T) {
	ctx := context.Background()
	store := newFakeRequestStore()
	dispatcher := &mockEventPublisher{}
	log := newTestLogger()

	create := NewCreateRequestUseCase(store, dispatcher, log)
	created, err := create.Execute(ctx, CreateRequestCommand{
		Actor:       actor.New("student-1", actor.RoleStudent),
		Title:       "Race in my worker pool",
		Description: "Results arrive out of order under load",
	})
	require.NoError(t, err)

	// Pre-read one stale copy per contender.
	const contenders = 4
	copies := make([]*request.Request, contenders)
	for i := range copies {
		r, err := store.GetByID(ctx, created.ID)
		require.NoError(t, err)
		copies[i] = r
	}

	wins := 0
	losses := 0
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, r := range copies {
		wg.Add(1)
		go func(i int, r *request.Request) {
			defer wg.Done()

			taID := string(rune('a' + i))
			expected := r.Version()
			if err := r.Claim("ta-" + taID); err != nil {
				mu.Lock()
				losses++
				mu.Unlock()
				return
			}

			mu.Lock()
			defer mu.Unlock()
			if err := store.Update(ctx, r, expected); err != nil {
				losses++
				return
			}
			wins++
		}(i, r)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, contenders-1, losses)

	final, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusInProgress, final.Status())
	assert.NotNil(t, final.AssigneeID())
	assert.EqualValues(t, 1, final.Version())
}
