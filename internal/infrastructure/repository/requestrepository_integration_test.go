package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"labdesk/internal/domain/request"
	"labdesk/internal/infrastructure/persistence/models"
	"labdesk/internal/shared/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.RequestModel{}, &models.ReplyModel{}))

	return db
}

func createTestRequest(t *testing.T, creatorID string) *request.Request {
	t.Helper()
	r, err := request.New("Linker error on submission", "Undefined reference to a function I definitely wrote", creatorID, "", "")
	require.NoError(t, err)
	return r
}

// reconstructAt builds a stored request with controlled priority and
// creation time, for ordering tests.
func reconstructAt(t *testing.T, id string, priority int64, createdAt time.Time) *request.Request {
	t.Helper()
	r, err := request.Reconstruct(
		id, "Ordering fixture", "Fixture body long enough to pass", "student-1", "",
		request.StatusPending, priority, nil, "", 0,
		createdAt, createdAt, nil,
	)
	require.NoError(t, err)
	return r
}

func TestRequestRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	r := createTestRequest(t, "student-1")
	require.NoError(t, repo.Save(ctx, r))

	found, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, r.Title(), found.Title())
	assert.Equal(t, request.StatusPending, found.Status())
	assert.EqualValues(t, 0, found.Version())
	assert.Nil(t, found.AssigneeID())
}

func TestRequestRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, request.ErrNotFound)
}

func TestRequestRepository_Update_CAS(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	r := createTestRequest(t, "student-1")
	require.NoError(t, repo.Save(ctx, r))

	t.Run("winner commits", func(t *testing.T) {
		loaded, err := repo.GetByID(ctx, r.ID())
		require.NoError(t, err)

		expected := loaded.Version()
		require.NoError(t, loaded.Claim("ta-1"))
		require.NoError(t, repo.Update(ctx, loaded, expected))

		found, err := repo.GetByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, request.StatusInProgress, found.Status())
		assert.EqualValues(t, 1, found.Version())
	})

	t.Run("stale writer loses", func(t *testing.T) {
		// Version 0 is long gone; the compare-and-swap must reject.
		stale := createTestRequest(t, "student-1")
		staleCopy, err := request.Reconstruct(
			r.ID(), stale.Title(), stale.Description(), "student-1", "",
			request.StatusPending, stale.Priority(), nil, "", 0,
			stale.CreatedAt(), stale.UpdatedAt(), nil,
		)
		require.NoError(t, err)

		expected := staleCopy.Version()
		require.NoError(t, staleCopy.Claim("ta-2"))
		err = repo.Update(ctx, staleCopy, expected)
		assert.ErrorIs(t, err, request.ErrVersionConflict)

		// The winner's state is untouched.
		found, err := repo.GetByID(ctx, r.ID())
		require.NoError(t, err)
		require.NotNil(t, found.AssigneeID())
		assert.Equal(t, "ta-1", *found.AssigneeID())
	})

	t.Run("missing row reports not found", func(t *testing.T) {
		ghost := createTestRequest(t, "student-1")
		err := repo.Update(ctx, ghost, 0)
		assert.ErrorIs(t, err, request.ErrNotFound)
	})
}

func TestRequestRepository_Update_ClearsAssignee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	r := createTestRequest(t, "student-1")
	require.NoError(t, repo.Save(ctx, r))

	expected := r.Version()
	require.NoError(t, r.Claim("ta-1"))
	require.NoError(t, repo.Update(ctx, r, expected))

	expected = r.Version()
	require.NoError(t, r.Release())
	require.NoError(t, repo.Update(ctx, r, expected))

	found, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Nil(t, found.AssigneeID())
	assert.Equal(t, request.StatusPending, found.Status())
}

func TestRequestRepository_Delete_CascadesReplies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	replyRepo := NewReplyRepository(db)
	ctx := context.Background()

	r := createTestRequest(t, "student-1")
	require.NoError(t, repo.Save(ctx, r))

	reply, err := request.NewReply(r.ID(), "ta-1", "Looking into it")
	require.NoError(t, err)
	require.NoError(t, replyRepo.Append(ctx, reply))

	require.NoError(t, repo.Delete(ctx, r.ID()))

	_, err = repo.GetByID(ctx, r.ID())
	assert.ErrorIs(t, err, request.ErrNotFound)

	count, err := replyRepo.CountByRequest(ctx, r.ID())
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.Delete(ctx, r.ID()), request.ErrNotFound)
}

func TestRequestRepository_List_QueueOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// Same priority, different creation times, plus one bumped ahead.
	require.NoError(t, repo.Save(ctx, reconstructAt(t, "req-b", 100, base.Add(2*time.Minute))))
	require.NoError(t, repo.Save(ctx, reconstructAt(t, "req-a", 100, base.Add(1*time.Minute))))
	require.NoError(t, repo.Save(ctx, reconstructAt(t, "req-urgent", 5, base.Add(3*time.Minute))))

	requests, total, err := repo.List(ctx, request.Filter{
		Page:     0,
		PageSize: 10,
		Sort:     request.SortQueue,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, requests, 3)

	assert.Equal(t, "req-urgent", requests[0].ID())
	assert.Equal(t, "req-a", requests[1].ID())
	assert.Equal(t, "req-b", requests[2].ID())
}

func TestRequestRepository_List_NewestAndFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	older := reconstructAt(t, "req-old", 100, base)
	newer := reconstructAt(t, "req-new", 100, base.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	other := createTestRequest(t, "student-2")
	require.NoError(t, repo.Save(ctx, other))

	creatorID := "student-1"
	requests, total, err := repo.List(ctx, request.Filter{
		CreatorID: &creatorID,
		Page:      0,
		PageSize:  10,
		Sort:      request.SortNewest,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, requests, 2)
	assert.Equal(t, "req-new", requests[0].ID())
	assert.Equal(t, "req-old", requests[1].ID())

	status := request.StatusPending
	_, total, err = repo.List(ctx, request.Filter{
		Status:   &status,
		Page:     0,
		PageSize: 1,
		Sort:     request.SortQueue,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestRequestRepository_CountAndAverageWait(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	avg, err := repo.AverageWaitSeconds(ctx)
	require.NoError(t, err)
	assert.Nil(t, avg)

	created := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	resolvedAt := created.Add(90 * time.Second)
	resolved, err := request.Reconstruct(
		"req-done", "Resolved fixture", "Fixture body long enough to pass", "student-1", "",
		request.StatusResolved, 100, nil, "", 2,
		created, resolvedAt, &resolvedAt,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, resolved))
	require.NoError(t, repo.Save(ctx, createTestRequest(t, "student-1")))

	count, err := repo.CountByStatus(ctx, request.StatusResolved)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = repo.CountByStatus(ctx, request.StatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	avg, err = repo.AverageWaitSeconds(ctx)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 90.0, *avg, 0.01)
}

func TestRequestRepository_TransactionRollback(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewRequestRepository(gormDB)
	tm := db.NewTransactionManager(gormDB)
	ctx := context.Background()

	r := createTestRequest(t, "student-1")

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Save(txCtx, r); err != nil {
			return err
		}
		// Visible inside the transaction.
		if _, err := repo.GetByID(txCtx, r.ID()); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	require.Error(t, err)

	_, err = repo.GetByID(ctx, r.ID())
	assert.ErrorIs(t, err, request.ErrNotFound)
}
