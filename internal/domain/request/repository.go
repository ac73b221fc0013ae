package request

import (
	"context"
	"errors"
)

// Sentinel errors returned by repository implementations. Use cases map
// them onto the caller-facing taxonomy.
var (
	// ErrNotFound is returned when the referenced request or reply is absent.
	ErrNotFound = errors.New("request not found")

	// ErrVersionConflict is returned when a versioned write is rejected
	// because the stored version no longer matches the expected one.
	ErrVersionConflict = errors.New("request version conflict")
)

// Sort names the two orderings the dispatcher serves.
type Sort string

const (
	// SortQueue orders by priority ascending, then creation time ascending:
	// the "next request to work on" view.
	SortQueue Sort = "queue"

	// SortNewest orders by creation time descending: a student's own view.
	SortNewest Sort = "newest"
)

type Filter struct {
	Status     *Status
	CreatorID  *string
	AssigneeID *string
	Page       int
	PageSize   int
	Sort       Sort
}

// Repository is the store contract for requests. Save inserts a new row;
// Update performs a compare-and-swap on the version column and returns
// ErrVersionConflict when the row moved underneath the caller.
type Repository interface {
	Save(ctx context.Context, r *Request) error
	Update(ctx context.Context, r *Request, expectedVersion int64) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Request, error)
	List(ctx context.Context, filter Filter) ([]*Request, int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	AverageWaitSeconds(ctx context.Context) (*float64, error)
}

// ReplyRepository is the append-only store contract for reply threads.
type ReplyRepository interface {
	Append(ctx context.Context, reply *Reply) error
	ListByRequest(ctx context.Context, requestID string) ([]*Reply, error)
	ListPageByRequest(ctx context.Context, requestID string, page, pageSize int) ([]*Reply, int64, error)
	CountByRequest(ctx context.Context, requestID string) (int64, error)
}
