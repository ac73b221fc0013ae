package request

import (
	"time"

	"github.com/google/uuid"

	"labdesk/internal/shared/biztime"
	"labdesk/internal/shared/errors"
)

const (
	titleMinLen       = 3
	titleMaxLen       = 255
	descriptionMinLen = 10
	descriptionMaxLen = 10000
)

// Request is the aggregate at the center of the dispatcher: a student's help
// request moving through the PENDING → IN_PROGRESS → RESOLVED/CANCELLED
// lifecycle. All mutual exclusion between concurrent operations happens at
// the store's compare-and-swap on the version field; the aggregate itself
// only enforces the transition rules and bumps the version on every mutation.
type Request struct {
	id           string
	title        string
	description  string
	creatorID    string
	labSessionID string
	status       Status
	priority     int64
	assigneeID   *string
	metadata     string
	version      int64
	createdAt    time.Time
	updatedAt    time.Time
	resolvedAt   *time.Time
}

// New creates a PENDING request. Priority defaults to the creation epoch in
// milliseconds so that the default queue order is first-come-first-served.
// Metadata is an opaque client payload and is never interpreted.
func New(title, description, creatorID, labSessionID, metadata string) (*Request, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if creatorID == "" {
		return nil, errors.NewInvalidArgumentError("creator ID is required")
	}

	now := biztime.NowUTC()

	return &Request{
		id:           uuid.NewString(),
		title:        title,
		description:  description,
		creatorID:    creatorID,
		labSessionID: labSessionID,
		status:       StatusPending,
		priority:     now.UnixMilli(),
		metadata:     metadata,
		version:      0,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a request from persisted state. It trusts the store
// and performs only structural validation.
func Reconstruct(
	id string,
	title string,
	description string,
	creatorID string,
	labSessionID string,
	status Status,
	priority int64,
	assigneeID *string,
	metadata string,
	version int64,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Request, error) {
	if id == "" {
		return nil, errors.NewInvalidArgumentError("request ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, errors.NewInvalidArgumentError("invalid request status: " + status.String())
	}

	return &Request{
		id:           id,
		title:        title,
		description:  description,
		creatorID:    creatorID,
		labSessionID: labSessionID,
		status:       status,
		priority:     priority,
		assigneeID:   assigneeID,
		metadata:     metadata,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		resolvedAt:   resolvedAt,
	}, nil
}

func (r *Request) ID() string {
	return r.id
}

func (r *Request) Title() string {
	return r.title
}

func (r *Request) Description() string {
	return r.description
}

func (r *Request) CreatorID() string {
	return r.creatorID
}

func (r *Request) LabSessionID() string {
	return r.labSessionID
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) Priority() int64 {
	return r.priority
}

func (r *Request) AssigneeID() *string {
	return r.assigneeID
}

func (r *Request) Metadata() string {
	return r.metadata
}

func (r *Request) Version() int64 {
	return r.version
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Request) ResolvedAt() *time.Time {
	return r.resolvedAt
}

// Claim takes ownership of the request for a TA, moving it to IN_PROGRESS.
// The already-assigned check runs before the transition check so that a
// claim against a freshly committed winner reports AlreadyAssigned rather
// than the generic transition failure.
func (r *Request) Claim(taID string) error {
	if taID == "" {
		return errors.NewInvalidArgumentError("assignee ID is required")
	}

	if r.assigneeID != nil && *r.assigneeID != taID {
		return errors.NewAlreadyAssignedError("request already assigned to another TA")
	}

	if !r.status.CanTransitionTo(StatusInProgress) {
		return errors.NewInvalidTransitionError(r.status.String(), StatusInProgress.String())
	}

	r.status = StatusInProgress
	r.assigneeID = &taID
	r.touch()

	return nil
}

// Resolve completes the request. The resolved timestamp is set exactly once.
func (r *Request) Resolve() error {
	if !r.status.CanTransitionTo(StatusResolved) {
		return errors.NewInvalidTransitionError(r.status.String(), StatusResolved.String())
	}

	r.status = StatusResolved
	if r.resolvedAt == nil {
		now := biztime.NowUTC()
		r.resolvedAt = &now
	}
	r.touch()

	return nil
}

// Release undoes an assignment: the request returns to PENDING and keeps its
// place in the queue (priority is untouched).
func (r *Request) Release() error {
	if !r.status.CanTransitionTo(StatusPending) {
		return errors.NewInvalidTransitionError(r.status.String(), StatusPending.String())
	}

	r.status = StatusPending
	r.assigneeID = nil
	r.touch()

	return nil
}

// Cancel moves the request to the terminal CANCELLED state.
func (r *Request) Cancel() error {
	if !r.status.CanTransitionTo(StatusCancelled) {
		return errors.NewInvalidTransitionError(r.status.String(), StatusCancelled.String())
	}

	r.status = StatusCancelled
	r.touch()

	return nil
}

// SetPriority rewrites the queue rank. Lower values sort first.
func (r *Request) SetPriority(priority int64) {
	r.priority = priority
	r.touch()
}

// Edit rewrites title and description. Permitted only before assignment and
// only while the request is still PENDING.
func (r *Request) Edit(title, description string) error {
	if r.assigneeID != nil {
		return errors.NewInvalidStateError("cannot edit a request that has been assigned")
	}
	if !r.status.IsPending() {
		return errors.NewInvalidStateError("cannot edit a " + r.status.String() + " request")
	}

	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}

	r.title = title
	r.description = description
	r.touch()

	return nil
}

// CanBeDeleted enforces the deletion guard: only unassigned requests may be
// deleted. Terminal status is deliberately not checked, so an unassigned
// CANCELLED request remains deletable.
func (r *Request) CanBeDeleted() error {
	if r.assigneeID != nil {
		return errors.NewInvalidStateError("cannot delete a request that has been assigned")
	}
	return nil
}

func (r *Request) touch() {
	r.updatedAt = biztime.NowUTC()
	r.version++
}

func validateTitle(title string) error {
	if len(title) < titleMinLen {
		return errors.NewInvalidArgumentError("title must be at least 3 characters")
	}
	if len(title) > titleMaxLen {
		return errors.NewInvalidArgumentError("title exceeds maximum length of 255 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) < descriptionMinLen {
		return errors.NewInvalidArgumentError("description must be at least 10 characters")
	}
	if len(description) > descriptionMaxLen {
		return errors.NewInvalidArgumentError("description exceeds maximum length of 10000 characters")
	}
	return nil
}
