package constants

const (
	// DefaultPage is the first page for paginated queries.
	DefaultPage = 0

	// DefaultPageSize is the page size applied when the caller omits one.
	DefaultPageSize = 20

	// MaxPageSize caps the page size of any paginated query.
	MaxPageSize = 100

	// ContextKeyActorID is the Gin context key for the authenticated actor id.
	ContextKeyActorID = "actor_id"

	// ContextKeyActorRoles is the Gin context key for the actor's role set.
	ContextKeyActorRoles = "actor_roles"
)
