// Package actor models the authenticated caller of every engine operation.
// Identity is supplied by the authentication collaborator; the engine treats
// it as an opaque id plus a set of role capabilities.
package actor

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTA      Role = "TA"
)

type Actor struct {
	ID    string
	Roles []Role
}

func New(id string, roles ...Role) Actor {
	return Actor{ID: id, Roles: roles}
}

func (a Actor) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (a Actor) IsTA() bool {
	return a.HasRole(RoleTA)
}

func (a Actor) IsStudent() bool {
	return a.HasRole(RoleStudent)
}
