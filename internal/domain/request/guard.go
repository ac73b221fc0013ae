package request

import (
	"labdesk/internal/domain/actor"
	"labdesk/internal/shared/errors"
)

// Resource-level authorization, layered above the coarse role checks done
// at the transport boundary. Each rule is a pure function over the acting
// identity and the loaded request, so the rules stay independently testable.

func IsCreator(a actor.Actor, r *Request) bool {
	return r.CreatorID() == a.ID
}

func IsAssignee(a actor.Actor, r *Request) bool {
	return r.AssigneeID() != nil && *r.AssigneeID() == a.ID
}

func CanView(a actor.Actor, r *Request) bool {
	return IsCreator(a, r) || IsAssignee(a, r)
}

// VerifyCanView allows the creator or the assigned TA.
func VerifyCanView(a actor.Actor, r *Request) error {
	if !CanView(a, r) {
		return errors.NewForbiddenError("only the creator or the assigned TA may view this request")
	}
	return nil
}

// VerifyCanAssign allows any TA to attempt a claim; the claim operation
// itself enforces the single-winner race.
func VerifyCanAssign(a actor.Actor) error {
	if !a.IsTA() {
		return errors.NewForbiddenError("only TAs may claim requests")
	}
	return nil
}

// VerifyCanResolve allows only the currently assigned TA.
func VerifyCanResolve(a actor.Actor, r *Request) error {
	if !IsAssignee(a, r) {
		return errors.NewForbiddenError("only the assigned TA may resolve this request")
	}
	return nil
}

// VerifyCanReprioritize allows only the currently assigned TA.
func VerifyCanReprioritize(a actor.Actor, r *Request) error {
	if !IsAssignee(a, r) {
		return errors.NewForbiddenError("only the assigned TA may change this request's priority")
	}
	return nil
}

// VerifyCanRelease allows only the currently assigned TA.
func VerifyCanRelease(a actor.Actor, r *Request) error {
	if !IsAssignee(a, r) {
		return errors.NewForbiddenError("only the assigned TA may release this request")
	}
	return nil
}

// VerifyCanUpdate allows only the creator.
func VerifyCanUpdate(a actor.Actor, r *Request) error {
	if !IsCreator(a, r) {
		return errors.NewForbiddenError("only the creator may update this request")
	}
	return nil
}

// VerifyCanDelete allows only the creator.
func VerifyCanDelete(a actor.Actor, r *Request) error {
	if !IsCreator(a, r) {
		return errors.NewForbiddenError("only the creator may delete this request")
	}
	return nil
}

// VerifyCanCancel allows only the creator.
func VerifyCanCancel(a actor.Actor, r *Request) error {
	if !IsCreator(a, r) {
		return errors.NewForbiddenError("only the creator may cancel this request")
	}
	return nil
}

// VerifyCanReply allows any TA while the request is unassigned, and only
// the assigned TA afterwards. Replying never auto-assigns.
func VerifyCanReply(a actor.Actor, r *Request) error {
	if r.AssigneeID() != nil && *r.AssigneeID() != a.ID {
		return errors.NewForbiddenError("only the assigned TA may reply to this request")
	}
	return nil
}
