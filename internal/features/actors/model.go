package actors

import (
	"slices"

	"github.com/google/uuid"
)

// ActorContext is what every authorization decision needs to know about the
// caller. A context without UserID is anonymous and sees nothing.
type ActorContext struct {
	UserID   *uuid.UUID  `json:"userId"`
	GroupIDs []uuid.UUID `json:"groupIds"`
	IsAdmin  bool        `json:"isAdmin"`
}

func Anonymous() *ActorContext {
	return &ActorContext{GroupIDs: []uuid.UUID{}}
}

func (a *ActorContext) IsAuthenticated() bool {
	return a != nil && a.UserID != nil
}

func (a *ActorContext) IsMemberOf(groupID uuid.UUID) bool {
	if !a.IsAuthenticated() {
		return false
	}

	return slices.Contains(a.GroupIDs, groupID)
}

// Is reports whether userID is the actor itself.
func (a *ActorContext) Is(userID *uuid.UUID) bool {
	return a.IsAuthenticated() && userID != nil && *a.UserID == *userID
}

// CanViewJob applies the visibility rule for job-like records: admins see
// everything, others see what they created or what belongs to one of their groups.
func (a *ActorContext) CanViewJob(creatorID, groupID *uuid.UUID) bool {
	if !a.IsAuthenticated() {
		return false
	}

	if a.IsAdmin || a.Is(creatorID) {
		return true
	}

	return groupID != nil && a.IsMemberOf(*groupID)
}
