package jobs_policy

import (
	"jobtracker/internal/features/actors"

	"github.com/google/uuid"
)

// JobAccess is the part of a job the mutation rules look at.
type JobAccess struct {
	UserID          *uuid.UUID
	GroupID         *uuid.UUID
	EditableByGroup bool
}

// CanUpdateJob: the creator, the admin, or a member of the job's group when the
// job is open to group edits.
func CanUpdateJob(actor *actors.ActorContext, job JobAccess) bool {
	if !actor.IsAuthenticated() {
		return false
	}

	if actor.IsAdmin || actor.Is(job.UserID) {
		return true
	}

	return job.EditableByGroup && job.GroupID != nil && actor.IsMemberOf(*job.GroupID)
}

// CanDeleteJob ignores the group edit flag.
func CanDeleteJob(actor *actors.ActorContext, job JobAccess) bool {
	if !actor.IsAuthenticated() {
		return false
	}

	return actor.IsAdmin || actor.Is(job.UserID)
}

// CanChangeSharing covers moving a job between groups and toggling the group
// edit flag, which group editors may not do.
func CanChangeSharing(actor *actors.ActorContext, job JobAccess) bool {
	return CanDeleteJob(actor, job)
}

// CanAttachGroup reports whether the actor may put a job into groupID.
func CanAttachGroup(actor *actors.ActorContext, groupID *uuid.UUID) bool {
	if !actor.IsAuthenticated() {
		return false
	}

	if groupID == nil || actor.IsAdmin {
		return true
	}

	return actor.IsMemberOf(*groupID)
}
