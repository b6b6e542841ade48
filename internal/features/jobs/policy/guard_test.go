package jobs_policy

import (
	"testing"

	"jobtracker/internal/features/actors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CanUpdateJob(t *testing.T) {
	creatorID := uuid.New()
	memberID := uuid.New()
	outsiderID := uuid.New()
	adminID := uuid.New()
	groupID := uuid.New()

	creator := &actors.ActorContext{UserID: &creatorID}
	member := &actors.ActorContext{UserID: &memberID, GroupIDs: []uuid.UUID{groupID}}
	outsider := &actors.ActorContext{UserID: &outsiderID}
	admin := &actors.ActorContext{UserID: &adminID, IsAdmin: true}

	shared := JobAccess{UserID: &creatorID, GroupID: &groupID, EditableByGroup: true}
	private := JobAccess{UserID: &creatorID, GroupID: &groupID, EditableByGroup: false}
	ungrouped := JobAccess{UserID: &creatorID, EditableByGroup: true}
	orphaned := JobAccess{GroupID: &groupID, EditableByGroup: false}

	tests := []struct {
		name     string
		actor    *actors.ActorContext
		job      JobAccess
		expected bool
	}{
		{"creator on private job", creator, private, true},
		{"admin on private job", admin, private, true},
		{"group member on private job", member, private, false},
		{"group member on shared job", member, shared, true},
		{"outsider on shared job", outsider, shared, false},
		{"member on editable job without group", member, ungrouped, false},
		{"admin on job without creator", admin, orphaned, true},
		{"member on job without creator", member, orphaned, false},
		{"anonymous on shared job", actors.Anonymous(), shared, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanUpdateJob(tt.actor, tt.job))
		})
	}
}

func Test_CanDeleteJob_WhenJobIsGroupEditable_MembersStillCannotDelete(t *testing.T) {
	creatorID := uuid.New()
	memberID := uuid.New()
	groupID := uuid.New()
	member := &actors.ActorContext{UserID: &memberID, GroupIDs: []uuid.UUID{groupID}}
	creator := &actors.ActorContext{UserID: &creatorID}
	job := JobAccess{UserID: &creatorID, GroupID: &groupID, EditableByGroup: true}

	assert.False(t, CanDeleteJob(member, job))
	assert.True(t, CanDeleteJob(creator, job))
	assert.False(t, CanChangeSharing(member, job))
}

func Test_CanAttachGroup(t *testing.T) {
	userID := uuid.New()
	adminID := uuid.New()
	ownGroup := uuid.New()
	foreignGroup := uuid.New()
	user := &actors.ActorContext{UserID: &userID, GroupIDs: []uuid.UUID{ownGroup}}
	admin := &actors.ActorContext{UserID: &adminID, IsAdmin: true}

	assert.True(t, CanAttachGroup(user, nil))
	assert.True(t, CanAttachGroup(user, &ownGroup))
	assert.False(t, CanAttachGroup(user, &foreignGroup))
	assert.True(t, CanAttachGroup(admin, &foreignGroup))
	assert.False(t, CanAttachGroup(actors.Anonymous(), nil))
}
