package jobs_policy

import (
	"testing"
	"time"

	"jobtracker/internal/features/actors"
	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_enums "jobtracker/internal/features/jobs/enums"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	planStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	planEnd   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

func Test_BuildListPlan_WhenActorIsAnonymous_PlanIsEmpty(t *testing.T) {
	plan := BuildListPlan(actors.Anonymous(), planStart, planEnd, jobs_dto.JobFilter{})

	assert.True(t, plan.Empty)
	assert.Empty(t, plan.Conditions)
}

func Test_BuildListPlan_WhenActorIsAdmin_OnlyDateRangeApplied(t *testing.T) {
	userID := uuid.New()
	actor := &actors.ActorContext{UserID: &userID, IsAdmin: true}

	plan := BuildListPlan(actor, planStart, planEnd, jobs_dto.JobFilter{})

	assert.False(t, plan.Empty)
	assert.Equal(t, "j.date >= ? AND j.date <= ?", plan.Where())
	assert.Equal(t, []any{"2024-03-01", "2024-03-31"}, plan.Args)
}

func Test_BuildListPlan_WhenUserHasNoGroups_OnlyOwnJobsVisible(t *testing.T) {
	userID := uuid.New()
	actor := &actors.ActorContext{UserID: &userID, GroupIDs: []uuid.UUID{}}

	plan := BuildListPlan(actor, planStart, planEnd, jobs_dto.JobFilter{})

	assert.Equal(t, "j.date >= ? AND j.date <= ? AND j.user_id = ?", plan.Where())
	assert.Equal(t, userID, plan.Args[2])
}

func Test_BuildListPlan_WhenUserHasGroups_SingleOrPredicateUsed(t *testing.T) {
	userID := uuid.New()
	groupIDs := []uuid.UUID{uuid.New(), uuid.New()}
	actor := &actors.ActorContext{UserID: &userID, GroupIDs: groupIDs}

	plan := BuildListPlan(actor, planStart, planEnd, jobs_dto.JobFilter{})

	require.Len(t, plan.Conditions, 3)
	assert.Equal(t, "(j.group_id IN ? OR j.user_id = ?)", plan.Conditions[2])
	assert.Equal(t, groupIDs, plan.Args[2])
	assert.Equal(t, userID, plan.Args[3])
}

func Test_BuildListPlan_WhenFilteringForeignGroup_PlanIsEmpty(t *testing.T) {
	userID := uuid.New()
	foreignGroup := uuid.New()
	actor := &actors.ActorContext{UserID: &userID, GroupIDs: []uuid.UUID{uuid.New()}}

	plan := BuildListPlan(actor, planStart, planEnd, jobs_dto.JobFilter{GroupID: &foreignGroup})

	assert.True(t, plan.Empty)
}

func Test_BuildListPlan_WhenAdminFiltersAnyGroup_FilterApplied(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()
	actor := &actors.ActorContext{UserID: &userID, IsAdmin: true}

	plan := BuildListPlan(actor, planStart, planEnd, jobs_dto.JobFilter{GroupID: &groupID})

	assert.False(t, plan.Empty)
	assert.Contains(t, plan.Conditions, "j.group_id = ?")
	assert.Contains(t, plan.Args, groupID)
}

func Test_BuildListPlan_WithAllFilters_FiltersNarrowScopedSet(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()
	workerID := uuid.New()
	status := jobs_enums.JobStatusCompleted
	actor := &actors.ActorContext{UserID: &userID, GroupIDs: []uuid.UUID{groupID}}

	plan := BuildListPlan(actor, planStart, planEnd, jobs_dto.JobFilter{
		Status:   &status,
		GroupID:  &groupID,
		WorkerID: &workerID,
		Search:   "  roof  ",
	})

	assert.Equal(
		t,
		"j.date >= ? AND j.date <= ? AND (j.group_id IN ? OR j.user_id = ?) AND j.status = ? AND j.group_id = ? AND j.worker_id = ? AND (j.description ILIKE ? OR j.location ILIKE ?)",
		plan.Where(),
	)
	assert.Equal(t, "completed", plan.Args[4])
	assert.Equal(t, "%roof%", plan.Args[7])
	assert.Equal(t, "%roof%", plan.Args[8])
}

func Test_BuildListPlan_WhenSearchHasWildcards_WildcardsEscaped(t *testing.T) {
	userID := uuid.New()
	actor := &actors.ActorContext{UserID: &userID, IsAdmin: true}

	plan := BuildListPlan(actor, planStart, planEnd, jobs_dto.JobFilter{Search: "50%_off"})

	assert.Equal(t, `%50\%\_off%`, plan.Args[len(plan.Args)-1])
}

func Test_BuildListPlan_WhenStartEqualsEnd_BothBoundsAreThatDay(t *testing.T) {
	userID := uuid.New()
	actor := &actors.ActorContext{UserID: &userID, IsAdmin: true}

	plan := BuildListPlan(actor, planStart, planStart, jobs_dto.JobFilter{})

	assert.Equal(t, []any{"2024-03-01", "2024-03-01"}, plan.Args)
}
