package jobs_policy

import (
	"strings"
	"time"

	"jobtracker/internal/features/actors"
	jobs_dto "jobtracker/internal/features/jobs/dto"
	"jobtracker/internal/storage"
	"jobtracker/internal/util/dates"
)

// QueryPlan is the WHERE clause of a job listing over the "jobs j" alias. An
// empty plan means the actor can see nothing and no query should run.
type QueryPlan struct {
	Empty      bool
	Conditions []string
	Args       []any
}

func EmptyPlan() QueryPlan {
	return QueryPlan{Empty: true}
}

func (p QueryPlan) Where() string {
	return strings.Join(p.Conditions, " AND ")
}

func (p *QueryPlan) add(condition string, args ...any) {
	p.Conditions = append(p.Conditions, condition)
	p.Args = append(p.Args, args...)
}

// BuildListPlan scopes jobs to what the actor may see and applies the filter
// on top. Dates are inclusive calendar days. Non-admins see jobs of their
// groups plus the jobs they created, expressed as one OR predicate.
func BuildListPlan(
	actor *actors.ActorContext,
	startDate time.Time,
	endDate time.Time,
	filter jobs_dto.JobFilter,
) QueryPlan {
	if !actor.IsAuthenticated() {
		return EmptyPlan()
	}

	if !actor.IsAdmin && filter.GroupID != nil && !actor.IsMemberOf(*filter.GroupID) {
		return EmptyPlan()
	}

	plan := QueryPlan{}
	plan.add("j.date >= ?", dates.FormatISO(startDate))
	plan.add("j.date <= ?", dates.FormatISO(endDate))

	if !actor.IsAdmin {
		if len(actor.GroupIDs) > 0 {
			plan.add("(j.group_id IN ? OR j.user_id = ?)", actor.GroupIDs, *actor.UserID)
		} else {
			plan.add("j.user_id = ?", *actor.UserID)
		}
	}

	if filter.Status != nil {
		plan.add("j.status = ?", string(*filter.Status))
	}

	if filter.GroupID != nil {
		plan.add("j.group_id = ?", *filter.GroupID)
	}

	if filter.WorkerID != nil {
		plan.add("j.worker_id = ?", *filter.WorkerID)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + storage.EscapeLike(search) + "%"
		plan.add("(j.description ILIKE ? OR j.location ILIKE ?)", pattern, pattern)
	}

	return plan
}
