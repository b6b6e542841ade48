package jobs_controllers

import (
	"net/http"
	"net/url"
	"testing"

	"jobtracker/internal/features/actors"
	groups_testing "jobtracker/internal/features/groups/testing"
	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_enums "jobtracker/internal/features/jobs/enums"
	jobs_services "jobtracker/internal/features/jobs/services"
	jobs_testing "jobtracker/internal/features/jobs/testing"
	users_testing "jobtracker/internal/features/users/testing"
	workers_testing "jobtracker/internal/features/workers/testing"
	"jobtracker/internal/storage"
	"jobtracker/internal/util/dates"
	test_utils "jobtracker/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ListJobs_WhenUserIsMember_SeesGroupJobsAndOwnJobsOnly(t *testing.T) {
	router := createJobsTestRouter()
	actor := users_testing.CreateTestUser()
	other := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	ownGroup := groups_testing.CreateTestGroup("Visible", other.UserID)
	foreignGroup := groups_testing.CreateTestGroup("Hidden", other.UserID)
	groups_testing.AddTestMember(ownGroup.ID, actor.UserID)
	day := jobs_testing.UniqueDay()

	ownJob := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &actor.UserID})
	ownJobInForeignGroup := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &actor.UserID, GroupID: &foreignGroup.ID})
	groupJob := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &other.UserID, GroupID: &ownGroup.ID})
	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &other.UserID, GroupID: &foreignGroup.ID})
	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &stranger.UserID})

	jobs := listJobs(t, router, actor.Token, day, day, nil)

	assert.ElementsMatch(
		t,
		[]string{ownJob.ID.String(), ownJobInForeignGroup.ID.String(), groupJob.ID.String()},
		jobIDs(jobs),
	)
}

func Test_ListJobs_WhenUserIsAdmin_SeesEveryJob(t *testing.T) {
	router := createJobsTestRouter()
	admin := users_testing.GetTestAdmin()
	first := users_testing.CreateTestUser()
	second := users_testing.CreateTestUser()
	day := jobs_testing.UniqueDay()

	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &first.UserID})
	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &second.UserID})

	assert.Len(t, listJobs(t, router, admin.Token, day, day, nil), 2)
}

func Test_ListJobs_WhenActorIsAnonymous_ReturnsEmptyList(t *testing.T) {
	test_utils.RequireInfrastructure(t)

	jobs, err := jobs_services.GetJobService().ListJobs(
		actors.Anonymous(),
		jobs_testing.Day(2024, 1, 1),
		jobs_testing.Day(2024, 12, 31),
		jobs_dto.JobFilter{},
	)

	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func Test_ListJobs_WhenFilteringForeignGroup_ReturnsEmptyList(t *testing.T) {
	router := createJobsTestRouter()
	actor := users_testing.CreateTestUser()
	owner := users_testing.CreateTestUser()
	foreignGroup := groups_testing.CreateTestGroup("Foreign", owner.UserID)
	day := jobs_testing.UniqueDay()

	// even the actor's own job in that group is not returned through a foreign group filter
	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &actor.UserID, GroupID: &foreignGroup.ID})

	jobs := listJobs(t, router, actor.Token, day, day, url.Values{"groupId": {foreignGroup.ID.String()}})

	assert.Empty(t, jobs)
}

func Test_ListJobs_WithRange_InclusiveAndNewestFirst(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()
	day := jobs_testing.UniqueDay()
	before := day.AddDate(0, 0, -1)
	after := day.AddDate(0, 0, 1)

	first := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: before, UserID: &user.UserID})
	middle := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &user.UserID})
	last := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: after, UserID: &user.UserID})

	jobs := listJobs(t, router, user.Token, before, after, nil)
	assert.Equal(t, []string{last.ID.String(), middle.ID.String(), first.ID.String()}, jobIDs(jobs))

	single := listJobs(t, router, user.Token, day, day, nil)
	require.Len(t, single, 1)
	assert.Equal(t, middle.ID, single[0].ID)
	assert.True(t, dates.SameDay(day, single[0].Date))
}

func Test_ListJobs_WhenStartAfterEnd_ReturnsBadRequest(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/jobs?startDate=2024-03-10&endDate=2024-03-01",
		"Bearer "+user.Token,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "start date must not be after end date")
}

func Test_ListJobs_WithFilters_NarrowsVisibleJobs(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()
	worker := workers_testing.CreateTestWorker("Filter")
	day := jobs_testing.UniqueDay()

	completed := jobs_testing.CreateTestJob(jobs_testing.TestJob{
		Date:        day,
		UserID:      &user.UserID,
		Status:      jobs_enums.JobStatusCompleted,
		Description: "Cambio de techo",
	})
	withWorker := jobs_testing.CreateTestJob(jobs_testing.TestJob{
		Date:     day,
		UserID:   &user.UserID,
		WorkerID: &worker.ID,
		Location: "Depósito NORTE",
	})

	byStatus := listJobs(t, router, user.Token, day, day, url.Values{"status": {"completed"}})
	assert.Equal(t, []string{completed.ID.String()}, jobIDs(byStatus))

	byWorker := listJobs(t, router, user.Token, day, day, url.Values{"workerId": {worker.ID.String()}})
	require.Len(t, byWorker, 1)
	assert.Equal(t, withWorker.ID, byWorker[0].ID)
	assert.Equal(t, worker.DisplayName, byWorker[0].WorkerName)

	byDescription := listJobs(t, router, user.Token, day, day, url.Values{"search": {"TECHO"}})
	assert.Equal(t, []string{completed.ID.String()}, jobIDs(byDescription))

	byLocation := listJobs(t, router, user.Token, day, day, url.Values{"search": {"norte"}})
	assert.Equal(t, []string{withWorker.ID.String()}, jobIDs(byLocation))

	all := listJobs(t, router, user.Token, day, day, url.Values{"status": {"all"}, "groupId": {"all"}})
	assert.Len(t, all, 2)
}

func Test_ListJobs_WhenSearchContainsWildcards_MatchesLiterally(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()
	day := jobs_testing.UniqueDay()

	literal := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &user.UserID, Description: "descuento 100%"})
	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &user.UserID, Description: "descuento 1000"})

	jobs := listJobs(t, router, user.Token, day, day, url.Values{"search": {"100%"}})

	assert.Equal(t, []string{literal.ID.String()}, jobIDs(jobs))
}

func Test_ListJobs_WithInvalidStatusFilter_ReturnsBadRequest(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/jobs?startDate=2024-03-01&endDate=2024-03-02&status=done",
		"Bearer "+user.Token,
		http.StatusBadRequest,
	)
}

func Test_ListJobs_WhenEnrichmentUnavailable_ReturnsBareRows(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()
	group := groups_testing.CreateTestGroup("Degraded", user.UserID)
	day := jobs_testing.UniqueDay()
	job := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &user.UserID, GroupID: &group.ID})

	original := storage.GetCapabilities()
	storage.SetCapabilities(storage.Capabilities{JobEnrichment: false, UserSoftDelete: original.UserSoftDelete})
	defer storage.SetCapabilities(original)

	jobs := listJobs(t, router, user.Token, day, day, nil)

	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)
	assert.Equal(t, group.ID, *jobs[0].GroupID)
	assert.Empty(t, jobs[0].GroupName)
}

func Test_ListJobs_WhenGroupDeleted_JobsKeptWithoutGroup(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()
	group := groups_testing.CreateTestGroup("Short lived", user.UserID)
	day := jobs_testing.UniqueDay()
	job := jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &user.UserID, GroupID: &group.ID})

	groups_testing.DeleteTestGroup(group.ID)

	jobs := listJobs(t, router, user.Token, day, day, nil)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)
	assert.Nil(t, jobs[0].GroupID)
}

func Test_GetJob_VisibleOnlyToCreatorGroupAndAdmin(t *testing.T) {
	router := createJobsTestRouter()
	creator := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	admin := users_testing.GetTestAdmin()
	group := groups_testing.CreateTestGroup("Get", creator.UserID)
	groups_testing.AddTestMember(group.ID, member.UserID)
	job := jobs_testing.CreateTestJob(jobs_testing.TestJob{UserID: &creator.UserID, GroupID: &group.ID})

	for _, token := range []string{creator.Token, member.Token, admin.Token} {
		var response test_utils.ResultOf[jobs_dto.JobDTO]
		test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/jobs/"+job.ID.String(), "Bearer "+token, http.StatusOK, &response)
		assert.Equal(t, group.Name, response.Data.GroupName)
	}

	test_utils.MakeGetRequest(t, router, "/api/v1/jobs/"+job.ID.String(), "Bearer "+outsider.Token, http.StatusNotFound)
	test_utils.MakeGetRequest(t, router, "/api/v1/jobs/not-a-uuid", "Bearer "+creator.Token, http.StatusBadRequest)
}
