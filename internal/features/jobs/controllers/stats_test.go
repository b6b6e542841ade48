package jobs_controllers

import (
	"net/http"
	"strings"
	"testing"

	groups_testing "jobtracker/internal/features/groups/testing"
	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_testing "jobtracker/internal/features/jobs/testing"
	users_testing "jobtracker/internal/features/users/testing"
	"jobtracker/internal/util/dates"
	test_utils "jobtracker/internal/util/testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_GetJobStats_TotalsOverVisibleJobs(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()
	other := users_testing.CreateTestUser()
	day := jobs_testing.UniqueDay()

	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &user.UserID, Hours: "2.5", Cost: "100", Amount: "300"})
	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &user.UserID, Hours: "4", Cost: "50.25", Amount: "120"})
	jobs_testing.CreateTestJob(jobs_testing.TestJob{Date: day, UserID: &other.UserID, Hours: "99", Cost: "999", Amount: "999"})

	var response test_utils.ResultOf[jobs_dto.JobStatsDTO]
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs/stats?startDate="+dates.FormatISO(day)+"&endDate="+dates.FormatISO(day),
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, int64(2), response.Data.JobCount)
	assert.True(t, decimal.RequireFromString("6.5").Equal(response.Data.TotalHours))
	assert.True(t, decimal.RequireFromString("150.25").Equal(response.Data.TotalCost))
	assert.True(t, decimal.RequireFromString("420").Equal(response.Data.TotalCharge))
}

func Test_GetJobStats_WhenNothingVisible_ReturnsZeroes(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()
	day := jobs_testing.UniqueDay()

	var response test_utils.ResultOf[jobs_dto.JobStatsDTO]
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs/stats?startDate="+dates.FormatISO(day)+"&endDate="+dates.FormatISO(day),
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, int64(0), response.Data.JobCount)
	assert.True(t, response.Data.TotalHours.IsZero())
}

func Test_GetShareText_ListsVisibleJobsWithTitle(t *testing.T) {
	router := createJobsTestRouter()
	user := users_testing.CreateTestUser()
	group := groups_testing.CreateTestGroup("Share", user.UserID)
	day := jobs_testing.UniqueDay()

	jobs_testing.CreateTestJob(jobs_testing.TestJob{
		Date:        day,
		UserID:      &user.UserID,
		GroupID:     &group.ID,
		Description: "Instalación eléctrica",
		Location:    "Local 3",
		Hours:       "3",
		Cost:        "0",
		Amount:      "45",
	})

	var response test_utils.ResultOf[jobs_dto.ShareTextResponseDTO]
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs/share-text?title=Hoy&startDate="+dates.FormatISO(day)+"&endDate="+dates.FormatISO(day),
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	lines := strings.Split(response.Data.Text, "\n")
	assert.Equal(t, "Hoy", lines[0])
	assert.Equal(t, "Total: 1", lines[1])
	assert.Equal(t, "#1 | "+dates.FormatDisplay(day)+" - Instalación eléctrica", lines[3])
	assert.Contains(t, response.Data.Text, "Grupo: "+group.Name)
	assert.Contains(t, response.Data.Text, "Horas: 3 | Costo: $ 0,00 | Cobrar: $ 45,00")
}
