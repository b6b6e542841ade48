package jobs_controllers

import (
	"net/http"
	"testing"

	"jobtracker/internal/features/actors"
	"jobtracker/internal/features/audit_logs"
	groups_controllers "jobtracker/internal/features/groups/controllers"
	groups_testing "jobtracker/internal/features/groups/testing"
	jobs_testing "jobtracker/internal/features/jobs/testing"
	users_controllers "jobtracker/internal/features/users/controllers"
	users_dto "jobtracker/internal/features/users/dto"
	users_middleware "jobtracker/internal/features/users/middleware"
	users_services "jobtracker/internal/features/users/services"
	users_testing "jobtracker/internal/features/users/testing"
	test_utils "jobtracker/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TransferAdminRole_ThroughRoute_RefreshesCachedActors(t *testing.T) {
	router := createActorInvalidationTestRouter()
	oldAdmin := users_testing.GetTestAdmin()
	newAdmin := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	job := jobs_testing.CreateTestJob(jobs_testing.TestJob{
		Date:   jobs_testing.UniqueDay(),
		UserID: &stranger.UserID,
	})

	before := resolveActor(t, oldAdmin.UserID)
	require.True(t, before.IsAdmin)
	require.False(t, resolveActor(t, newAdmin.UserID).IsAdmin)
	test_utils.MakeGetRequest(t, router, "/api/v1/jobs/"+job.ID.String(), "Bearer "+oldAdmin.Token, http.StatusOK)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/transfer-admin",
		"Bearer "+oldAdmin.Token,
		users_dto.TransferAdminRequestDTO{NewAdminUserID: newAdmin.UserID},
		http.StatusOK,
	)

	assert.False(t, resolveActor(t, oldAdmin.UserID).IsAdmin)
	assert.True(t, resolveActor(t, newAdmin.UserID).IsAdmin)
	test_utils.MakeGetRequest(t, router, "/api/v1/jobs/"+job.ID.String(), "Bearer "+oldAdmin.Token, http.StatusNotFound)
	test_utils.MakeGetRequest(t, router, "/api/v1/jobs/"+job.ID.String(), "Bearer "+newAdmin.Token, http.StatusOK)
}

func Test_RemoveMember_ThroughRoute_RevokesGroupJobVisibility(t *testing.T) {
	router := createActorInvalidationTestRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	group := groups_testing.CreateTestGroup("Cuadrilla", owner.UserID)
	groups_testing.AddTestMember(group.ID, member.UserID)
	job := jobs_testing.CreateTestJob(jobs_testing.TestJob{
		Date:    jobs_testing.UniqueDay(),
		UserID:  &owner.UserID,
		GroupID: &group.ID,
	})

	require.True(t, resolveActor(t, member.UserID).IsMemberOf(group.ID))
	test_utils.MakeGetRequest(t, router, "/api/v1/jobs/"+job.ID.String(), "Bearer "+member.Token, http.StatusOK)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/groups/"+group.ID.String()+"/members/"+member.UserID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	assert.False(t, resolveActor(t, member.UserID).IsMemberOf(group.ID))
	test_utils.MakeGetRequest(t, router, "/api/v1/jobs/"+job.ID.String(), "Bearer "+member.Token, http.StatusNotFound)
}

func createActorInvalidationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	users_controllers.GetManagementController().RegisterRoutes(protected.(*gin.RouterGroup))
	groups_controllers.GetMembershipController().RegisterRoutes(protected.(*gin.RouterGroup))
	GetJobController().RegisterRoutes(protected.(*gin.RouterGroup))

	audit_logs.SetupDependencies()
	actors.SetupDependencies()

	return router
}

func resolveActor(t *testing.T, userID uuid.UUID) *actors.ActorContext {
	t.Helper()

	actor, err := actors.GetActorService().ResolveActorContext(&userID)
	require.NoError(t, err)

	return actor
}
