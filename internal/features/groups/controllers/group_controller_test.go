package groups_controllers

import (
	"net/http"
	"testing"

	"jobtracker/internal/features/actors"
	groups_dto "jobtracker/internal/features/groups/dto"
	groups_enums "jobtracker/internal/features/groups/enums"
	groups_models "jobtracker/internal/features/groups/models"
	groups_testing "jobtracker/internal/features/groups/testing"
	users_testing "jobtracker/internal/features/users/testing"
	test_utils "jobtracker/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateGroup_WhenMemberCreationAllowed_CreatorBecomesGroupAdmin(t *testing.T) {
	users_testing.ResetSettingsToDefaults()
	router := createGroupsTestRouter()
	user := users_testing.CreateTestUser()

	var response test_utils.ResultOf[groups_dto.GroupResponseDTO]
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/groups",
		"Bearer "+user.Token,
		groups_dto.CreateGroupRequestDTO{Name: "  Crew A  ", Description: "Roofing"},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "Crew A", response.Data.Name)
	assert.Equal(t, user.UserID, response.Data.CreatedBy)
	assert.Equal(t, int64(1), response.Data.MemberCount)
	assert.True(t, response.Data.IsMember)
	require.NotNil(t, response.Data.UserRole)
	assert.Equal(t, groups_enums.MemberRoleAdmin, *response.Data.UserRole)
	assert.True(t, groups_testing.IsMember(response.Data.ID, user.UserID))
}

func Test_CreateGroup_WhenMemberCreationDisabled_OnlyAdminCanCreate(t *testing.T) {
	users_testing.DisableMemberGroupCreation()
	defer users_testing.ResetSettingsToDefaults()
	router := createGroupsTestRouter()
	user := users_testing.CreateTestUser()
	admin := users_testing.GetTestAdmin()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/groups",
		"Bearer "+user.Token,
		groups_dto.CreateGroupRequestDTO{Name: "Blocked"},
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "insufficient permissions to create groups")

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/groups",
		"Bearer "+admin.Token,
		groups_dto.CreateGroupRequestDTO{Name: "Allowed"},
		http.StatusOK,
	)
}

func Test_CreateGroup_WithBlankName_ReturnsBadRequest(t *testing.T) {
	users_testing.ResetSettingsToDefaults()
	router := createGroupsTestRouter()
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/groups",
		"Bearer "+user.Token,
		groups_dto.CreateGroupRequestDTO{Name: "   "},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "group name is required")
}

func Test_GetAllGroups_ReturnsMembershipFlagsPerCaller(t *testing.T) {
	router := createGroupsTestRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	group := groups_testing.CreateTestGroup("Directory", owner.UserID)
	groups_testing.AddTestMember(group.ID, member.UserID)

	memberView := findGroup(t, router, member.Token, group.ID)
	assert.True(t, memberView.IsMember)
	assert.Equal(t, int64(2), memberView.MemberCount)
	require.NotNil(t, memberView.UserRole)
	assert.Equal(t, groups_enums.MemberRoleMember, *memberView.UserRole)

	ownerView := findGroup(t, router, owner.Token, group.ID)
	require.NotNil(t, ownerView.UserRole)
	assert.Equal(t, groups_enums.MemberRoleAdmin, *ownerView.UserRole)

	outsiderView := findGroup(t, router, outsider.Token, group.ID)
	assert.False(t, outsiderView.IsMember)
	assert.Nil(t, outsiderView.UserRole)
}

func Test_UpdateGroup_WhenCallerIsPlainMember_ReturnsForbidden(t *testing.T) {
	router := createGroupsTestRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	group := groups_testing.CreateTestGroup("Update", owner.UserID)
	groups_testing.AddTestMember(group.ID, member.UserID)

	newName := "Renamed"
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/groups/"+group.ID.String(),
		"Bearer "+member.Token,
		groups_dto.UpdateGroupRequestDTO{Name: &newName},
		http.StatusForbidden,
	)

	var response test_utils.ResultOf[groups_models.Group]
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/groups/"+group.ID.String(),
		"Bearer "+owner.Token,
		groups_dto.UpdateGroupRequestDTO{Name: &newName},
		http.StatusOK,
		&response,
	)
	assert.Equal(t, newName, response.Data.Name)
}

func Test_DeleteGroup_WhenCallerIsGlobalAdmin_MembershipsRemoved(t *testing.T) {
	router := createGroupsTestRouter()
	admin := users_testing.GetTestAdmin()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	group := groups_testing.CreateTestGroup("Delete", owner.UserID)
	groups_testing.AddTestMember(group.ID, member.UserID)

	// warm the cached context so deletion has to invalidate it
	before, err := actors.GetActorService().ResolveActorContext(&member.UserID)
	require.NoError(t, err)
	require.True(t, before.IsMemberOf(group.ID))

	test_utils.MakeDeleteRequest(t, router, "/api/v1/groups/"+group.ID.String(), "Bearer "+member.Token, http.StatusForbidden)
	test_utils.MakeDeleteRequest(t, router, "/api/v1/groups/"+group.ID.String(), "Bearer "+admin.Token, http.StatusOK)

	test_utils.MakeGetRequest(t, router, "/api/v1/groups/"+group.ID.String(), "Bearer "+owner.Token, http.StatusNotFound)
	assert.False(t, groups_testing.IsMember(group.ID, member.UserID))

	after, err := actors.GetActorService().ResolveActorContext(&member.UserID)
	require.NoError(t, err)
	assert.False(t, after.IsMemberOf(group.ID))
}

func Test_TransferGroupAdmin_WhenTargetIsMember_RolesSwapped(t *testing.T) {
	router := createGroupsTestRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	group := groups_testing.CreateTestGroup("Transfer", owner.UserID)
	groups_testing.AddTestMember(group.ID, member.UserID)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/groups/"+group.ID.String()+"/transfer-admin",
		"Bearer "+owner.Token,
		groups_dto.TransferGroupAdminRequestDTO{NewAdminUserID: outsider.UserID},
		http.StatusBadRequest,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/groups/"+group.ID.String()+"/transfer-admin",
		"Bearer "+owner.Token,
		groups_dto.TransferGroupAdminRequestDTO{NewAdminUserID: member.UserID},
		http.StatusOK,
	)

	var members test_utils.ResultOf[groups_dto.GetMembersResponseDTO]
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/groups/"+group.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&members,
	)

	for _, m := range members.Data.Members {
		if m.UserID == member.UserID {
			assert.Equal(t, groups_enums.MemberRoleAdmin, m.Role)
		} else {
			assert.Equal(t, groups_enums.MemberRoleMember, m.Role)
		}
	}

	// the former creator is now an ordinary, removable member
	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/groups/"+group.ID.String()+"/members/"+owner.UserID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
	)
}

func Test_GetGroup_WithUnknownID_ReturnsNotFound(t *testing.T) {
	router := createGroupsTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(t, router, "/api/v1/groups/"+uuid.New().String(), "Bearer "+user.Token, http.StatusNotFound)
}

func findGroup(t *testing.T, router *gin.Engine, token string, groupID uuid.UUID) groups_dto.GroupResponseDTO {
	t.Helper()

	var response test_utils.ResultOf[groups_dto.ListGroupsResponseDTO]
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/groups", "Bearer "+token, http.StatusOK, &response)

	for _, group := range response.Data.Groups {
		if group.ID == groupID {
			return group
		}
	}

	t.Fatalf("group %s not listed", groupID)
	return groups_dto.GroupResponseDTO{}
}
