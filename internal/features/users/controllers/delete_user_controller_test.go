package users_controllers

import (
	"net/http"
	"testing"

	groups_testing "jobtracker/internal/features/groups/testing"
	users_dto "jobtracker/internal/features/users/dto"
	users_repositories "jobtracker/internal/features/users/repositories"
	users_testing "jobtracker/internal/features/users/testing"
	"jobtracker/internal/storage"
	test_utils "jobtracker/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const deleteUserURL = "/api/v1/functions/delete-user"

func Test_DeleteUser_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createManagementTestRouter()

	resp := test_utils.MakePostRequest(t, router, deleteUserURL, "", users_dto.DeleteUserRequestDTO{UserID: uuid.NewString()}, http.StatusUnauthorized)

	assert.Contains(t, string(resp.Body), "missing auth token")
}

func Test_DeleteUser_WithInvalidToken_ReturnsUnauthorized(t *testing.T) {
	router := createManagementTestRouter()

	resp := test_utils.MakePostRequest(t, router, deleteUserURL, "Bearer garbage", users_dto.DeleteUserRequestDTO{UserID: uuid.NewString()}, http.StatusUnauthorized)

	assert.Contains(t, string(resp.Body), "unauthorized")
}

func Test_DeleteUser_WhenCallerIsNotAdmin_ReturnsForbidden(t *testing.T) {
	router := createManagementTestRouter()
	user := users_testing.CreateTestUser()
	other := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		deleteUserURL,
		"Bearer "+user.Token,
		users_dto.DeleteUserRequestDTO{UserID: other.UserID.String()},
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "forbidden")
}

func Test_DeleteUser_WithoutUserID_ReturnsBadRequest(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.GetTestAdmin()

	resp := test_utils.MakePostRequest(t, router, deleteUserURL, "Bearer "+admin.Token, map[string]string{}, http.StatusBadRequest)

	assert.Contains(t, string(resp.Body), "missing user_id")
}

func Test_DeleteUser_WithMalformedBody_ReturnsBadRequest(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.GetTestAdmin()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            deleteUserURL,
		Body:           `{"user_id": `,
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "invalid request format")
}

func Test_DeleteUser_WithEmptyBody_ReturnsMissingUserID(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.GetTestAdmin()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            deleteUserURL,
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "missing user_id")
}

func Test_DeleteUser_WhenDeletingSelf_ReturnsBadRequest(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.GetTestAdmin()

	resp := test_utils.MakePostRequest(
		t,
		router,
		deleteUserURL,
		"Bearer "+admin.Token,
		users_dto.DeleteUserRequestDTO{UserID: admin.UserID.String()},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "cannot delete your own user")
}

func Test_DeleteUser_WhenUserIsUnknown_ReturnsBadRequest(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.GetTestAdmin()

	test_utils.MakePostRequest(
		t,
		router,
		deleteUserURL,
		"Bearer "+admin.Token,
		users_dto.DeleteUserRequestDTO{UserID: uuid.NewString()},
		http.StatusBadRequest,
	)
}

func Test_DeleteUser_WhenCallerIsAdmin_UserRemoved(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.GetTestAdmin()
	user := users_testing.CreateTestUser()

	var response test_utils.ResultOf[any]
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		deleteUserURL,
		"Bearer "+admin.Token,
		users_dto.DeleteUserRequestDTO{UserID: user.UserID.String()},
		http.StatusOK,
		&response,
	)
	assert.True(t, response.Success)

	_, err := (&users_repositories.UserRepository{}).GetUserByID(user.UserID)
	assert.True(t, storage.IsNotFound(err))
}

func Test_DeleteUser_WhenUserCreatedGroups_ReturnsBadRequest(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.GetTestAdmin()
	owner := users_testing.CreateTestUser()
	groups_testing.CreateTestGroup("Owned", owner.UserID)

	resp := test_utils.MakePostRequest(
		t,
		router,
		deleteUserURL,
		"Bearer "+admin.Token,
		users_dto.DeleteUserRequestDTO{UserID: owner.UserID.String()},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "still owns groups")
	assert.NotNil(t, users_testing.GetUser(owner.UserID))
}
