package users_controllers

import (
	"net/http"
	"testing"

	users_models "jobtracker/internal/features/users/models"
	users_testing "jobtracker/internal/features/users/testing"
	test_utils "jobtracker/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetUserSettings_WhenUserIsAdmin_ReturnsSettings(t *testing.T) {
	users_testing.ResetSettingsToDefaults()
	router := createSettingsTestRouter()
	admin := users_testing.GetTestAdmin()

	var response test_utils.ResultOf[users_models.UsersSettings]
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/users/settings", "Bearer "+admin.Token, http.StatusOK, &response)

	assert.True(t, response.Data.IsAllowExternalRegistrations)
	assert.True(t, response.Data.IsMemberAllowedToCreateGroups)
}

func Test_GetUserSettings_WhenUserIsRegular_ReturnsSettings(t *testing.T) {
	users_testing.ResetSettingsToDefaults()
	router := createSettingsTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/settings", "Bearer "+user.Token, http.StatusOK)
}

func Test_GetUserSettings_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createSettingsTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/settings", "", http.StatusUnauthorized)
}

func Test_UpdateUserSettings_WhenUserIsAdmin_SettingsUpdated(t *testing.T) {
	users_testing.ResetSettingsToDefaults()
	defer users_testing.ResetSettingsToDefaults()
	router := createSettingsTestRouter()
	admin := users_testing.GetTestAdmin()

	request := users_models.UsersSettings{
		IsAllowExternalRegistrations:  false,
		IsMemberAllowedToCreateGroups: false,
	}

	var response test_utils.ResultOf[users_models.UsersSettings]
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/settings",
		"Bearer "+admin.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.False(t, response.Data.IsAllowExternalRegistrations)
	assert.False(t, response.Data.IsMemberAllowedToCreateGroups)
}

func Test_UpdateUserSettings_WhenUserIsRegular_ReturnsForbidden(t *testing.T) {
	router := createSettingsTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/settings",
		"Bearer "+user.Token,
		users_models.UsersSettings{IsAllowExternalRegistrations: false},
		http.StatusForbidden,
	)
}

func Test_UpdateUserSettings_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createSettingsTestRouter()
	admin := users_testing.GetTestAdmin()

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "PUT",
		URL:            "/api/v1/users/settings",
		Body:           "invalid json",
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusBadRequest,
	})
}
