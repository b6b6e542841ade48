package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobtracker/internal/util/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StatusOf_MapsErrorClasses(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"no error", nil, http.StatusOK},
		{"not authenticated", app_errors.New(app_errors.ErrNotAuthenticated, "x"), http.StatusUnauthorized},
		{"permission denied", app_errors.New(app_errors.ErrPermissionDenied, "x"), http.StatusForbidden},
		{"not found", app_errors.New(app_errors.ErrNotFound, "x"), http.StatusNotFound},
		{"conflict", app_errors.New(app_errors.ErrConflict, "x"), http.StatusConflict},
		{"validation", app_errors.New(app_errors.ErrValidation, "x"), http.StatusBadRequest},
		{
			"wrapped conflict",
			fmt.Errorf("failed: %w", app_errors.New(app_errors.ErrConflict, "x")),
			http.StatusConflict,
		},
		{"plain error", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusOf(tc.err))
		})
	}
}

func Test_FailFromError_WhenUnclassified_HidesMessage(t *testing.T) {
	response := serve(func(ctx *gin.Context) {
		FailFromError(ctx, errors.New("pq: connection refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, response.Code)

	var body Result
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "internal error", body.Error)
}

func Test_OK_WhenDataIsEmptySlice_KeepsDataField(t *testing.T) {
	response := serve(func(ctx *gin.Context) {
		OK(ctx, []string{})
	})

	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, response.Body.String())
}

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handler)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(recorder, request)

	return recorder
}
