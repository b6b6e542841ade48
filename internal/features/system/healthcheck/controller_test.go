package system_healthcheck

import (
	"net/http"
	"testing"

	test_utils "jobtracker/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func Test_CheckHealth_WhenDependenciesUp_ReturnsAvailableWithUsage(t *testing.T) {
	test_utils.RequireInfrastructure(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	GetHealthcheckController().RegisterRoutes(router.Group("/api/v1"))

	var response HealthcheckResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/system/health", "", http.StatusOK, &response)

	assert.Equal(t, HealthStatusAvailable, response.Status)
	assert.Empty(t, response.Error)
	if assert.NotNil(t, response.Memory) {
		assert.Greater(t, response.Memory.TotalBytes, uint64(0))
	}
}
