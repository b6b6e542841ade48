package downdetect

import (
	"testing"

	test_utils "jobtracker/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsAvailable_WhenDatabaseAndCacheUp_ReturnsNil(t *testing.T) {
	test_utils.RequireInfrastructure(t)

	assert.NoError(t, GetDowndetectService().IsAvailable())
}
