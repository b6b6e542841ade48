package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetCapabilities_WhenOverridden_ReturnsStoredValue(t *testing.T) {
	previous := GetCapabilities()
	defer SetCapabilities(previous)

	SetCapabilities(Capabilities{JobEnrichment: false, UserSoftDelete: true})

	caps := GetCapabilities()
	assert.False(t, caps.JobEnrichment)
	assert.True(t, caps.UserSoftDelete)
}
