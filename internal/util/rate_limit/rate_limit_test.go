package rate_limit

import (
	"testing"
	"time"

	test_utils "jobtracker/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CheckRateLimit_WithinLimits_AllowsRequest(t *testing.T) {
	test_utils.RequireInfrastructure(t)
	rateLimiter := NewRateLimiter("test", 600, 20)
	subject := uuid.NewString()

	result, err := rateLimiter.CheckRateLimit(subject)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 19, result.Remaining)
	assert.Equal(t, 0, result.RetryAfterSec)
	assert.True(t, result.ResetTime.After(time.Now().Add(-time.Second)))
}

func Test_CheckRateLimit_ExceedsBurstLimit_DeniesRequest(t *testing.T) {
	test_utils.RequireInfrastructure(t)
	rateLimiter := NewRateLimiter("test", 1, 2)
	subject := uuid.NewString()

	for i := 0; i < 2; i++ {
		result, err := rateLimiter.CheckRateLimit(subject)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i+1)
	}

	result, err := rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
	assert.GreaterOrEqual(t, result.RetryAfterSec, 60)
	assert.True(t, result.ResetTime.After(time.Now()))
}

func Test_CheckRateLimit_TokensRefillOverTime_AllowsRequestsAfterWait(t *testing.T) {
	test_utils.RequireInfrastructure(t)
	// 600 per minute refills one token every 100ms
	rateLimiter := NewRateLimiter("test", 600, 1)
	subject := uuid.NewString()

	result, err := rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	time.Sleep(150 * time.Millisecond)

	result, err = rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func Test_CheckRateLimit_DifferentSubjects_IsolatedLimits(t *testing.T) {
	test_utils.RequireInfrastructure(t)
	rateLimiter := NewRateLimiter("test", 1, 1)
	first := uuid.NewString()
	second := uuid.NewString()

	result, err := rateLimiter.CheckRateLimit(first)
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = rateLimiter.CheckRateLimit(first)
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	result, err = rateLimiter.CheckRateLimit(second)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func Test_CheckRateLimit_DifferentPrefixes_IsolatedLimits(t *testing.T) {
	test_utils.RequireInfrastructure(t)
	subject := uuid.NewString()
	signin := NewRateLimiter("test_signin", 1, 1)
	export := NewRateLimiter("test_export", 1, 1)

	result, err := signin.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = export.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func Test_NewRateLimiter_WhenLimitsInvalid_UsesDefaults(t *testing.T) {
	rateLimiter := NewRateLimiter("test", 0, -1)

	assert.Equal(t, "rate_limit:test:", rateLimiter.keyPrefix)
	assert.Equal(t, 1.0, rateLimiter.rpsLimit)
	assert.Equal(t, 60, rateLimiter.burstLimit)
}

func Test_ResetRateLimit_ClearsRateLimitData(t *testing.T) {
	test_utils.RequireInfrastructure(t)
	rateLimiter := NewRateLimiter("test", 1, 1)
	subject := uuid.NewString()

	result, err := rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	require.NoError(t, rateLimiter.ResetRateLimit(subject))

	result, err = rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func Test_CheckRateLimit_HighThroughput_AllowsExactlyBurst(t *testing.T) {
	test_utils.RequireInfrastructure(t)
	rateLimiter := NewRateLimiter("test", 60, 10)
	subject := uuid.NewString()

	allowedCount := 0
	for i := 0; i < 50; i++ {
		result, err := rateLimiter.CheckRateLimit(subject)
		require.NoError(t, err)

		if result.Allowed {
			allowedCount++
		}
	}

	assert.Equal(t, 10, allowedCount)
}

func Test_CheckRateLimit_RetryAfterSeconds_RoundedUp(t *testing.T) {
	test_utils.RequireInfrastructure(t)
	// 120 per minute is one token every 500ms
	rateLimiter := NewRateLimiter("test", 120, 1)
	subject := uuid.NewString()

	result, err := rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = rateLimiter.CheckRateLimit(subject)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 1, result.RetryAfterSec)
	assert.True(t, result.ResetTime.Before(time.Now().Add(2*time.Second)))
}
