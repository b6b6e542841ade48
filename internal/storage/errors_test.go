package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func Test_IsUniqueViolation_WhenWrappedPgError_ReturnsTrue(t *testing.T) {
	err := fmt.Errorf("failed to add member: %w", &pgconn.PgError{Code: "23505"})

	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
	assert.False(t, IsSchemaMismatch(err))
}

func Test_IsForeignKeyViolation_WhenPgError_ReturnsTrue(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
}

func Test_IsSchemaMismatch_WhenColumnOrTableMissing_ReturnsTrue(t *testing.T) {
	assert.True(t, IsSchemaMismatch(&pgconn.PgError{Code: "42703"}))
	assert.True(t, IsSchemaMismatch(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsSchemaMismatch(&pgconn.PgError{Code: "42601"}))
}

func Test_Classifiers_WhenNotPgError_ReturnFalse(t *testing.T) {
	err := errors.New("connection reset")

	assert.False(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
	assert.False(t, IsSchemaMismatch(err))
	assert.False(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)))
}

func Test_EscapeLike_WithWildcards_EscapesThem(t *testing.T) {
	assert.Equal(t, `50\% off`, EscapeLike("50% off"))
	assert.Equal(t, `snake\_case`, EscapeLike("snake_case"))
	assert.Equal(t, `back\\slash`, EscapeLike(`back\slash`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}
