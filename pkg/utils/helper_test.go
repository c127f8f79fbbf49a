package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
	assert.Equal(t, 25, ParseInt("25", 10))
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2025-05-01T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC), got)

	_, err = ParseTimestamp("2025-05-01")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
