package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "demo@cinebook.local", time.Hour)
	require.NoError(t, err)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "demo@cinebook.local", -time.Hour)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
