package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	parts := strings.SplitN(hash, ".", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 128) // 64-byte key, hex encoded
	assert.Len(t, parts[1], 32)  // 16-byte salt, hex encoded
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, ComparePassword(hash, "correct horse battery staple"))
	assert.False(t, ComparePassword(hash, "wrong password"))
	assert.False(t, ComparePassword(hash, ""))
}

func TestComparePasswordMalformedStored(t *testing.T) {
	assert.False(t, ComparePassword("no-separator", "anything"))
	assert.False(t, ComparePassword("nothex.nothex", "anything"))
	assert.False(t, ComparePassword("", "anything"))
}
