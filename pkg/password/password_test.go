package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, hasher.Verify("correct horse battery staple", hash))
	require.False(t, hasher.Verify("wrong password", hash))
	require.False(t, hasher.Verify("", hash))
}

func TestHashesAreSalted(t *testing.T) {
	hasher := NewHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, hasher.Verify("same password", first))
	require.True(t, hasher.Verify("same password", second))
}
