package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := h.Verify("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_Verify_NoStoredHash(t *testing.T) {
	h := NewHasher()

	// An account that never completed verification has no hash yet.
	ok, err := h.Verify("anything", "")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = h.Verify("anything", "not-an-encoded-hash")
	require.NoError(t, err)
	assert.False(t, ok)
}
