package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.True(t, hasher.Check("secret123", hashed))
	assert.False(t, hasher.Check("wrong-password", hashed))
}

func TestHashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()
	assert.False(t, hasher.Check("secret123", "not-a-bcrypt-hash"))
}
