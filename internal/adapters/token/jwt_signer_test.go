package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, cfg Config) *JWTSigner {
	t.Helper()
	if cfg.AccessSecret == nil {
		cfg.AccessSecret = []byte("access-secret")
	}
	if cfg.RefreshSecret == nil {
		cfg.RefreshSecret = []byte("refresh-secret")
	}
	signer, err := NewJWTSigner(cfg)
	require.NoError(t, err)
	return signer.(*JWTSigner)
}

func TestNewJWTSignerRequiresSecrets(t *testing.T) {
	_, err := NewJWTSigner(Config{RefreshSecret: []byte("r")})
	assert.Error(t, err)

	_, err = NewJWTSigner(Config{AccessSecret: []byte("a")})
	assert.Error(t, err)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer := newTestSigner(t, Config{})

	access, err := signer.SignAccess("user-1", "u@test.io")
	require.NoError(t, err)
	refresh, err := signer.SignRefresh("user-1", "u@test.io")
	require.NoError(t, err)

	sub, err := signer.VerifyAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	sub, err = signer.VerifyRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestTokenClassesUseDistinctSecrets(t *testing.T) {
	signer := newTestSigner(t, Config{})

	access, err := signer.SignAccess("user-1", "u@test.io")
	require.NoError(t, err)
	refresh, err := signer.SignRefresh("user-1", "u@test.io")
	require.NoError(t, err)

	_, err = signer.VerifyRefresh(access)
	assert.Error(t, err)
	_, err = signer.VerifyAccess(refresh)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer := newTestSigner(t, Config{RefreshTTL: -time.Minute})

	refresh, err := signer.SignRefresh("user-1", "u@test.io")
	require.NoError(t, err)

	_, err = signer.VerifyRefresh(refresh)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := newTestSigner(t, Config{})

	_, err := signer.VerifyRefresh("not.a.jwt")
	assert.Error(t, err)
}

func TestConsecutiveTokensDiffer(t *testing.T) {
	signer := newTestSigner(t, Config{})

	first, err := signer.SignRefresh("user-1", "u@test.io")
	require.NoError(t, err)
	second, err := signer.SignRefresh("user-1", "u@test.io")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
