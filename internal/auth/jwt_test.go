package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret")

	access, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := m.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	userID, err = m.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenManager_SecretsAreNotInterchangeable(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret")

	access, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsForeignToken(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret")
	other := NewTokenManager("different", "different")

	token, err := other.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
