package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	p := &Principal{UserID: "u-1", Name: "Alice", Role: "customer"}
	token, err := SignJWT("secret", p, time.Minute, TokenAccess)
	require.NoError(t, err)

	claims, err := ParseAndValidate("secret", token, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "customer", claims.Role)
}

func TestParse_Rejects(t *testing.T) {
	p := &Principal{UserID: "u-1"}

	token, err := SignJWT("secret", p, time.Minute, TokenRefresh)
	require.NoError(t, err)
	_, err = ParseAndValidate("secret", token, TokenAccess)
	assert.Error(t, err, "refresh token used as access token")

	_, err = ParseAndValidate("other", token, TokenRefresh)
	assert.Error(t, err, "wrong secret")

	expired, err := SignJWT("secret", p, -time.Minute, TokenAccess)
	require.NoError(t, err)
	_, err = ParseAndValidate("secret", expired, TokenAccess)
	assert.Error(t, err, "expired")

	_, err = ParseAndValidate("secret", "not-a-jwt", TokenAccess)
	assert.Error(t, err)
}
