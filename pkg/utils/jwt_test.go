package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateAccessToken("user-1", "admin@health.gov.lk", RoleAdmin, time.Minute)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin@health.gov.lk", claims.Actor())
}

func TestValidateAccessTokenRejects(t *testing.T) {
	InitJWT("test-secret")

	expired, err := GenerateAccessToken("user-1", "", RoleAdmin, -time.Minute)
	require.NoError(t, err)
	_, err = ValidateAccessToken(expired)
	assert.Error(t, err, "expired")

	noSubject, err := GenerateAccessToken("", "", RoleAdmin, time.Minute)
	require.NoError(t, err)
	_, err = ValidateAccessToken(noSubject)
	assert.Error(t, err, "missing subject")

	InitJWT("other-secret")
	_, err = ValidateAccessToken(expired)
	assert.Error(t, err, "wrong secret")
}

func TestActorFallsBackToSubject(t *testing.T) {
	claims := &Claims{}
	claims.Subject = "user-7"
	assert.Equal(t, "user-7", claims.Actor())
}
