package utils

import (
	"testing"
	"time"

	"dochouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndExtractEmail(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := IssueToken(map[string]interface{}{"email": "a@x.com"}, TokenTTL)
	require.NoError(t, err)

	email, err := ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestIssueTokenUserEmailClaim(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := IssueToken(map[string]interface{}{"userEmail": "a@x.com"}, TokenTTL)
	require.NoError(t, err)

	email, err := ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := IssueToken(map[string]interface{}{"email": "a@x.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := IssueToken(map[string]interface{}{"email": "a@x.com"}, TokenTTL)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ExtractEmailFromToken(token)
	assert.Error(t, err)
}

func TestTokenWithoutEmailClaim(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := IssueToken(map[string]interface{}{"name": "nobody"}, TokenTTL)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)
	assert.Error(t, err)
}
