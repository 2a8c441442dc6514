package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessToken(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	id := uuid.New()

	token, err := m.GenerateAccessToken(id, "admin", "root", []string{"manage-products"})
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.SubjectID)
	assert.Equal(t, "admin", claims.Kind)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, []string{"manage-products"}, claims.Permissions)
}

func TestJWTManager_TokenTypesAreNotInterchangeable(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	id := uuid.New()

	refresh, err := m.GenerateRefreshToken(id, "customer", "adal1234")
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)

	access, err := m.GenerateAccessToken(id, "customer", "adal1234", nil)
	require.NoError(t, err)
	_, _, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	sub, claims, err := m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, id, sub)
	assert.Equal(t, "customer", claims.Kind)
}

func TestJWTManager_RejectsOtherSecretAndExpired(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, time.Hour)
	token, err := m.GenerateAccessToken(uuid.New(), "customer", "a", nil)
	require.NoError(t, err)

	_, err = NewJWTManager("other", time.Hour, time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)

	expired := NewJWTManager("secret", -time.Minute, time.Hour)
	token, err = expired.GenerateAccessToken(uuid.New(), "customer", "a", nil)
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestGenerateUsername(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^adal\d{4}$`), GenerateUsername("Ada", "Lovelace"))
	assert.Regexp(t, regexp.MustCompile(`^jos\d{4}$`), GenerateUsername("José", ""))
	assert.Regexp(t, regexp.MustCompile(`^user\d{4}$`), GenerateUsername("", ""))
}

func TestGenerateNumbers(t *testing.T) {
	at := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.True(t, strings.HasPrefix(GenerateInvoiceNo(at), "INV-20240305-"))
	assert.Len(t, GenerateTrackingNumber(), 15)
	assert.NotEqual(t, GenerateTrackingNumber(), GenerateTrackingNumber())
}
