package auth

import (
	"testing"
	"time"

	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-prueba-con-al-menos-32-caracteres"

func testUser() *models.User {
	return &models.User{
		ID:    7,
		Name:  "Fabián",
		Email: "fabian@capri.local",
		Role:  models.RoleAdmin,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, 7*24*time.Hour, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "fabian@capri.local", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	// expiración ~7 días adelante
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, time.Hour, testUser())
	require.NoError(t, err)

	_, err = ParseToken("otra-clave-igual-de-larga-pero-distinta!!", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, -time.Minute, testUser())
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
