package utils

import (
	"testing"

	"github.com/promoforge/prizes-backend/internal/config"
	"github.com/promoforge/prizes-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}
	adminUser := &models.AdminUser{
		ID:    primitive.NewObjectID(),
		Email: "ada@promoforge.com",
		Role:  "admin",
	}

	token, err := GenerateToken(adminUser, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, adminUser.ID.Hex(), claims["sub"])
	assert.Equal(t, "ada@promoforge.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}
	token, err := GenerateToken(&models.AdminUser{ID: primitive.NewObjectID()}, cfg)
	require.NoError(t, err)

	other := &config.Config{JWT: config.JWTConfig{Secret: "different-secret"}}
	_, err = ValidateToken(token, other)
	require.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken(&models.AdminUser{}, &config.Config{})
	require.Error(t, err)
}
