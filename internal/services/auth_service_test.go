package services

import (
	"context"
	"testing"

	"github.com/promoforge/prizes-backend/internal/config"
	"github.com/promoforge/prizes-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeAdminUserRepo struct {
	byEmail map[string]*models.AdminUser
}

func (r *fakeAdminUserRepo) Create(_ context.Context, adminUser *models.AdminUser) error {
	adminUser.ID = primitive.NewObjectID()
	r.byEmail[adminUser.Email] = adminUser
	return nil
}

func (r *fakeAdminUserRepo) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if adminUser, ok := r.byEmail[email]; ok {
		return adminUser, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	for _, adminUser := range r.byEmail {
		if adminUser.ID == id {
			return adminUser, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := &fakeAdminUserRepo{byEmail: map[string]*models.AdminUser{}}
	svc := NewAuthService(repo, testConfig())

	req := &models.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "ada@promoforge.com",
		Password:  "s3cret-pass",
	}

	adminUser, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, adminUser.Password)
	assert.Equal(t, "admin", adminUser.Role)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(context.Background(), req)
		require.Error(t, err)
	})

	t.Run("login with correct password", func(t *testing.T) {
		token, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ada@promoforge.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ada@promoforge.com",
			Password: "wrong",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@promoforge.com",
			Password: "s3cret-pass",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
