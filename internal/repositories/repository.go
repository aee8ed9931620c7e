package repositories

import (
	"context"

	"github.com/promoforge/prizes-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrizeRepository defines the interface for prize data operations
type PrizeRepository interface {
	Create(ctx context.Context, prize *models.Prize) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prize, error)
	FindAll(ctx context.Context) ([]*models.Prize, error)
	Count(ctx context.Context) (int64, error)
}

// SponsorRepository defines the interface for sponsor data operations.
// AppendPrizeCreation uses set-union semantics: adding an id that is already
// present leaves the array unchanged.
type SponsorRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sponsor, error)
	FindAll(ctx context.Context) ([]*models.Sponsor, error)
	FindByStatus(ctx context.Context, status string) ([]*models.Sponsor, error)
	AppendPrizeCreation(ctx context.Context, sponsorID, prizeID primitive.ObjectID) error
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}
