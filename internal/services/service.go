package services

import (
	"context"
	"io"

	"github.com/promoforge/prizes-backend/internal/models"
)

// PrizeService defines the interface for prize-related operations
type PrizeService interface {
	// ListPrizes returns the display rows for the prize list screen. Fetch
	// failures are logged and degrade to an empty list; they never surface
	// to the caller.
	ListPrizes(ctx context.Context) []*models.PrizeListItem

	// CreatePrize runs the full creation pipeline: validate the draft,
	// enforce the image precondition, upload the staged images in order,
	// persist the prize document, and best-effort link it to the sponsor.
	CreatePrize(ctx context.Context, draft *models.PrizeDraft, images []models.StagedImage) (*models.Prize, error)
}

// SponsorService defines the interface for sponsor directory operations
type SponsorService interface {
	// ListSponsors returns sponsors, optionally filtered by status. The
	// creation form consumes the "Active" subset when it opens.
	ListSponsors(ctx context.Context, status string) ([]*models.Sponsor, error)
}

// AuthService defines the interface for admin authentication operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error) // returns a JWT
}

// Uploader is the blob-store contract consumed by the creation pipeline:
// put the file under the given key and resolve a publicly fetchable URL.
type Uploader interface {
	Upload(ctx context.Context, key string, file io.Reader) (string, error)
}
