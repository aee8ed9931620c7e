package services

import (
	"context"
	"fmt"

	"github.com/promoforge/prizes-backend/internal/models"
	"github.com/promoforge/prizes-backend/internal/repositories"
)

var _ SponsorService = (*SponsorServiceImpl)(nil)

type SponsorServiceImpl struct {
	sponsorRepo repositories.SponsorRepository
}

// NewSponsorService creates a new SponsorServiceImpl
func NewSponsorService(sponsorRepo repositories.SponsorRepository) *SponsorServiceImpl {
	return &SponsorServiceImpl{sponsorRepo: sponsorRepo}
}

// ListSponsors returns sponsors, filtered by status when one is given. The
// creation form requests status=Active so only active sponsors are
// selectable.
func (s *SponsorServiceImpl) ListSponsors(ctx context.Context, status string) ([]*models.Sponsor, error) {
	var (
		sponsors []*models.Sponsor
		err      error
	)
	if status == "" {
		sponsors, err = s.sponsorRepo.FindAll(ctx)
	} else {
		sponsors, err = s.sponsorRepo.FindByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sponsors: %w", err)
	}
	return sponsors, nil
}
