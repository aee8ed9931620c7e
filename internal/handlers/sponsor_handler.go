package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promoforge/prizes-backend/internal/services"
)

// SponsorHandler handles sponsor directory HTTP requests
type SponsorHandler struct {
	sponsorService services.SponsorService
}

// NewSponsorHandler creates a new SponsorHandler
func NewSponsorHandler(sponsorService services.SponsorService) *SponsorHandler {
	return &SponsorHandler{
		sponsorService: sponsorService,
	}
}

// ListSponsors handles GET /sponsors. The creation form calls it with
// ?status=Active when it opens.
func (h *SponsorHandler) ListSponsors(c *gin.Context) {
	sponsors, err := h.sponsorService.ListSponsors(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get sponsors: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, sponsors)
}
