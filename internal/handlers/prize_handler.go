package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promoforge/prizes-backend/internal/models"
	"github.com/promoforge/prizes-backend/internal/services"
)

// PrizeHandler handles prize-related HTTP requests
type PrizeHandler struct {
	prizeService services.PrizeService
}

// NewPrizeHandler creates a new PrizeHandler
func NewPrizeHandler(prizeService services.PrizeService) *PrizeHandler {
	return &PrizeHandler{
		prizeService: prizeService,
	}
}

// ListPrizes handles GET /prizes. Fetch failures degrade to an empty list
// inside the service, so this endpoint always answers 200.
func (h *PrizeHandler) ListPrizes(c *gin.Context) {
	items := h.prizeService.ListPrizes(c.Request.Context())
	c.JSON(http.StatusOK, items)
}

// CreatePrize handles POST /prizes. The request is a multipart form with
// the draft fields plus up to four files under "images"; any files beyond
// the cap are silently ignored rather than rejected.
func (h *PrizeHandler) CreatePrize(c *gin.Context) {
	var draft models.PrizeDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := c.MultipartForm()
	if err != nil && err != http.ErrNotMultipart {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	stage := models.NewImageStage()
	if form != nil {
		for _, fileHeader := range form.File["images"] {
			if stage.Full() {
				break
			}
			file, openErr := fileHeader.Open()
			if openErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open image: " + fileHeader.Filename})
				return
			}
			defer file.Close()
			stage.Add(models.StagedImage{Filename: fileHeader.Filename, File: file})
		}
	}

	prize, err := h.prizeService.CreatePrize(c.Request.Context(), &draft, stage.Images())
	if err != nil {
		status, payload := createErrorResponse(err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusCreated, prize)
}

// createErrorResponse maps pipeline errors onto the error taxonomy: field
// validation errors carry per-field messages, the image precondition and
// sponsor checks carry a standalone message, everything else is a single
// consolidated failure with the underlying error text.
func createErrorResponse(err error) (int, gin.H) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields}
	}
	switch {
	case errors.Is(err, services.ErrNoImages),
		errors.Is(err, services.ErrSponsorNotFound),
		errors.Is(err, services.ErrSponsorInactive):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": "Failed to create prize: " + err.Error()}
	}
}

// GetPrizeOptions handles GET /prizes/options: the fixed enumerations the
// creation form renders.
func (h *PrizeHandler) GetPrizeOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":         models.DefaultPrizeCategories,
		"fulfillmentMethods": models.FulfillmentMethods,
		"deliveryTimelines":  models.DeliveryTimelines,
		"claimWindows":       models.ClaimWindows,
		"regions":            models.EligibleRegionNames,
		"maxImages":          models.MaxPrizeImages,
	})
}
