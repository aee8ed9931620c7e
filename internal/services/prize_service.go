package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/promoforge/prizes-backend/internal/models"
	"github.com/promoforge/prizes-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Compile-time check to ensure PrizeServiceImpl implements PrizeService
var _ PrizeService = (*PrizeServiceImpl)(nil)

// usdPrinter renders the list screen's display value: localized USD with no
// fractional digits. Display only; the stored retail value is untouched.
var usdPrinter = message.NewPrinter(language.AmericanEnglish)

type PrizeServiceImpl struct {
	prizeRepo    repositories.PrizeRepository
	sponsorRepo  repositories.SponsorRepository
	uploader     Uploader
	validate     *validator.Validate
	uploadFolder string
}

// NewPrizeService creates a new PrizeServiceImpl. uploadFolder namespaces
// the blob-store keys for prize images (e.g. "prizes").
func NewPrizeService(prizeRepo repositories.PrizeRepository, sponsorRepo repositories.SponsorRepository, uploader Uploader, uploadFolder string) *PrizeServiceImpl {
	validate := validator.New()
	// Report violations under the form field names the dashboard submits.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &PrizeServiceImpl{
		prizeRepo:    prizeRepo,
		sponsorRepo:  sponsorRepo,
		uploader:     uploader,
		validate:     validate,
		uploadFolder: uploadFolder,
	}
}

// ListPrizes returns the list-screen rows. A fetch failure is logged and the
// screen falls back to an empty list; this read path never blocks the UI.
func (s *PrizeServiceImpl) ListPrizes(ctx context.Context) []*models.PrizeListItem {
	prizes, err := s.prizeRepo.FindAll(ctx)
	if err != nil {
		slog.Error("failed to fetch prizes, rendering empty list", "error", err)
		return []*models.PrizeListItem{}
	}

	items := make([]*models.PrizeListItem, 0, len(prizes))
	for _, prize := range prizes {
		items = append(items, &models.PrizeListItem{
			ID:                 prize.ID,
			PrizeName:          prize.PrizeName,
			Keywords:           prize.Keywords,
			Thumbnail:          prize.Thumbnail,
			RetailValueUSD:     prize.RetailValueUSD,
			RetailValueDisplay: formatRetailValue(prize.RetailValueUSD),
			SponsorID:          prize.SponsorID,
			QuantityAvailable:  prize.QuantityAvailable,
			Status:             prize.Status,
			StatusColor:        models.StatusColor(prize.Status),
		})
	}
	return items
}

// formatRetailValue renders a string-encoded retail value as whole-dollar
// USD. Unparseable stored values fall through as-is rather than breaking
// the list.
func formatRetailValue(retailValue string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(retailValue), 64)
	if err != nil {
		return retailValue
	}
	return usdPrinter.Sprintf("$%d", int64(math.Round(v)))
}

// CreatePrize executes the submission sequence. The prize insert is the
// durability boundary: once the document is written the operation succeeds,
// and the sponsor link that follows is advisory.
func (s *PrizeServiceImpl) CreatePrize(ctx context.Context, draft *models.PrizeDraft, images []models.StagedImage) (*models.Prize, error) {
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	// The image precondition fires after schema validation and carries its
	// own standalone message instead of a field error.
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if len(images) > models.MaxPrizeImages {
		images = images[:models.MaxPrizeImages]
	}

	sponsorID, _ := primitive.ObjectIDFromHex(draft.SponsorID)
	sponsor, err := s.sponsorRepo.FindByID(ctx, sponsorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to look up sponsor: %w", err)
	}
	if sponsor.Status != models.SponsorStatusActive {
		return nil, ErrSponsorInactive
	}

	// Uploads run sequentially in attachment order so the first URL is the
	// thumbnail and a failure at index i means nothing past i was sent. Any
	// failure aborts the whole submission before the document is written;
	// already-uploaded files are left behind in blob storage.
	urls := make([]string, 0, len(images))
	for _, img := range images {
		key := fmt.Sprintf("%s/%d_%s", s.uploadFolder, time.Now().UnixMilli(), img.Filename)
		url, uploadErr := s.uploader.Upload(ctx, key, img.File)
		if uploadErr != nil {
			return nil, fmt.Errorf("image upload failed for %s: %w", img.Filename, uploadErr)
		}
		urls = append(urls, url)
	}

	prize, err := assemblePrize(draft, sponsorID, urls)
	if err != nil {
		return nil, err
	}

	if err := s.prizeRepo.Create(ctx, prize); err != nil {
		return nil, fmt.Errorf("failed to save prize: %w", err)
	}

	// Best effort only: the prize document is already durable, so a failed
	// link is logged and swallowed rather than failing the operation.
	if err := s.sponsorRepo.AppendPrizeCreation(ctx, sponsorID, prize.ID); err != nil {
		slog.Warn("failed to link prize to sponsor",
			"prizeId", prize.ID.Hex(),
			"sponsorId", sponsorID.Hex(),
			"error", err)
	}

	slog.Info("prize created", "prizeId", prize.ID.Hex(), "name", prize.PrizeName, "images", len(prize.Images))
	return prize, nil
}

// assemblePrize builds the final document from the draft and the uploaded
// image URLs. The break-even value is recomputed here from the current
// retail value, never taken from a cached display value.
func assemblePrize(draft *models.PrizeDraft, sponsorID primitive.ObjectID, imageURLs []string) (*models.Prize, error) {
	retail, err := strconv.ParseFloat(strings.TrimSpace(draft.RetailValueUSD), 64)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"retailValueUSD": "retailValueUSD must be a number"}}
	}

	thumbnail := ""
	if len(imageURLs) > 0 {
		thumbnail = imageURLs[0]
	}

	prize := &models.Prize{
		PrizeName:         strings.TrimSpace(draft.PrizeName),
		QuantityAvailable: strings.TrimSpace(draft.QuantityAvailable),
		FullDescription:   draft.FullDescription,
		Keywords:          draft.Keywords(),
		Tags:              draft.Tags,
		Thumbnail:         thumbnail,
		Images:            imageURLs,
		SponsorID:         sponsorID,
		PrizeCategory:     draft.PrizeCategory,
		StockDate:         draft.StockDate,
		FulfillmentMethod: draft.FulfillmentMethod,
		DeliveryTimeline:  draft.DeliveryTimeline,
		ClaimWindow:       draft.ClaimWindow,
		PickupRequired:    draft.PickupRequired,
		IDRequired:        draft.IDRequired,
		EligibleRegions:   draft.EligibleRegions,
		RetailValueUSD:    strings.TrimSpace(draft.RetailValueUSD),
		BreakEvenValue:    models.BreakEvenValue(retail),
		AgeRestriction:    draft.AgeRestriction,
		UseStandardTerms:  draft.UseStandardTerms,
		TermsAccepted:     draft.TermsAccepted,
		AdditionalInfo:    draft.AdditionalInfo,
		Status:            models.PrizeStatusActive,
	}

	if draft.UseStandardTerms {
		prize.TermsConditions = models.StandardTermsURL
	} else {
		prize.CustomTermsURL = draft.CustomTermsURL
		prize.CustomTermsType = draft.CustomTermsType
		if prize.CustomTermsType == "" {
			prize.CustomTermsType = "url"
		}
	}

	return prize, nil
}

// validateDraft enforces the declarative field schema plus the numeric and
// reference checks the tag syntax cannot express. Category and region enum
// membership is intentionally not enforced here; the pickers constrain it.
func (s *PrizeServiceImpl) validateDraft(draft *models.PrizeDraft) error {
	fields := map[string]string{}

	if err := s.validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("failed to validate prize draft: %w", err)
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	if _, ok := fields["quantityAvailable"]; !ok && draft.QuantityAvailable != "" {
		if _, err := strconv.ParseUint(strings.TrimSpace(draft.QuantityAvailable), 10, 64); err != nil {
			fields["quantityAvailable"] = "quantityAvailable must be a non-negative whole number"
		}
	}

	if _, ok := fields["retailValueUSD"]; !ok && draft.RetailValueUSD != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(draft.RetailValueUSD), 64)
		if err != nil || v < 0 {
			fields["retailValueUSD"] = "retailValueUSD must be a non-negative number"
		}
	}

	if _, ok := fields["sponsorId"]; !ok && draft.SponsorID != "" {
		if _, err := primitive.ObjectIDFromHex(draft.SponsorID); err != nil {
			fields["sponsorId"] = "sponsorId is not a valid id"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// fieldMessage maps a validator violation to the inline message shown next
// to the offending field.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
