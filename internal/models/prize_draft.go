package models

import (
	"io"
	"math"
	"strings"
)

// PrizeDraft carries the raw creation-form input across all six sections.
// Enum membership for category and region is constrained by the pickers,
// not by the schema, so those fields are only checked for presence here.
type PrizeDraft struct {
	// Basic info
	PrizeName         string `form:"prizeName" validate:"required,max=200"`
	QuantityAvailable string `form:"quantityAvailable" validate:"required"`
	FullDescription   string `form:"fullDescription" validate:"required,max=2000"`
	DetailOne         string `form:"detailOne"`
	DetailTwo         string `form:"detailTwo"`
	DetailThree       string `form:"detailThree"`
	Tags              string `form:"tags" validate:"required"`

	// Sponsorship
	SponsorID string `form:"sponsorId" validate:"required"`

	// Categorization
	PrizeCategory string `form:"prizeCategory" validate:"required"`

	// Fulfillment & logistics
	StockDate         string `form:"stockDate" validate:"required,datetime=2006-01-02"`
	FulfillmentMethod string `form:"fulfillmentMethod" validate:"required"`
	DeliveryTimeline  string `form:"deliveryTimeline" validate:"required"`
	ClaimWindow       string `form:"claimWindow" validate:"required"`
	PickupRequired    bool   `form:"pickupRequired"`
	IDRequired        bool   `form:"idRequired"`
	EligibleRegions   string `form:"eligibleRegions" validate:"required"`

	// Value & rules
	RetailValueUSD string `form:"retailValueUSD" validate:"required"`
	AgeRestriction string `form:"ageRestriction" validate:"required"`

	// Terms. TermsAccepted is recorded but deliberately not part of the
	// required set, matching the dashboard's observed behavior.
	UseStandardTerms bool   `form:"useStandardTerms"`
	TermsAccepted    bool   `form:"termsAccepted"`
	CustomTermsURL   string `form:"customTermsUrl"`
	CustomTermsType  string `form:"customTermsType"`

	AdditionalInfo string `form:"additionalInfo"`
}

// Keywords derives the keyword list from the three detail slots: blank
// entries are dropped after trimming and the remaining order is preserved.
func (d *PrizeDraft) Keywords() []string {
	return DeriveKeywords(d.DetailOne, d.DetailTwo, d.DetailThree)
}

// DeriveKeywords builds an ordered keyword list from the detail slot inputs.
func DeriveKeywords(slots ...string) []string {
	keywords := make([]string, 0, MaxKeywords)
	for _, slot := range slots {
		if len(keywords) == MaxKeywords {
			break
		}
		trimmed := strings.TrimSpace(slot)
		if trimmed == "" {
			continue
		}
		keywords = append(keywords, trimmed)
	}
	return keywords
}

// BreakEvenValue computes the derived financial field: 25% of the retail
// value rounded half-up to 2 decimal places. It is always recomputed from
// the current retail value, never read back from a cached display value.
func BreakEvenValue(retailValue float64) float64 {
	return math.Floor(retailValue*25+0.5) / 100
}

// CategorySet is the session-local category enumeration: the static default
// list plus any ad hoc additions made during the current form session.
// Additions live only in memory for the lifetime of the session and are
// never the source of truth for categories elsewhere in the system.
type CategorySet struct {
	categories []string
}

// NewCategorySet returns a category set seeded with the default categories.
func NewCategorySet() *CategorySet {
	return &CategorySet{categories: append([]string(nil), DefaultPrizeCategories...)}
}

// Add appends a new category after trimming. Empty or duplicate input is a
// no-op, not an error; the return value reports whether the set changed.
func (s *CategorySet) Add(category string) bool {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return false
	}
	for _, existing := range s.categories {
		if existing == trimmed {
			return false
		}
	}
	s.categories = append(s.categories, trimmed)
	return true
}

// Categories returns the current enumeration in insertion order.
func (s *CategorySet) Categories() []string {
	return append([]string(nil), s.categories...)
}

// RegionSet tracks the multi-selected eligible regions. The set is the
// source of truth; the comma-joined string written into the form field is a
// derived projection regenerated on every toggle.
type RegionSet struct {
	regions []string
}

// NewRegionSet returns an empty region selection.
func NewRegionSet() *RegionSet {
	return &RegionSet{}
}

// Toggle adds the region if absent and removes it if present, preserving
// the insertion order of the remaining entries.
func (s *RegionSet) Toggle(region string) {
	for i, existing := range s.regions {
		if existing == region {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			return
		}
	}
	s.regions = append(s.regions, region)
}

// Contains reports whether the region is currently selected.
func (s *RegionSet) Contains(region string) bool {
	for _, existing := range s.regions {
		if existing == region {
			return true
		}
	}
	return false
}

// Len returns the number of selected regions.
func (s *RegionSet) Len() int {
	return len(s.regions)
}

// String serializes the selection to the comma-joined form-field value.
func (s *RegionSet) String() string {
	return strings.Join(s.regions, ",")
}

// StagedImage is a locally attached file that has not yet been uploaded to
// blob storage.
type StagedImage struct {
	Filename string
	File     io.Reader
}

// ImageStage accumulates staged images up to the prize image cap.
type ImageStage struct {
	images []StagedImage
}

// NewImageStage returns an empty image stage.
func NewImageStage() *ImageStage {
	return &ImageStage{}
}

// Add stages as many of the given images as fit under the cap, in input
// order. Excess files are silently dropped rather than rejected.
func (s *ImageStage) Add(images ...StagedImage) {
	for _, img := range images {
		if len(s.images) == MaxPrizeImages {
			return
		}
		s.images = append(s.images, img)
	}
}

// Full reports whether the cap has been reached.
func (s *ImageStage) Full() bool {
	return len(s.images) == MaxPrizeImages
}

// Len returns the number of staged images.
func (s *ImageStage) Len() int {
	return len(s.images)
}

// Images returns the staged images in attachment order.
func (s *ImageStage) Images() []StagedImage {
	return append([]StagedImage(nil), s.images...)
}
