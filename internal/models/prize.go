package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrizeStatus represents the lifecycle status of a prize
type PrizeStatus string

const (
	PrizeStatusActive   PrizeStatus = "Active"
	PrizeStatusInactive PrizeStatus = "Inactive"
	PrizeStatusExpired  PrizeStatus = "Expired"
)

// MaxPrizeImages is the hard cap on images attached to a single prize.
const MaxPrizeImages = 4

// MaxKeywords is the number of keyword slots on the creation form.
const MaxKeywords = 3

// StandardTermsURL is the hosted standard terms & conditions document used
// when a prize opts into standard terms instead of a custom reference.
const StandardTermsURL = "https://cdn.promoforge.com/legal/standard-prize-terms.pdf"

// Prize represents a promotional prize managed through the admin dashboard
type Prize struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PrizeName         string             `bson:"prizeName" json:"prizeName"`
	QuantityAvailable string             `bson:"quantityAvailable" json:"quantityAvailable"` // string-encoded for schema compatibility
	FullDescription   string             `bson:"fullDescription" json:"fullDescription"`
	Keywords          []string           `bson:"keywords" json:"keywords"`
	Tags              string             `bson:"tags" json:"tags"` // comma-separated convention, free text
	Thumbnail         string             `bson:"thumbnail" json:"thumbnail"`
	Images            []string           `bson:"images" json:"images"`
	SponsorID         primitive.ObjectID `bson:"sponsorId" json:"sponsorId"`
	PrizeCategory     string             `bson:"prizeCategory" json:"prizeCategory"`
	StockDate         string             `bson:"stockDate" json:"stockDate"` // ISO date (YYYY-MM-DD)
	FulfillmentMethod string             `bson:"fulfillmentMethod" json:"fulfillmentMethod"`
	DeliveryTimeline  string             `bson:"deliveryTimeline" json:"deliveryTimeline"`
	ClaimWindow       string             `bson:"claimWindow" json:"claimWindow"`
	PickupRequired    bool               `bson:"pickupRequired" json:"pickupRequired"`
	IDRequired        bool               `bson:"idRequired" json:"idRequired"`
	EligibleRegions   string             `bson:"eligibleRegions" json:"eligibleRegions"` // comma-joined region names
	RetailValueUSD    string             `bson:"retailValueUSD" json:"retailValueUSD"`   // string-encoded decimal
	BreakEvenValue    float64            `bson:"breakEvenValue" json:"breakEvenValue"`   // derived: 25% of retail, 2dp
	AgeRestriction    string             `bson:"ageRestriction" json:"ageRestriction"`
	UseStandardTerms  bool               `bson:"useStandardTerms" json:"useStandardTerms"`
	TermsAccepted     bool               `bson:"termsAccepted" json:"termsAccepted"`
	TermsConditions   string             `bson:"termsConditionsUrl,omitempty" json:"termsConditionsUrl,omitempty"`
	CustomTermsURL    string             `bson:"customTermsUrl,omitempty" json:"customTermsUrl,omitempty"`
	CustomTermsType   string             `bson:"customTermsType,omitempty" json:"customTermsType,omitempty"`
	AdditionalInfo    string             `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	Status            PrizeStatus        `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// PrizeListItem is the row shape rendered by the prize list screen. The
// formatted value is display-only; the stored retail value is untouched.
type PrizeListItem struct {
	ID                 primitive.ObjectID `json:"id"`
	PrizeName          string             `json:"prizeName"`
	Keywords           []string           `json:"keywords"`
	Thumbnail          string             `json:"thumbnail"`
	RetailValueUSD     string             `json:"retailValueUSD"`
	RetailValueDisplay string             `json:"retailValueDisplay"`
	SponsorID          primitive.ObjectID `json:"sponsorId"`
	QuantityAvailable  string             `json:"quantityAvailable"`
	Status             PrizeStatus        `json:"status"`
	StatusColor        string             `json:"statusColor"`
}

// statusColors is the fixed color-coded label mapping for the list screen.
var statusColors = map[PrizeStatus]string{
	PrizeStatusActive:   "green",
	PrizeStatusInactive: "gray",
	PrizeStatusExpired:  "red",
}

// StatusColor returns the label color for a prize status. Unknown statuses
// fall back to gray.
func StatusColor(status PrizeStatus) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return "gray"
}

// FulfillmentMethods is the fixed enumeration offered by the fulfillment section.
var FulfillmentMethods = []string{
	"Digital Delivery",
	"Physical Shipping",
	"In-Person Pickup",
	"Courier",
}

// DeliveryTimelines is the fixed enumeration of delivery estimates.
var DeliveryTimelines = []string{
	"Instant",
	"1-3 Days",
	"3-7 Days",
	"1-2 Weeks",
	"2-4 Weeks",
}

// ClaimWindows is the fixed enumeration of claim deadlines.
var ClaimWindows = []string{
	"24 Hours",
	"48 Hours",
	"72 Hours",
	"1 Week",
	"2 Weeks",
	"1 Month",
}

// EligibleRegionNames is the closed set of regions a prize can be offered in.
var EligibleRegionNames = []string{
	"california",
	"texas",
	"florida",
	"new york",
	"illinois",
	"georgia",
	"washington",
	"arizona",
	"colorado",
	"ohio",
	"nevada",
	"oregon",
	"michigan",
}

// DefaultPrizeCategories seeds the category picker. Ad hoc additions made
// during a form session are layered on top (see CategorySet) and are never
// persisted anywhere.
var DefaultPrizeCategories = []string{
	"Electronics",
	"Gift Cards",
	"Travel",
	"Experiences",
	"Apparel",
	"Toys",
	"Home & Kitchen",
	"Other",
}
