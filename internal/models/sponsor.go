package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SponsorStatusActive marks sponsors that can be attached to new prizes.
const SponsorStatusActive = "Active"

// Sponsor is an external entity funding or providing prizes. It is
// referenced by prizes, not owned by them; this service reads sponsors and
// only ever appends prize ids to their creation history.
type Sponsor struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string               `bson:"name" json:"name"`
	Status         string               `bson:"status" json:"status"`
	Logo           []string             `bson:"logo,omitempty" json:"logo,omitempty"` // first entry is the displayed logo
	PrizesCreation []primitive.ObjectID `bson:"prizesCreation,omitempty" json:"prizesCreation,omitempty"`
	CreatedAt      time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      time.Time            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
