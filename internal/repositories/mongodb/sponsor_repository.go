package mongodb

import (
	"context"
	"time"

	"github.com/promoforge/prizes-backend/internal/models"
	"github.com/promoforge/prizes-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SponsorRepository implements the repositories.SponsorRepository interface
type SponsorRepository struct {
	collection *mongo.Collection
}

// NewSponsorRepository creates a new SponsorRepository
func NewSponsorRepository(db *mongo.Database) repositories.SponsorRepository {
	return &SponsorRepository{
		collection: db.Collection("sponsors"),
	}
}

// FindByID finds a sponsor by ID
func (r *SponsorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sponsor)
	if err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// FindAll returns all sponsors sorted by name
func (r *SponsorRepository) FindAll(ctx context.Context) ([]*models.Sponsor, error) {
	return r.find(ctx, bson.M{})
}

// FindByStatus returns sponsors matching the given status
func (r *SponsorRepository) FindByStatus(ctx context.Context, status string) ([]*models.Sponsor, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *SponsorRepository) find(ctx context.Context, filter bson.M) ([]*models.Sponsor, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sponsors []*models.Sponsor
	if err := cursor.All(ctx, &sponsors); err != nil {
		return nil, err
	}
	if sponsors == nil {
		sponsors = []*models.Sponsor{}
	}
	return sponsors, nil
}

// AppendPrizeCreation adds the prize id to the sponsor's prizesCreation
// array. $addToSet keeps the append idempotent: an id that is already
// present does not produce a duplicate entry.
func (r *SponsorRepository) AppendPrizeCreation(ctx context.Context, sponsorID, prizeID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"prizesCreation": prizeID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": sponsorID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
