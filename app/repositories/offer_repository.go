package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/database"
)

// OfferRepository handles store operations for Offer.
type OfferRepository struct {
	col *mongo.Collection
}

func NewOfferRepository(db *database.DB) *OfferRepository {
	return &OfferRepository{col: db.Collection(database.Offers)}
}

// All returns every offer.
func (r *OfferRepository) All(ctx context.Context) ([]models.Offer, error) {
	return r.find(ctx, bson.M{})
}

// FindByID looks up an offer by id.
func (r *OfferRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Offer, error) {
	var offer models.Offer
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&offer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Offer{}, apperr.NotFound("offer %s", id.Hex())
	}
	if err != nil {
		return models.Offer{}, apperr.Store("find offer", err)
	}
	return offer, nil
}

// FindByPriceRange returns offers whose flat price lies in [min, max].
func (r *OfferRepository) FindByPriceRange(ctx context.Context, min, max float64) ([]models.Offer, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": min, "$lte": max}})
}

// Insert persists a new offer and fills in its generated id.
func (r *OfferRepository) Insert(ctx context.Context, offer *models.Offer) error {
	res, err := r.col.InsertOne(ctx, offer)
	if err != nil {
		return apperr.Store("insert offer", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		offer.ID = id
	}
	return nil
}

func (r *OfferRepository) find(ctx context.Context, filter bson.M) ([]models.Offer, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, apperr.Store("find offers", err)
	}
	var offers []models.Offer
	if err := cur.All(ctx, &offers); err != nil {
		return nil, apperr.Store("decode offers", err)
	}
	return offers, nil
}
