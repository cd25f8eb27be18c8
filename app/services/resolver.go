package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
)

// OfferResolver expands an offer's product references into full product
// records. Resolution is always an explicit step; nothing else in the
// codebase turns an id into a record implicitly.
type OfferResolver struct {
	offers   OfferStore
	products ProductStore
}

func NewOfferResolver(offers OfferStore, products ProductStore) *OfferResolver {
	return &OfferResolver{offers: offers, products: products}
}

// Resolve fetches the offer and its member products. A dangling offer
// reference is NotFound; dangling member references are dropped from
// the resolved list, preserving the stored order of the survivors.
func (r *OfferResolver) Resolve(ctx context.Context, offerID primitive.ObjectID) (models.ResolvedOffer, error) {
	offer, err := r.offers.FindByID(ctx, offerID)
	if err != nil {
		return models.ResolvedOffer{}, err
	}
	return r.expand(ctx, offer)
}

// ResolveAll expands every offer in the store.
func (r *OfferResolver) ResolveAll(ctx context.Context) ([]models.ResolvedOffer, error) {
	offers, err := r.offers.All(ctx)
	if err != nil {
		return nil, err
	}
	resolved := make([]models.ResolvedOffer, 0, len(offers))
	for _, offer := range offers {
		ro, err := r.expand(ctx, offer)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, ro)
	}
	return resolved, nil
}

func (r *OfferResolver) expand(ctx context.Context, offer models.Offer) (models.ResolvedOffer, error) {
	products, err := r.products.FindByIDs(ctx, offer.Products)
	if err != nil {
		return models.ResolvedOffer{}, err
	}
	return models.ResolvedOffer{
		ID:       offer.ID,
		Price:    offer.Price,
		Active:   offer.Active,
		Products: products,
	}, nil
}
