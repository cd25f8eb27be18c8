package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/collection"
)

// OfferService creates offers and answers the offer-centric queries
// (price range, category membership, stock buckets).
type OfferService struct {
	offers   OfferStore
	products ProductStore
	resolver *OfferResolver
}

func NewOfferService(offers OfferStore, products ProductStore) *OfferService {
	return &OfferService{
		offers:   offers,
		products: products,
		resolver: NewOfferResolver(offers, products),
	}
}

// Resolver exposes the offer resolver for the order and reporting
// services, which share it.
func (s *OfferService) Resolver() *OfferResolver {
	return s.resolver
}

// Create persists a new offer over the given member products. An offer
// must bundle at least one product; every member must exist.
func (s *OfferService) Create(ctx context.Context, productIDs []primitive.ObjectID, price float64, active bool) (models.Offer, error) {
	if len(productIDs) == 0 {
		return models.Offer{}, apperr.InvalidInput("an offer needs at least one product")
	}
	if !finite(price) || price < 0 {
		return models.Offer{}, apperr.InvalidInput("offer price must be a non-negative number")
	}

	found, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return models.Offer{}, err
	}
	if len(found) != len(productIDs) {
		return models.Offer{}, apperr.NotFound("%d of %d offer products", len(productIDs)-len(found), len(productIDs))
	}

	offer := models.Offer{Products: productIDs, Price: price, Active: active}
	if err := s.offers.Insert(ctx, &offer); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

// All lists every offer, unresolved.
func (s *OfferService) All(ctx context.Context) ([]models.Offer, error) {
	return s.offers.All(ctx)
}

// Resolve expands one offer's product references.
func (s *OfferService) Resolve(ctx context.Context, offerID primitive.ObjectID) (models.ResolvedOffer, error) {
	return s.resolver.Resolve(ctx, offerID)
}

// InPriceRange returns resolved offers whose flat price lies within
// [min, max]. A negative bound or min > max is InvalidInput.
func (s *OfferService) InPriceRange(ctx context.Context, min, max float64) ([]models.ResolvedOffer, error) {
	if !finite(min) || !finite(max) || min < 0 || max < 0 || min > max {
		return nil, apperr.InvalidInput("price range [%v, %v]", min, max)
	}
	offers, err := s.offers.FindByPriceRange(ctx, min, max)
	if err != nil {
		return nil, err
	}
	resolved := make([]models.ResolvedOffer, 0, len(offers))
	for _, offer := range offers {
		ro, err := s.resolver.expand(ctx, offer)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, ro)
	}
	return resolved, nil
}

// WithCategory returns resolved offers containing at least one product
// from the given category.
func (s *OfferService) WithCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.ResolvedOffer, error) {
	resolved, err := s.resolver.ResolveAll(ctx)
	if err != nil {
		return nil, err
	}
	return collection.Filter(resolved, func(ro models.ResolvedOffer) bool {
		return collection.Contains(ro.Products, func(p models.Product) bool {
			return p.Category == categoryID
		})
	}), nil
}

// StockBuckets counts offers by the summed stock of their member
// products. Offers whose members total the same stock share a bucket.
func (s *OfferService) StockBuckets(ctx context.Context) (map[int]int, error) {
	resolved, err := s.resolver.ResolveAll(ctx)
	if err != nil {
		return nil, err
	}
	buckets := make(map[int]int)
	for _, ro := range resolved {
		buckets[ro.TotalStock()]++
	}
	return buckets, nil
}
