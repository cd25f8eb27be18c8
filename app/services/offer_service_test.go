package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
)

func TestStockBucketsCountOffersByTotalMemberStock(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	a := store.addProduct("Laptop", 1000, 800, 50)
	b := store.addProduct("Smartphone", 800, 600, 40)
	c := store.addProduct("T-shirt", 20, 10, 90)
	// Two offers totalling 90, one totalling 140.
	store.addOffer(1800, a.ID, b.ID)
	store.addOffer(20, c.ID)
	store.addOffer(1820, a.ID, c.ID)

	buckets, err := store.newOfferService().StockBuckets(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{90: 2, 140: 1}, buckets)
}

func TestResolvePreservesOrderAndDropsDanglingMembers(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	a := store.addProduct("Refrigerator", 1200, 1000, 30)
	b := store.addProduct("Soccer Ball", 30, 20, 60)
	offer := store.addOffer(1230, b.ID, primitive.NewObjectID(), a.ID)

	resolved, err := store.newOfferService().Resolve(ctx, offer.ID)
	require.NoError(t, err)
	require.Len(t, resolved.Products, 2)
	assert.Equal(t, "Soccer Ball", resolved.Products[0].Name)
	assert.Equal(t, "Refrigerator", resolved.Products[1].Name)
	assert.Equal(t, 90, resolved.TotalStock())
}

func TestResolveUnknownOffer(t *testing.T) {
	store := newMemStore()
	_, err := store.newOfferService().Resolve(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestInPriceRange(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	p := store.addProduct("T-shirt", 20, 10, 100)
	store.addOffer(30, p.ID)
	store.addOffer(1800, p.ID)

	offers, err := store.newOfferService().InPriceRange(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, 30.0, offers[0].Price)
	require.Len(t, offers[0].Products, 1)
	assert.Equal(t, "T-shirt", offers[0].Products[0].Name)
}

func TestInPriceRangeRejectsBadRanges(t *testing.T) {
	ctx := context.Background()
	svc := newMemStore().newOfferService()

	_, err := svc.InPriceRange(ctx, 100, 50)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.InPriceRange(ctx, -1, 50)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.InPriceRange(ctx, math.NaN(), 50)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.InPriceRange(ctx, 0, math.Inf(1))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestWithCategory(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	electronics := store.addCategory("Electronics")
	clothing := store.addCategory("Clothing")

	laptop := store.addProduct("Laptop", 1000, 800, 50)
	store.products[0].Category = electronics.ID
	shirt := store.addProduct("T-shirt", 20, 10, 100)
	store.products[1].Category = clothing.ID

	store.addOffer(1000, laptop.ID)
	store.addOffer(20, shirt.ID)
	store.addOffer(1020, laptop.ID, shirt.ID)

	offers, err := store.newOfferService().WithCategory(ctx, electronics.ID)
	require.NoError(t, err)
	assert.Len(t, offers, 2)
}

func TestCreateOffer(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	a := store.addProduct("Laptop", 1000, 800, 50)
	b := store.addProduct("Smartphone", 800, 600, 40)

	offer, err := store.newOfferService().Create(ctx, []primitive.ObjectID{a.ID, b.ID}, 1800, true)
	require.NoError(t, err)
	assert.False(t, offer.ID.IsZero())
	assert.Equal(t, []primitive.ObjectID{a.ID, b.ID}, offer.Products)
	assert.Len(t, store.offers, 1)
}

func TestCreateOfferValidation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	a := store.addProduct("Laptop", 1000, 800, 50)
	svc := store.newOfferService()

	_, err := svc.Create(ctx, nil, 100, true)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, []primitive.ObjectID{a.ID}, -5, true)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, []primitive.ObjectID{a.ID}, math.NaN(), true)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, []primitive.ObjectID{a.ID, primitive.NewObjectID()}, 100, true)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.Empty(t, store.offers)
}

func TestStockBucketsEmptyStore(t *testing.T) {
	buckets, err := newMemStore().newOfferService().StockBuckets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, buckets)
}
