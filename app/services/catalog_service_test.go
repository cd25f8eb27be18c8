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

func TestCreateProductRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	category := store.addCategory("Electronics")
	supplier := store.addSupplier("Electronics Supplier Inc.")
	svc := store.newCatalogService()

	created, err := svc.CreateProduct(ctx, ProductInput{
		Name:     "Laptop",
		Category: category.ID,
		Supplier: supplier.ID,
		Price:    1000,
		Cost:     800,
		Stock:    50,
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	fetched, err := svc.Product(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	assert.Equal(t, "Laptop", fetched.Name)
	assert.Equal(t, category.ID, fetched.Category)
	assert.Equal(t, supplier.ID, fetched.Supplier)
	assert.Equal(t, 1000.0, fetched.Price)
	assert.Equal(t, 800.0, fetched.Cost)
	assert.Equal(t, 50, fetched.Stock)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	category := store.addCategory("Electronics")
	supplier := store.addSupplier("Electronics Supplier Inc.")
	svc := store.newCatalogService()

	cases := []struct {
		name string
		in   ProductInput
		kind error
	}{
		{"empty name", ProductInput{Category: category.ID, Supplier: supplier.ID}, apperr.ErrInvalidInput},
		{"negative price", ProductInput{Name: "X", Category: category.ID, Supplier: supplier.ID, Price: -1}, apperr.ErrInvalidInput},
		{"NaN price", ProductInput{Name: "X", Category: category.ID, Supplier: supplier.ID, Price: math.NaN()}, apperr.ErrInvalidInput},
		{"infinite cost", ProductInput{Name: "X", Category: category.ID, Supplier: supplier.ID, Cost: math.Inf(1)}, apperr.ErrInvalidInput},
		{"negative stock", ProductInput{Name: "X", Category: category.ID, Supplier: supplier.ID, Stock: -1}, apperr.ErrInvalidInput},
		{"unknown category", ProductInput{Name: "X", Category: primitive.NewObjectID(), Supplier: supplier.ID}, apperr.ErrNotFound},
		{"unknown supplier", ProductInput{Name: "X", Category: category.ID, Supplier: primitive.NewObjectID()}, apperr.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tc.in)
			assert.ErrorIs(t, err, tc.kind)
		})
	}

	assert.Empty(t, store.products)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	store := newMemStore()
	svc := store.newCatalogService()

	_, err := svc.CreateCategory(context.Background(), "  ", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Empty(t, store.categories)

	created, err := svc.CreateCategory(context.Background(), "Clothing", "apparel")
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
}

func TestCreateSupplierRequiresName(t *testing.T) {
	store := newMemStore()
	svc := store.newCatalogService()

	_, err := svc.CreateSupplier(context.Background(), "", "Jane Smith", "jane@fashionsupplier.com")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Empty(t, store.suppliers)
}

func TestProductsByCategory(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	electronics := store.addCategory("Electronics")
	clothing := store.addCategory("Clothing")
	store.addProduct("Laptop", 1000, 800, 50)
	store.products[0].Category = electronics.ID
	store.addProduct("T-shirt", 20, 10, 100)
	store.products[1].Category = clothing.ID

	svc := store.newCatalogService()
	got, err := svc.ProductsByCategory(ctx, electronics.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Laptop", got[0].Name)

	_, err = svc.ProductsByCategory(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductsBySupplier(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	acme := store.addSupplier("Acme")
	store.addProduct("Laptop", 1000, 800, 50)
	store.products[0].Supplier = acme.ID
	store.addProduct("T-shirt", 20, 10, 100)

	svc := store.newCatalogService()
	got, err := svc.ProductsBySupplier(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Laptop", got[0].Name)

	_, err = svc.ProductsBySupplier(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
