package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
)

// The store interfaces below are the persistence boundary the services
// consume. The Mongo implementations live in app/repositories; tests
// substitute in-memory fakes. Every method may fail with a Store-kind
// error; lookups by id fail with NotFound when the document is absent.

// CategoryStore persists categories.
type CategoryStore interface {
	All(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
}

// SupplierStore persists suppliers.
type SupplierStore interface {
	All(ctx context.Context) ([]models.Supplier, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Supplier, error)
	Insert(ctx context.Context, supplier *models.Supplier) error
}

// ProductStore persists products. FindByIDs preserves the order of the
// ids it is given and silently drops dangling references.
type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	FindFirstByName(ctx context.Context, name string) (models.Product, error)
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
	FindBySupplier(ctx context.Context, supplierID primitive.ObjectID) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	UpdateStock(ctx context.Context, id primitive.ObjectID, stock int) error
}

// OfferStore persists offers.
type OfferStore interface {
	All(ctx context.Context) ([]models.Offer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Offer, error)
	FindByPriceRange(ctx context.Context, min, max float64) ([]models.Offer, error)
	Insert(ctx context.Context, offer *models.Offer) error
}

// OrderStore persists sales orders.
type OrderStore interface {
	All(ctx context.Context) ([]models.SalesOrder, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.SalesOrder, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.SalesOrder, error)
	Insert(ctx context.Context, order *models.SalesOrder) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error
}
