package services

import (
	"context"
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
)

// CatalogService creates and lists categories, suppliers and products.
type CatalogService struct {
	categories CategoryStore
	suppliers  SupplierStore
	products   ProductStore
}

func NewCatalogService(categories CategoryStore, suppliers SupplierStore, products ProductStore) *CatalogService {
	return &CatalogService{categories: categories, suppliers: suppliers, products: products}
}

// ProductInput carries the already-validated-by-the-menu selections and
// parsed numbers for a new product.
type ProductInput struct {
	Name     string
	Category primitive.ObjectID
	Supplier primitive.ObjectID
	Price    float64
	Cost     float64
	Stock    int
}

// CreateCategory persists a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, name, description string) (models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return models.Category{}, apperr.InvalidInput("category name is required")
	}
	category := models.Category{Name: name, Description: description}
	if err := s.categories.Insert(ctx, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// CreateSupplier persists a new supplier.
func (s *CatalogService) CreateSupplier(ctx context.Context, name, contact, email string) (models.Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return models.Supplier{}, apperr.InvalidInput("supplier name is required")
	}
	supplier := models.Supplier{Name: name, Contact: contact, Email: email}
	if err := s.suppliers.Insert(ctx, &supplier); err != nil {
		return models.Supplier{}, err
	}
	return supplier, nil
}

// CreateProduct persists a new product after verifying its category and
// supplier references point at existing records.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Product{}, apperr.InvalidInput("product name is required")
	}
	if !finite(in.Price) || !finite(in.Cost) || in.Price < 0 || in.Cost < 0 {
		return models.Product{}, apperr.InvalidInput("price and cost must be non-negative numbers")
	}
	if in.Stock < 0 {
		return models.Product{}, apperr.InvalidInput("stock must not be negative")
	}
	if _, err := s.categories.FindByID(ctx, in.Category); err != nil {
		return models.Product{}, err
	}
	if _, err := s.suppliers.FindByID(ctx, in.Supplier); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Cost:     in.Cost,
		Stock:    in.Stock,
		Supplier: in.Supplier,
	}
	if err := s.products.Insert(ctx, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Categories lists every category.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categories.All(ctx)
}

// Suppliers lists every supplier.
func (s *CatalogService) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.suppliers.All(ctx)
}

// Products lists every product.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.products.All(ctx)
}

// Product fetches one product by id.
func (s *CatalogService) Product(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// ProductsByCategory lists the products referencing a category.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.products.FindByCategory(ctx, categoryID)
}

// ProductsBySupplier lists the products referencing a supplier.
func (s *CatalogService) ProductsBySupplier(ctx context.Context, supplierID primitive.ObjectID) ([]models.Product, error) {
	if _, err := s.suppliers.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	return s.products.FindBySupplier(ctx, supplierID)
}

// finite reports whether f is a usable money value. NaN and ±Inf pass
// a plain `< 0` check but cannot be converted to decimal.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
