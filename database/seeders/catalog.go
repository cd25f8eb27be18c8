package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/app/repositories"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/database"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog inserts the sample data set: six products across five
// categories and two suppliers, three offers (two active) and two
// pending sales orders against the first and third offer.
func SeedCatalog(ctx context.Context, db *database.DB) error {
	categoryRepo := repositories.NewCategoryRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	productRepo := repositories.NewProductRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	categories := []*models.Category{
		{Name: "Electronics"},
		{Name: "Clothing"},
		{Name: "Home Appliances"},
		{Name: "Beauty & Personal Care"},
		{Name: "Sports & Outdoors"},
	}
	for _, c := range categories {
		if err := categoryRepo.Insert(ctx, c); err != nil {
			return err
		}
	}

	suppliers := []*models.Supplier{
		{Name: "Electronics Supplier Inc.", Contact: "John Doe", Email: "john@electronicsupplier.com"},
		{Name: "Fashion Supplier Co.", Contact: "Jane Smith", Email: "jane@fashionsupplier.com"},
	}
	for _, s := range suppliers {
		if err := supplierRepo.Insert(ctx, s); err != nil {
			return err
		}
	}

	products := []*models.Product{
		{Name: "Laptop", Category: categories[0].ID, Price: 1000, Cost: 800, Stock: 50, Supplier: suppliers[0].ID},
		{Name: "Smartphone", Category: categories[0].ID, Price: 800, Cost: 600, Stock: 40, Supplier: suppliers[0].ID},
		{Name: "T-shirt", Category: categories[1].ID, Price: 20, Cost: 10, Stock: 100, Supplier: suppliers[1].ID},
		{Name: "Refrigerator", Category: categories[2].ID, Price: 1200, Cost: 1000, Stock: 30, Supplier: suppliers[0].ID},
		{Name: "Shampoo", Category: categories[3].ID, Price: 10, Cost: 5, Stock: 80, Supplier: suppliers[1].ID},
		{Name: "Soccer Ball", Category: categories[4].ID, Price: 30, Cost: 20, Stock: 60, Supplier: suppliers[1].ID},
	}
	for _, p := range products {
		if err := productRepo.Insert(ctx, p); err != nil {
			return err
		}
	}

	offers := []*models.Offer{
		{Products: ids(products[0], products[1]), Price: 1800, Active: true},
		{Products: ids(products[2], products[4]), Price: 30, Active: true},
		{Products: ids(products[3], products[1], products[5]), Price: 1830, Active: false},
	}
	for _, o := range offers {
		if err := offerRepo.Insert(ctx, o); err != nil {
			return err
		}
	}

	now := time.Now()
	orders := []*models.SalesOrder{
		{Offer: offers[0].ID, Quantity: 2, Status: models.StatusPending, CreatedAt: now},
		{Offer: offers[2].ID, Quantity: 1, Status: models.StatusPending, CreatedAt: now},
	}
	for _, o := range orders {
		if err := orderRepo.Insert(ctx, o); err != nil {
			return err
		}
	}

	return nil
}

func ids(products ...*models.Product) []primitive.ObjectID {
	out := make([]primitive.ObjectID, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
