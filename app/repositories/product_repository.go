package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/collection"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/database"
)

// ProductRepository handles store operations for Product.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{col: db.Collection(database.Products)}
}

// All returns every product.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

// FindByID looks up a product by id.
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, apperr.NotFound("product %s", id.Hex())
	}
	if err != nil {
		return models.Product{}, apperr.Store("find product", err)
	}
	return product, nil
}

// FindByIDs fetches the given products in one query and returns them in
// the order the ids were passed. Ids with no matching document are
// dropped, not errors; the caller decides whether holes matter.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	// $in returns documents in store order; reassemble in reference order.
	byID := collection.KeyBy(found, func(p models.Product) primitive.ObjectID { return p.ID })
	ordered := make([]models.Product, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// FindFirstByName returns the first product whose name matches exactly.
func (r *ProductRepository) FindFirstByName(ctx context.Context, name string) (models.Product, error) {
	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, apperr.NotFound("product %q", name)
	}
	if err != nil {
		return models.Product{}, apperr.Store("find product by name", err)
	}
	return product, nil
}

// FindByCategory returns every product referencing the category.
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return r.find(ctx, bson.M{"category": categoryID})
}

// FindBySupplier returns every product referencing the supplier.
func (r *ProductRepository) FindBySupplier(ctx context.Context, supplierID primitive.ObjectID) ([]models.Product, error) {
	return r.find(ctx, bson.M{"supplier": supplierID})
}

// Insert persists a new product and fills in its generated id.
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return apperr.Store("insert product", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return nil
}

// UpdateStock persists a new stock level for the product.
func (r *ProductRepository) UpdateStock(ctx context.Context, id primitive.ObjectID, stock int) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"stock": stock}},
	)
	if err != nil {
		return apperr.Store("update product stock", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("product %s", id.Hex())
	}
	return nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, apperr.Store("find products", err)
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, apperr.Store("decode products", err)
	}
	return products, nil
}
