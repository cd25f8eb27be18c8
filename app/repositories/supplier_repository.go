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

// SupplierRepository handles store operations for Supplier.
type SupplierRepository struct {
	col *mongo.Collection
}

func NewSupplierRepository(db *database.DB) *SupplierRepository {
	return &SupplierRepository{col: db.Collection(database.Suppliers)}
}

// All returns every supplier.
func (r *SupplierRepository) All(ctx context.Context) ([]models.Supplier, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Store("find suppliers", err)
	}
	var suppliers []models.Supplier
	if err := cur.All(ctx, &suppliers); err != nil {
		return nil, apperr.Store("decode suppliers", err)
	}
	return suppliers, nil
}

// FindByID looks up a supplier by id.
func (r *SupplierRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Supplier, error) {
	var supplier models.Supplier
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Supplier{}, apperr.NotFound("supplier %s", id.Hex())
	}
	if err != nil {
		return models.Supplier{}, apperr.Store("find supplier", err)
	}
	return supplier, nil
}

// Insert persists a new supplier and fills in its generated id.
func (r *SupplierRepository) Insert(ctx context.Context, supplier *models.Supplier) error {
	res, err := r.col.InsertOne(ctx, supplier)
	if err != nil {
		return apperr.Store("insert supplier", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		supplier.ID = id
	}
	return nil
}
