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

// OrderRepository handles store operations for SalesOrder.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *database.DB) *OrderRepository {
	return &OrderRepository{col: db.Collection(database.SalesOrders)}
}

// All returns every sales order.
func (r *OrderRepository) All(ctx context.Context) ([]models.SalesOrder, error) {
	return r.find(ctx, bson.M{})
}

// FindByID looks up an order by id.
func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.SalesOrder, error) {
	var order models.SalesOrder
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SalesOrder{}, apperr.NotFound("order %s", id.Hex())
	}
	if err != nil {
		return models.SalesOrder{}, apperr.Store("find order", err)
	}
	return order, nil
}

// FindByStatus returns every order in the given lifecycle state.
func (r *OrderRepository) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.SalesOrder, error) {
	return r.find(ctx, bson.M{"status": status})
}

// Insert persists a new order and fills in its generated id.
func (r *OrderRepository) Insert(ctx context.Context, order *models.SalesOrder) error {
	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return apperr.Store("insert order", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return nil
}

// UpdateStatus persists a new lifecycle state for the order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return apperr.Store("update order status", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("order %s", id.Hex())
	}
	return nil
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.SalesOrder, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, apperr.Store("find orders", err)
	}
	var orders []models.SalesOrder
	if err := cur.All(ctx, &orders); err != nil {
		return nil, apperr.Store("decode orders", err)
	}
	return orders, nil
}
