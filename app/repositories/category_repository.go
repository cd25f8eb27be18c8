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

// CategoryRepository handles store operations for Category.
type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *database.DB) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(database.Categories)}
}

// All returns every category.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Store("find categories", err)
	}
	var categories []models.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, apperr.Store("decode categories", err)
	}
	return categories, nil
}

// FindByID looks up a category by id.
func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var category models.Category
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Category{}, apperr.NotFound("category %s", id.Hex())
	}
	if err != nil {
		return models.Category{}, apperr.Store("find category", err)
	}
	return category, nil
}

// Insert persists a new category and fills in its generated id.
func (r *CategoryRepository) Insert(ctx context.Context, category *models.Category) error {
	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return apperr.Store("insert category", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = id
	}
	return nil
}
