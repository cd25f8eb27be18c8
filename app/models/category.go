package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products. Referenced by Product (many-to-one).
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
}
