package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Supplier is a source of products. Referenced by Product (many-to-one).
type Supplier struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Contact string             `bson:"contact,omitempty"`
	Email   string             `bson:"email,omitempty"`
}
