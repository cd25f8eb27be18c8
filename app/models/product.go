package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalog item. Category and Supplier are stored as
// references; resolving them is an explicit step, never implicit.
// Stock never goes negative and is decremented only when an order
// containing the product ships.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category primitive.ObjectID `bson:"category,omitempty"`
	Price    float64            `bson:"price"`
	Cost     float64            `bson:"cost"`
	Stock    int                `bson:"stock"`
	Supplier primitive.ObjectID `bson:"supplier,omitempty"`
}
