package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the SalesOrder lifecycle state.
// pending --(ship)--> shipped. Shipped is terminal.
type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusShipped OrderStatus = "shipped"
)

// SalesOrder records a sale of either an entire offer (Offer set,
// Products empty) or a single product (Offer zero, Products holding one
// reference). The store accepts both shapes; which one an order uses is
// decided at creation and never changes.
type SalesOrder struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty"`
	Offer             primitive.ObjectID   `bson:"offer,omitempty"`
	Products          []primitive.ObjectID `bson:"products,omitempty"`
	Quantity          int                  `bson:"quantity"`
	Status            OrderStatus          `bson:"status"`
	AdditionalDetails string               `bson:"additionalDetails,omitempty"`
	CreatedAt         time.Time            `bson:"createdAt"`
}

// HasOffer reports whether the order references an offer.
func (o SalesOrder) HasOffer() bool {
	return !o.Offer.IsZero()
}
