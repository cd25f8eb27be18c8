package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Offer is a priced bundle of product references, independent of any
// single product's own price. An offer used in an order always has a
// non-empty product list.
type Offer struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty"`
	Products []primitive.ObjectID `bson:"products"`
	Price    float64              `bson:"price"`
	Active   bool                 `bson:"active"`
}

// ResolvedOffer is an Offer with its product references expanded into
// full records (the output of the resolve step). Kept distinct from
// Offer so reference ids and resolved objects never mix in one field.
type ResolvedOffer struct {
	ID       primitive.ObjectID
	Price    float64
	Active   bool
	Products []Product
}

// TotalStock sums the stock of every resolved member product.
func (o ResolvedOffer) TotalStock() int {
	total := 0
	for _, p := range o.Products {
		total += p.Stock
	}
	return total
}
