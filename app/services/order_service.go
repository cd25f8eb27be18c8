package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/collection"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/logger"
)

// OrderService owns the sales-order workflow: creation against a single
// product or an entire offer, and the pending → shipped transition.
type OrderService struct {
	orders   OrderStore
	products ProductStore
	resolver *OfferResolver
}

func NewOrderService(orders OrderStore, products ProductStore, resolver *OfferResolver) *OrderService {
	return &OrderService{orders: orders, products: products, resolver: resolver}
}

// OrderConfirmation is the success payload returned to the menu layer
// after an order is created. Total is informational; it is computed at
// creation time and not persisted.
type OrderConfirmation struct {
	Order   models.SalesOrder
	Product *models.Product
	Offer   *models.ResolvedOffer
	Total   decimal.Decimal
}

// CreateForProduct persists a pending order for a single product.
// Stock is untouched until shipment.
func (s *OrderService) CreateForProduct(ctx context.Context, productID primitive.ObjectID, quantity int, details string) (OrderConfirmation, error) {
	if quantity <= 0 {
		return OrderConfirmation{}, apperr.InvalidInput("quantity must be positive, got %d", quantity)
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return OrderConfirmation{}, err
	}

	order := models.SalesOrder{
		Products:          []primitive.ObjectID{product.ID},
		Quantity:          quantity,
		Status:            models.StatusPending,
		AdditionalDetails: details,
		CreatedAt:         time.Now(),
	}
	if err := s.orders.Insert(ctx, &order); err != nil {
		return OrderConfirmation{}, err
	}

	total := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(quantity)))
	logger.Info("order created", "order_id", order.ID.Hex(), "product", product.Name, "quantity", quantity)
	return OrderConfirmation{Order: order, Product: &product, Total: total}, nil
}

// CreateForOffer persists a pending order for an entire offer.
// Stock is untouched until shipment.
func (s *OrderService) CreateForOffer(ctx context.Context, offerID primitive.ObjectID, quantity int, details string) (OrderConfirmation, error) {
	if quantity <= 0 {
		return OrderConfirmation{}, apperr.InvalidInput("quantity must be positive, got %d", quantity)
	}
	resolved, err := s.resolver.Resolve(ctx, offerID)
	if err != nil {
		return OrderConfirmation{}, err
	}

	order := models.SalesOrder{
		Offer:             resolved.ID,
		Quantity:          quantity,
		Status:            models.StatusPending,
		AdditionalDetails: details,
		CreatedAt:         time.Now(),
	}
	if err := s.orders.Insert(ctx, &order); err != nil {
		return OrderConfirmation{}, err
	}

	total := memberTotal(resolved.Products, quantity)
	logger.Info("order created", "order_id", order.ID.Hex(), "offer_id", resolved.ID.Hex(), "quantity", quantity)
	return OrderConfirmation{Order: order, Offer: &resolved, Total: total}, nil
}

// Pending returns the shippable orders.
func (s *OrderService) Pending(ctx context.Context) ([]models.SalesOrder, error) {
	return s.orders.FindByStatus(ctx, models.StatusPending)
}

// All returns every order.
func (s *OrderService) All(ctx context.Context) ([]models.SalesOrder, error) {
	return s.orders.All(ctx)
}

// Ship transitions a pending order to shipped, then decrements the
// stock of every product in the order's offer by the order quantity.
//
// The status transition is persisted before the stock mutations begin
// and there is no compensating write: a store failure mid-loop leaves
// the order shipped with only a prefix of the products decremented.
// Callers must tolerate that partial application.
func (s *OrderService) Ship(ctx context.Context, orderID primitive.ObjectID) (models.SalesOrder, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return models.SalesOrder{}, err
	}
	if order.Status != models.StatusPending {
		return models.SalesOrder{}, apperr.InvalidState("order %s is already %s", order.ID.Hex(), order.Status)
	}
	if !order.HasOffer() {
		return models.SalesOrder{}, apperr.InvalidState("order %s has no offer to ship", order.ID.Hex())
	}

	resolved, err := s.resolver.Resolve(ctx, order.Offer)
	if errors.Is(err, apperr.ErrNotFound) {
		return models.SalesOrder{}, apperr.InvalidState("order %s references missing offer %s", order.ID.Hex(), order.Offer.Hex())
	}
	if err != nil {
		return models.SalesOrder{}, err
	}
	if len(resolved.Products) == 0 {
		return models.SalesOrder{}, apperr.InvalidState("offer %s has no products", resolved.ID.Hex())
	}
	for _, p := range resolved.Products {
		if p.Stock < order.Quantity {
			return models.SalesOrder{}, apperr.InvalidState("product %q has stock %d, order needs %d", p.Name, p.Stock, order.Quantity)
		}
	}

	// Status first, stock after. Not atomic across documents.
	if err := s.orders.UpdateStatus(ctx, order.ID, models.StatusShipped); err != nil {
		return models.SalesOrder{}, err
	}
	order.Status = models.StatusShipped

	// Refetch before each write so a product listed twice in the offer
	// is decremented once per listing, not once overall.
	for _, p := range resolved.Products {
		current, err := s.products.FindByID(ctx, p.ID)
		if err != nil {
			logger.Error("stock refetch failed after status change",
				"order_id", order.ID.Hex(), "product_id", p.ID.Hex(), "error", err)
			return order, err
		}
		if err := s.products.UpdateStock(ctx, p.ID, current.Stock-order.Quantity); err != nil {
			logger.Error("stock decrement failed after status change",
				"order_id", order.ID.Hex(), "product_id", p.ID.Hex(), "error", err)
			return order, err
		}
	}

	logger.Info("order shipped", "order_id", order.ID.Hex(), "quantity", order.Quantity,
		"products", len(resolved.Products))
	return order, nil
}

// memberTotal sums price × quantity across the resolved members.
func memberTotal(products []models.Product, quantity int) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))
	return collection.Reduce(products, decimal.Zero, func(sum decimal.Decimal, p models.Product) decimal.Decimal {
		return sum.Add(decimal.NewFromFloat(p.Price).Mul(qty))
	})
}
