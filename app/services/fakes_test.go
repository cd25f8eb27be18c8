package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
)

// memStore is an in-memory stand-in for the Mongo repositories. It
// implements every store interface the services consume, with the same
// error kinds the real repositories return.
type memStore struct {
	categories []models.Category
	suppliers  []models.Supplier
	products   []models.Product
	offers     []models.Offer
	orders     []models.SalesOrder

	// failStockUpdateFor makes UpdateStock fail for one product id,
	// simulating a store failure mid-shipment.
	failStockUpdateFor primitive.ObjectID

	// stockUpdates records which products had their stock written, in order.
	stockUpdates []primitive.ObjectID
}

func newMemStore() *memStore { return &memStore{} }

func (m *memStore) addCategory(name string) models.Category {
	c := models.Category{ID: primitive.NewObjectID(), Name: name}
	m.categories = append(m.categories, c)
	return c
}

func (m *memStore) addSupplier(name string) models.Supplier {
	s := models.Supplier{ID: primitive.NewObjectID(), Name: name}
	m.suppliers = append(m.suppliers, s)
	return s
}

func (m *memStore) addProduct(name string, price, cost float64, stock int) models.Product {
	p := models.Product{ID: primitive.NewObjectID(), Name: name, Price: price, Cost: cost, Stock: stock}
	m.products = append(m.products, p)
	return p
}

func (m *memStore) addOffer(price float64, productIDs ...primitive.ObjectID) models.Offer {
	o := models.Offer{ID: primitive.NewObjectID(), Products: productIDs, Price: price, Active: true}
	m.offers = append(m.offers, o)
	return o
}

func (m *memStore) addOrder(order models.SalesOrder) models.SalesOrder {
	order.ID = primitive.NewObjectID()
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	m.orders = append(m.orders, order)
	return order
}

func (m *memStore) productByID(id primitive.ObjectID) (models.Product, bool) {
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (m *memStore) orderByID(id primitive.ObjectID) (models.SalesOrder, bool) {
	for _, o := range m.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.SalesOrder{}, false
}

// Each interface gets its own thin wrapper so the method names never
// clash on memStore itself.

// ─── CategoryStore ────────────────────────────────────────────────────────────

type categoryStore struct{ m *memStore }

func (s categoryStore) All(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category(nil), s.m.categories...), nil
}

func (s categoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	for _, c := range s.m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, apperr.NotFound("category %s", id.Hex())
}

func (s categoryStore) Insert(ctx context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	s.m.categories = append(s.m.categories, *category)
	return nil
}

// ─── SupplierStore ────────────────────────────────────────────────────────────

type supplierStore struct{ m *memStore }

func (s supplierStore) All(ctx context.Context) ([]models.Supplier, error) {
	return append([]models.Supplier(nil), s.m.suppliers...), nil
}

func (s supplierStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Supplier, error) {
	for _, sup := range s.m.suppliers {
		if sup.ID == id {
			return sup, nil
		}
	}
	return models.Supplier{}, apperr.NotFound("supplier %s", id.Hex())
}

func (s supplierStore) Insert(ctx context.Context, supplier *models.Supplier) error {
	supplier.ID = primitive.NewObjectID()
	s.m.suppliers = append(s.m.suppliers, *supplier)
	return nil
}

// ─── ProductStore ─────────────────────────────────────────────────────────────

type productStore struct{ m *memStore }

func (s productStore) All(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), s.m.products...), nil
}

func (s productStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	if p, ok := s.m.productByID(id); ok {
		return p, nil
	}
	return models.Product{}, apperr.NotFound("product %s", id.Hex())
}

func (s productStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := s.m.productByID(id); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s productStore) FindFirstByName(ctx context.Context, name string) (models.Product, error) {
	for _, p := range s.m.products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, apperr.NotFound("product %q", name)
}

func (s productStore) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.m.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s productStore) FindBySupplier(ctx context.Context, supplierID primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.m.products {
		if p.Supplier == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s productStore) Insert(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	s.m.products = append(s.m.products, *product)
	return nil
}

func (s productStore) UpdateStock(ctx context.Context, id primitive.ObjectID, stock int) error {
	if id == s.m.failStockUpdateFor {
		return apperr.Store("update product stock", errAlwaysFails)
	}
	for i := range s.m.products {
		if s.m.products[i].ID == id {
			s.m.products[i].Stock = stock
			s.m.stockUpdates = append(s.m.stockUpdates, id)
			return nil
		}
	}
	return apperr.NotFound("product %s", id.Hex())
}

// ─── OfferStore ───────────────────────────────────────────────────────────────

type offerStore struct{ m *memStore }

func (s offerStore) All(ctx context.Context) ([]models.Offer, error) {
	return append([]models.Offer(nil), s.m.offers...), nil
}

func (s offerStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Offer, error) {
	for _, o := range s.m.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Offer{}, apperr.NotFound("offer %s", id.Hex())
}

func (s offerStore) FindByPriceRange(ctx context.Context, min, max float64) ([]models.Offer, error) {
	var out []models.Offer
	for _, o := range s.m.offers {
		if o.Price >= min && o.Price <= max {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s offerStore) Insert(ctx context.Context, offer *models.Offer) error {
	offer.ID = primitive.NewObjectID()
	s.m.offers = append(s.m.offers, *offer)
	return nil
}

// ─── OrderStore ───────────────────────────────────────────────────────────────

type orderStore struct{ m *memStore }

func (s orderStore) All(ctx context.Context) ([]models.SalesOrder, error) {
	return append([]models.SalesOrder(nil), s.m.orders...), nil
}

func (s orderStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.SalesOrder, error) {
	if o, ok := s.m.orderByID(id); ok {
		return o, nil
	}
	return models.SalesOrder{}, apperr.NotFound("order %s", id.Hex())
}

func (s orderStore) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.SalesOrder, error) {
	var out []models.SalesOrder
	for _, o := range s.m.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s orderStore) Insert(ctx context.Context, order *models.SalesOrder) error {
	order.ID = primitive.NewObjectID()
	s.m.orders = append(s.m.orders, *order)
	return nil
}

func (s orderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	for i := range s.m.orders {
		if s.m.orders[i].ID == id {
			s.m.orders[i].Status = status
			return nil
		}
	}
	return apperr.NotFound("order %s", id.Hex())
}

var errAlwaysFails = contextlessError("connection reset")

type contextlessError string

func (e contextlessError) Error() string { return string(e) }

// ─── Service wiring ───────────────────────────────────────────────────────────

func (m *memStore) newCatalogService() *CatalogService {
	return NewCatalogService(categoryStore{m}, supplierStore{m}, productStore{m})
}

func (m *memStore) newOfferService() *OfferService {
	return NewOfferService(offerStore{m}, productStore{m})
}

func (m *memStore) newOrderService() *OrderService {
	resolver := NewOfferResolver(offerStore{m}, productStore{m})
	return NewOrderService(orderStore{m}, productStore{m}, resolver)
}

func (m *memStore) newReportService() *ReportService {
	resolver := NewOfferResolver(offerStore{m}, productStore{m})
	return NewReportService(orderStore{m}, productStore{m}, resolver)
}
