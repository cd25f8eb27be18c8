package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/app/repositories"
	"github.com/zackariya14/databasteknik-uppgift-2/app/services"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/collection"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/database"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/logger"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/prompt"
)

// errQuit signals a clean exit from the menu loop.
var errQuit = errors.New("quit")

// menu drives the interactive loop. It owns all prompting, numeric
// parsing and index validation; the services below it receive only
// already-validated arguments. One operation is in flight at a time.
type menu struct {
	p   *prompt.Prompter
	out io.Writer

	catalog *services.CatalogService
	offers  *services.OfferService
	orders  *services.OrderService
	reports *services.ReportService
}

// newMenu wires repositories and services onto the store handle.
func newMenu(db *database.DB, in io.Reader, out io.Writer) *menu {
	categoryRepo := repositories.NewCategoryRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	productRepo := repositories.NewProductRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	offerSvc := services.NewOfferService(offerRepo, productRepo)

	return &menu{
		p:       prompt.New(in, out),
		out:     out,
		catalog: services.NewCatalogService(categoryRepo, supplierRepo, productRepo),
		offers:  offerSvc,
		orders:  services.NewOrderService(orderRepo, productRepo, offerSvc.Resolver()),
		reports: services.NewReportService(orderRepo, productRepo, offerSvc.Resolver()),
	}
}

// run shows the menu until the user quits or input ends. Every
// operation error is logged with context and the loop returns to the
// menu; nothing is retried or rolled back.
func (m *menu) run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, err := m.p.Line("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = m.dispatch(ctx, choice)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			logger.Error("operation failed", "choice", choice, "error", err)
			fmt.Fprintf(m.out, "Error: %v\n\n", err)
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out, "1. add new category")
	fmt.Fprintln(m.out, "2. add new product")
	fmt.Fprintln(m.out, "3. view products by category")
	fmt.Fprintln(m.out, "4. view products by supplier")
	fmt.Fprintln(m.out, "5. view all offers within price range")
	fmt.Fprintln(m.out, "6. view all offers that contain a product from a specific category")
	fmt.Fprintln(m.out, "7. view the number of offers based on the number of its products in stock")
	fmt.Fprintln(m.out, "8. create order for products")
	fmt.Fprintln(m.out, "9. create order for offers")
	fmt.Fprintln(m.out, "10. ship orders")
	fmt.Fprintln(m.out, "11. add a new supplier")
	fmt.Fprintln(m.out, "12. view suppliers")
	fmt.Fprintln(m.out, "13. view all sales")
	fmt.Fprintln(m.out, "14. view sum of all profits")
	fmt.Fprintln(m.out, "15. enter product name to view profits")
	fmt.Fprintln(m.out, "16. add a new offer")
	fmt.Fprintln(m.out, "17. end program")
}

func (m *menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.addCategory(ctx)
	case "2":
		return m.addProduct(ctx)
	case "3":
		return m.productsByCategory(ctx)
	case "4":
		return m.productsBySupplier(ctx)
	case "5":
		return m.offersInPriceRange(ctx)
	case "6":
		return m.offersWithCategory(ctx)
	case "7":
		return m.offersByStock(ctx)
	case "8":
		return m.orderForProduct(ctx)
	case "9":
		return m.orderForOffer(ctx)
	case "10":
		return m.shipOrder(ctx)
	case "11":
		return m.addSupplier(ctx)
	case "12":
		return m.viewSuppliers(ctx)
	case "13":
		return m.viewSales(ctx)
	case "14":
		return m.viewTotalProfit(ctx)
	case "15":
		return m.viewProductProfit(ctx)
	case "16":
		return m.addOffer(ctx)
	case "17", "q", "quit", "exit":
		return errQuit
	default:
		fmt.Fprintln(m.out, "Wrong input")
		return nil
	}
}

// ─── Catalog ──────────────────────────────────────────────────────────────────

func (m *menu) addCategory(ctx context.Context) error {
	fmt.Fprintln(m.out, "Add new category")
	name, err := m.p.Line("Category: ")
	if err != nil {
		return err
	}
	description, err := m.p.Line("Description (optional): ")
	if err != nil {
		return err
	}
	if _, err := m.catalog.CreateCategory(ctx, name, description); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Category added successfully!")
	return nil
}

func (m *menu) addProduct(ctx context.Context) error {
	fmt.Fprintln(m.out, "Enter details for the new product")

	category, err := pickCategory(ctx, m)
	if err != nil {
		return err
	}
	supplier, err := pickSupplier(ctx, m)
	if err != nil {
		return err
	}

	name, err := m.p.Line("Name: ")
	if err != nil {
		return err
	}
	price, err := m.p.Float("Price: ")
	if err != nil {
		return err
	}
	cost, err := m.p.Float("Cost: ")
	if err != nil {
		return err
	}
	stock, err := m.p.Int("Stock: ")
	if err != nil {
		return err
	}

	_, err = m.catalog.CreateProduct(ctx, services.ProductInput{
		Name:     name,
		Category: category.ID,
		Supplier: supplier.ID,
		Price:    price,
		Cost:     cost,
		Stock:    stock,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product added successfully!")
	return nil
}

func (m *menu) addSupplier(ctx context.Context) error {
	fmt.Fprintln(m.out, "Add a new supplier")
	name, err := m.p.Line("Supplier Name: ")
	if err != nil {
		return err
	}
	contact, err := m.p.Line("Contact Person: ")
	if err != nil {
		return err
	}
	email, err := m.p.Line("Email Address: ")
	if err != nil {
		return err
	}
	if _, err := m.catalog.CreateSupplier(ctx, name, contact, email); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "New supplier added successfully!")
	return nil
}

func (m *menu) viewSuppliers(ctx context.Context) error {
	suppliers, err := m.catalog.Suppliers(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "All Suppliers:")
	for i, s := range suppliers {
		fmt.Fprintf(m.out, "Supplier Number: %d\n", i+1)
		fmt.Fprintf(m.out, "Name: %s\n", s.Name)
		fmt.Fprintf(m.out, "Contact Person: %s\n", s.Contact)
		fmt.Fprintf(m.out, "Email: %s\n", s.Email)
		fmt.Fprintln(m.out, "----------------------------")
	}
	return nil
}

func (m *menu) productsByCategory(ctx context.Context) error {
	fmt.Fprintln(m.out, "View Products by Category")
	category, err := pickCategory(ctx, m)
	if err != nil {
		return err
	}
	products, err := m.catalog.ProductsByCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Products in Category %q:\n", category.Name)
	for _, p := range products {
		fmt.Fprintf(m.out, "- %s (price %v, stock %d)\n", p.Name, p.Price, p.Stock)
	}
	return nil
}

func (m *menu) productsBySupplier(ctx context.Context) error {
	fmt.Fprintln(m.out, "View Products by Supplier")
	supplier, err := pickSupplier(ctx, m)
	if err != nil {
		return err
	}
	products, err := m.catalog.ProductsBySupplier(ctx, supplier.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Products by Supplier %q:\n", supplier.Name)
	for _, p := range products {
		fmt.Fprintf(m.out, "- %s (price %v, stock %d)\n", p.Name, p.Price, p.Stock)
	}
	return nil
}

// ─── Offers ───────────────────────────────────────────────────────────────────

func (m *menu) offersInPriceRange(ctx context.Context) error {
	min, err := m.p.Float("Enter the minimum price: ")
	if err != nil {
		return err
	}
	max, err := m.p.Float("Enter the maximum price: ")
	if err != nil {
		return err
	}
	offers, err := m.offers.InPriceRange(ctx, min, max)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Offers within the price range %v - %v:\n", min, max)
	m.printResolvedOffers(offers)
	return nil
}

func (m *menu) offersWithCategory(ctx context.Context) error {
	category, err := pickCategory(ctx, m)
	if err != nil {
		return err
	}
	offers, err := m.offers.WithCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Offers containing a product from %q:\n", category.Name)
	m.printResolvedOffers(offers)
	return nil
}

func (m *menu) offersByStock(ctx context.Context) error {
	buckets, err := m.offers.StockBuckets(ctx)
	if err != nil {
		return err
	}
	levels := make([]int, 0, len(buckets))
	for level := range buckets {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	fmt.Fprintln(m.out, "Number of Offers based on Stock:")
	for _, level := range levels {
		fmt.Fprintf(m.out, "Stock Level: %d, Number of Offers: %d\n", level, buckets[level])
	}
	return nil
}

func (m *menu) addOffer(ctx context.Context) error {
	fmt.Fprintln(m.out, "Add a new offer")
	products, err := m.catalog.Products(ctx)
	if err != nil {
		return err
	}
	printNumbered(m.out, "Available Products:", products, func(p models.Product) string { return p.Name })

	line, err := m.p.Line("Select products (comma-separated indexes): ")
	if err != nil {
		return err
	}
	memberIDs, err := parseIndexSet(line, products)
	if err != nil {
		return err
	}

	price, err := m.p.Float("Offer price: ")
	if err != nil {
		return err
	}
	activeLine, err := m.p.Line("Active? (y/n): ")
	if err != nil {
		return err
	}
	active := strings.EqualFold(activeLine, "y") || strings.EqualFold(activeLine, "yes")

	if _, err := m.offers.Create(ctx, memberIDs, price, active); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Offer added successfully!")
	return nil
}

func (m *menu) printResolvedOffers(offers []models.ResolvedOffer) {
	for i, o := range offers {
		names := collection.Map(o.Products, func(p models.Product) string { return p.Name })
		fmt.Fprintf(m.out, "Offer Number: %d\n", i+1)
		fmt.Fprintf(m.out, "Price: %v\n", o.Price)
		fmt.Fprintf(m.out, "Products: %s\n", strings.Join(names, ", "))
		fmt.Fprintln(m.out, "----------------------------")
	}
}

// ─── Orders ───────────────────────────────────────────────────────────────────

func (m *menu) orderForProduct(ctx context.Context) error {
	fmt.Fprintln(m.out, "Create Sales Order for Individual Product")
	products, err := m.catalog.Products(ctx)
	if err != nil {
		return err
	}
	product, err := pick(m, products, "Select a product (enter index): ", "Available Products:",
		func(p models.Product) string { return p.Name })
	if err != nil {
		return err
	}

	quantity, err := m.p.Int("Enter the quantity: ")
	if err != nil {
		return err
	}
	details, err := m.p.Line("Enter additional details: ")
	if err != nil {
		return err
	}

	conf, err := m.orders.CreateForProduct(ctx, product.ID, quantity, details)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Sales order created successfully:")
	fmt.Fprintf(m.out, "Product: %s\n", conf.Product.Name)
	fmt.Fprintf(m.out, "Quantity: %d\n", conf.Order.Quantity)
	fmt.Fprintf(m.out, "Total Cost: %s\n", conf.Total.StringFixed(2))
	return nil
}

func (m *menu) orderForOffer(ctx context.Context) error {
	fmt.Fprintln(m.out, "Create Sales Order for Entire Offer")
	offers, err := m.offers.All(ctx)
	if err != nil {
		return err
	}
	offer, err := pick(m, offers, "Select an offer (enter index): ", "Available Offers:",
		func(o models.Offer) string {
			return fmt.Sprintf("price %v, %d products", o.Price, len(o.Products))
		})
	if err != nil {
		return err
	}

	quantity, err := m.p.Int("Enter the quantity: ")
	if err != nil {
		return err
	}
	details, err := m.p.Line("Enter additional details: ")
	if err != nil {
		return err
	}

	conf, err := m.orders.CreateForOffer(ctx, offer.ID, quantity, details)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Sales order created successfully:")
	fmt.Fprintf(m.out, "Offer: %s\n", conf.Offer.ID.Hex())
	fmt.Fprintf(m.out, "Quantity: %d\n", conf.Order.Quantity)
	fmt.Fprintf(m.out, "Total Cost: %s\n", conf.Total.StringFixed(2))
	return nil
}

func (m *menu) shipOrder(ctx context.Context) error {
	fmt.Fprintln(m.out, "Ship Orders")
	pending, err := m.orders.Pending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Fprintln(m.out, "No pending orders found.")
		return nil
	}

	order, err := pick(m, pending, "Select an order to ship (enter index): ", "Pending Orders:",
		func(o models.SalesOrder) string {
			return fmt.Sprintf("Order ID: %s (quantity %d)", o.ID.Hex(), o.Quantity)
		})
	if err != nil {
		return err
	}

	shipped, err := m.orders.Ship(ctx, order.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Order ID: %s has been successfully shipped.\n", shipped.ID.Hex())
	return nil
}

// ─── Reports ──────────────────────────────────────────────────────────────────

func (m *menu) viewSales(ctx context.Context) error {
	sales, err := m.reports.Sales(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "All Sales Orders:")
	for _, s := range sales {
		fmt.Fprintf(m.out, "Order Number: %d\n", s.Number)
		fmt.Fprintf(m.out, "Date: %s\n", s.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(m.out, "Status: %s\n", s.Status)
		fmt.Fprintf(m.out, "Total Cost: %s\n", s.Total.StringFixed(2))
		fmt.Fprintln(m.out, "----------------------------")
	}
	return nil
}

func (m *menu) viewTotalProfit(ctx context.Context) error {
	total, err := m.reports.TotalProfit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Total profit generated from all sales orders: $%s\n", total.StringFixed(2))
	return nil
}

func (m *menu) viewProductProfit(ctx context.Context) error {
	name, err := m.p.Line("Enter product name to view profits: ")
	if err != nil {
		return err
	}
	total, err := m.reports.ProfitForProduct(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Total profit generated from sales orders containing %q: $%s\n", name, total.StringFixed(2))
	return nil
}

// ─── Selection helpers ────────────────────────────────────────────────────────

func pickCategory(ctx context.Context, m *menu) (models.Category, error) {
	categories, err := m.catalog.Categories(ctx)
	if err != nil {
		return models.Category{}, err
	}
	return pick(m, categories, "Select a category (enter index): ", "Available Categories:",
		func(c models.Category) string { return c.Name })
}

func pickSupplier(ctx context.Context, m *menu) (models.Supplier, error) {
	suppliers, err := m.catalog.Suppliers(ctx)
	if err != nil {
		return models.Supplier{}, err
	}
	return pick(m, suppliers, "Select a supplier (enter index): ", "Available Suppliers:",
		func(s models.Supplier) string { return s.Name })
}

// pick prints a numbered list and returns the chosen entry. The index
// check happens in the prompter; anything outside [1, N] comes back as
// InvalidInput with nothing selected.
func pick[T any](m *menu, items []T, label, header string, display func(T) string) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, apperr.InvalidInput("nothing to select from")
	}
	printNumbered(m.out, header, items, display)
	idx, err := m.p.SelectIndex(label, len(items))
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}

func printNumbered[T any](out io.Writer, header string, items []T, display func(T) string) {
	fmt.Fprintln(out, header)
	for i, item := range items {
		fmt.Fprintf(out, "%d. %s\n", i+1, display(item))
	}
}

// parseIndexSet turns "1,3,4" into the ids of the matching products.
func parseIndexSet(line string, products []models.Product) ([]primitive.ObjectID, error) {
	parts := strings.Split(line, ",")
	var ids []primitive.ObjectID
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, apperr.InvalidInput("%q is not a number", part)
		}
		if idx < 1 || idx > len(products) {
			return nil, apperr.InvalidInput("index %d out of range [1, %d]", idx, len(products))
		}
		ids = append(ids, products[idx-1].ID)
	}
	if len(ids) == 0 {
		return nil, apperr.InvalidInput("no products selected")
	}
	return ids, nil
}
