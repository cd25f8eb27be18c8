package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zackariya14/databasteknik-uppgift-2/app/models"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/collection"
)

// ReportService aggregates revenue-minus-cost across orders. Only
// orders with a set, resolvable offer reference take part in profit
// totals; direct-product orders contribute nothing.
type ReportService struct {
	orders   OrderStore
	products ProductStore
	resolver *OfferResolver
}

func NewReportService(orders OrderStore, products ProductStore, resolver *OfferResolver) *ReportService {
	return &ReportService{orders: orders, products: products, resolver: resolver}
}

// SaleSummary is one row of the all-sales report.
type SaleSummary struct {
	Number    int
	CreatedAt time.Time
	Status    models.OrderStatus
	Total     decimal.Decimal
}

// TotalProfit sums (price − cost) × quantity over every member product
// of every order's resolved offer. Orders whose offer is unset or
// dangling are skipped.
func (s *ReportService) TotalProfit(ctx context.Context) (decimal.Decimal, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, order := range orders {
		resolved, ok, err := s.resolveForOrder(ctx, order)
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(order.Quantity))
		for _, p := range resolved.Products {
			margin := decimal.NewFromFloat(p.Price).Sub(decimal.NewFromFloat(p.Cost))
			total = total.Add(margin.Mul(qty))
		}
	}
	return total, nil
}

// ProfitForProduct sums the named product's own (price − cost) ×
// quantity contribution across every order whose resolved offer
// contains a product with exactly that name. NotFound if no product
// carries the name at all.
func (s *ReportService) ProfitForProduct(ctx context.Context, name string) (decimal.Decimal, error) {
	if _, err := s.products.FindFirstByName(ctx, name); err != nil {
		return decimal.Zero, err
	}

	orders, err := s.orders.All(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, order := range orders {
		resolved, ok, err := s.resolveForOrder(ctx, order)
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			continue
		}
		member, found := collection.First(resolved.Products, func(p models.Product) bool {
			return p.Name == name
		})
		if !found {
			continue
		}
		qty := decimal.NewFromInt(int64(order.Quantity))
		margin := decimal.NewFromFloat(member.Price).Sub(decimal.NewFromFloat(member.Cost))
		total = total.Add(margin.Mul(qty))
	}
	return total, nil
}

// Sales returns one summary per order, in store order. Orders with no
// resolvable offer get a zero total instead of failing the report.
func (s *ReportService) Sales(ctx context.Context) ([]SaleSummary, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]SaleSummary, 0, len(orders))
	for i, order := range orders {
		total := decimal.Zero
		resolved, ok, err := s.resolveForOrder(ctx, order)
		if err != nil {
			return nil, err
		}
		if ok {
			total = memberTotal(resolved.Products, order.Quantity)
		}
		summaries = append(summaries, SaleSummary{
			Number:    i + 1,
			CreatedAt: order.CreatedAt,
			Status:    order.Status,
			Total:     total,
		})
	}
	return summaries, nil
}

// resolveForOrder expands the order's offer. ok is false when the order
// has no offer reference or the reference dangles; store failures
// propagate.
func (s *ReportService) resolveForOrder(ctx context.Context, order models.SalesOrder) (models.ResolvedOffer, bool, error) {
	if !order.HasOffer() {
		return models.ResolvedOffer{}, false, nil
	}
	resolved, err := s.resolver.Resolve(ctx, order.Offer)
	if errors.Is(err, apperr.ErrNotFound) {
		return models.ResolvedOffer{}, false, nil
	}
	if err != nil {
		return models.ResolvedOffer{}, false, err
	}
	return resolved, true, nil
}
