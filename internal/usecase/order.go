package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/vlasewsky/orderdesk/internal/domain/errors"
	"github.com/vlasewsky/orderdesk/internal/domain/model"
	"github.com/vlasewsky/orderdesk/internal/draft"
	"github.com/vlasewsky/orderdesk/internal/history"
)

// OrderRepository describes persistence operations with finalized orders.
type OrderRepository interface {
	Add(ctx context.Context, order model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	List(ctx context.Context) []model.Order
}

// ProductSource provides read access to the catalog.
type ProductSource interface {
	List() []model.Product
	Get(id string) (model.Product, bool)
}

// DraftItem is a requested order line: a catalog product and a quantity.
type DraftItem struct {
	ProductID string
	Quantity  int
}

// OrderUseCase encapsulates the order lifecycle: draft submission, listing
// with filters, counts and status updates.
type OrderUseCase struct {
	orders  OrderRepository
	catalog ProductSource
	now     func() time.Time
	newID   func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders OrderRepository, catalog ProductSource) *OrderUseCase {
	return &OrderUseCase{
		orders:  orders,
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return "ORD-" + uuid.NewString() },
	}
}

// Products returns catalog products matching the search term, in seed order.
func (u *OrderUseCase) Products(term string) []model.Product {
	return draft.FilterProducts(u.catalog.List(), term)
}

// Submit replays the requested lines through a fresh draft, validates it and
// appends the built order to the repository. The replay keeps the form
// engine's rules: the initial add is clamped to stock, an explicit quantity
// is a direct set, and a non-positive quantity drops the line.
func (u *OrderUseCase) Submit(ctx context.Context, customerName, customerEmail string, items []DraftItem) (*model.Order, error) {
	d := draft.New()
	d.SetCustomerName(customerName)
	d.SetCustomerEmail(customerEmail)

	for _, item := range items {
		product, ok := u.catalog.Get(item.ProductID)
		if !ok {
			return nil, domainErrors.ErrUnknownProduct
		}
		d.AddProduct(product)
		if item.Quantity != 1 {
			d.SetQuantity(product.ID, item.Quantity)
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	order := d.Build(u.newID(), u.now())
	if err := u.orders.Add(ctx, order); err != nil {
		return nil, err
	}

	d.Reset()
	return &order, nil
}

// List returns orders filtered by search term and status label, preserving
// creation order.
func (u *OrderUseCase) List(ctx context.Context, term, statusFilter string) []model.Order {
	if statusFilter == "" {
		statusFilter = history.StatusFilterAll
	}
	return history.FilterOrders(u.orders.List(ctx), term, statusFilter)
}

// Counts tallies the unfiltered order list per status.
func (u *OrderUseCase) Counts(ctx context.Context) map[string]int {
	return history.CountsByStatus(u.orders.List(ctx))
}

// UpdateStatus resolves the status label and forwards the transition to the
// repository.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID, statusLabel string) error {
	status, ok := model.ParseOrderStatus(statusLabel)
	if !ok {
		return domainErrors.ErrUnknownStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}
