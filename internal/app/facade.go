package app

import (
	"context"

	"github.com/vlasewsky/orderdesk/internal/domain/model"
	"github.com/vlasewsky/orderdesk/internal/usecase"
)

// OrderDeskFacade aggregates the application use cases behind one surface
// consumed by the HTTP layer.
type OrderDeskFacade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
}

// NewOrderDeskFacade constructs the facade.
func NewOrderDeskFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase) *OrderDeskFacade {
	return &OrderDeskFacade{auth: auth, orders: orders}
}

func (f *OrderDeskFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *OrderDeskFacade) Logout(ctx context.Context) error {
	return f.auth.Logout(ctx)
}

func (f *OrderDeskFacade) CurrentUser(ctx context.Context) (*model.User, bool) {
	return f.auth.Current(ctx)
}

func (f *OrderDeskFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *OrderDeskFacade) Products(term string) []model.Product {
	return f.orders.Products(term)
}

func (f *OrderDeskFacade) CreateOrder(ctx context.Context, customerName, customerEmail string, items []usecase.DraftItem) (*model.Order, error) {
	return f.orders.Submit(ctx, customerName, customerEmail, items)
}

func (f *OrderDeskFacade) Orders(ctx context.Context, term, statusFilter string) []model.Order {
	return f.orders.List(ctx, term, statusFilter)
}

func (f *OrderDeskFacade) OrderCounts(ctx context.Context) map[string]int {
	return f.orders.Counts(ctx)
}

func (f *OrderDeskFacade) UpdateOrderStatus(ctx context.Context, orderID, statusLabel string) error {
	return f.orders.UpdateStatus(ctx, orderID, statusLabel)
}
