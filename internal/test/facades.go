package test

import (
	"context"

	"github.com/vlasewsky/orderdesk/internal/domain/model"
	"github.com/vlasewsky/orderdesk/internal/usecase"
)

// AuthFacadeStub provides configurable authentication behavior for tests.
type AuthFacadeStub struct {
	LoginFn       func(ctx context.Context, email, password string) (*model.User, string, error)
	LogoutFn      func(ctx context.Context) error
	CurrentUserFn func(ctx context.Context) (*model.User, bool)
	ParseTokenFn  func(token string) (string, error)
}

func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{Email: email, Name: "user"}, "session-token", nil
}

func (s AuthFacadeStub) Logout(ctx context.Context) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx)
	}
	return nil
}

func (s AuthFacadeStub) CurrentUser(ctx context.Context) (*model.User, bool) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx)
	}
	return &model.User{Email: "user@example.com", Name: "user"}, true
}

func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return "user@example.com", nil
}

// CatalogFacadeStub serves a configurable product list.
type CatalogFacadeStub struct {
	ProductsFn func(term string) []model.Product
}

func (s CatalogFacadeStub) Products(term string) []model.Product {
	if s.ProductsFn != nil {
		return s.ProductsFn(term)
	}
	return nil
}

// OrderFacadeStub provides configurable order behavior for tests.
type OrderFacadeStub struct {
	CreateOrderFn       func(ctx context.Context, customerName, customerEmail string, items []usecase.DraftItem) (*model.Order, error)
	OrdersFn            func(ctx context.Context, term, statusFilter string) []model.Order
	OrderCountsFn       func(ctx context.Context) map[string]int
	UpdateOrderStatusFn func(ctx context.Context, orderID, statusLabel string) error
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, customerName, customerEmail string, items []usecase.DraftItem) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, customerName, customerEmail, items)
	}
	return &model.Order{ID: "ORD-test", Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, term, statusFilter string) []model.Order {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, term, statusFilter)
	}
	return nil
}

func (s OrderFacadeStub) OrderCounts(ctx context.Context) map[string]int {
	if s.OrderCountsFn != nil {
		return s.OrderCountsFn(ctx)
	}
	return map[string]int{"all": 0}
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID, statusLabel string) error {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, statusLabel)
	}
	return nil
}

// OrderDeskFacadeStub aggregates the facade stubs for router level tests.
type OrderDeskFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
}
