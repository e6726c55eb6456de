package handlers

import (
	"context"

	"github.com/vlasewsky/orderdesk/internal/domain/model"
	"github.com/vlasewsky/orderdesk/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.User, bool)
	ParseToken(token string) (string, error)
}

// CatalogFacade exposes the product catalog.
type CatalogFacade interface {
	Products(term string) []model.Product
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, customerName, customerEmail string, items []usecase.DraftItem) (*model.Order, error)
	Orders(ctx context.Context, term, statusFilter string) []model.Order
	OrderCounts(ctx context.Context) map[string]int
	UpdateOrderStatus(ctx context.Context, orderID, statusLabel string) error
}

// OrderDeskFacade aggregates the full set of operations used across handlers.
type OrderDeskFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
}
