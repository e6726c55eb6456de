// Package store owns the durable list of finalized orders.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/vlasewsky/orderdesk/internal/catalog"
	domainErrors "github.com/vlasewsky/orderdesk/internal/domain/errors"
	"github.com/vlasewsky/orderdesk/internal/domain/model"
	"github.com/vlasewsky/orderdesk/internal/kv"
)

// OrderStore keeps orders in memory in creation order and writes the whole
// list to the key-value store on every mutation (last write wins).
type OrderStore struct {
	mu       sync.Mutex
	kv       kv.Store
	logger   *slog.Logger
	orders   []model.Order
	products []model.Product
}

// New builds the store around a key-value backend and the product catalog.
func New(backend kv.Store, cat *catalog.Catalog, logger *slog.Logger) *OrderStore {
	return &OrderStore{
		kv:       backend,
		logger:   logger,
		products: cat.List(),
	}
}

// Load hydrates the order list from storage. A missing key or a document that
// fails to decode counts as "no saved state", never as a startup failure.
func (s *OrderStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok, err := s.kv.Get(ctx, kv.KeyOrders)
	if err != nil {
		s.logger.Warn("order hydration failed, starting empty", slog.String("error", err.Error()))
		s.orders = nil
		return nil
	}
	if !ok {
		s.orders = nil
		return nil
	}

	var orders []model.Order
	if err := json.Unmarshal(value, &orders); err != nil {
		s.logger.Warn("stored orders document is malformed, starting empty", slog.String("error", err.Error()))
		s.orders = nil
		return nil
	}

	s.orders = orders
	s.logger.Info("orders hydrated", slog.Int("count", len(orders)))
	return nil
}

// Add appends the order and persists the updated list. Duplicate ids are not
// rejected.
func (s *OrderStore) Add(ctx context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	if err := s.persist(ctx); err != nil {
		s.orders = s.orders[:len(s.orders)-1]
		return err
	}
	return nil
}

// UpdateStatus replaces the status of the matching order and persists the
// list. An unknown id is a silent no-op. Orders already in a terminal status
// reject further transitions.
func (s *OrderStore) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if s.orders[i].Status.Terminal() {
			return domainErrors.ErrOrderTerminal
		}
		previous := s.orders[i].Status
		s.orders[i].Status = status
		if err := s.persist(ctx); err != nil {
			s.orders[i].Status = previous
			return err
		}
		return nil
	}
	return nil
}

// List returns a snapshot of the orders in creation order.
func (s *OrderStore) List(ctx context.Context) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	for i := range out {
		items := make([]model.OrderItem, len(out[i].Items))
		copy(items, out[i].Items)
		out[i].Items = items
	}
	return out
}

// Products returns the catalog copy taken at initialization.
func (s *OrderStore) Products() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *OrderStore) persist(ctx context.Context) error {
	document, err := json.Marshal(s.orders)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kv.KeyOrders, document)
}
