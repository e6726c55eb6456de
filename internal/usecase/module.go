package usecase

import (
	"go.uber.org/fx"

	"github.com/vlasewsky/orderdesk/internal/auth"
	"github.com/vlasewsky/orderdesk/internal/catalog"
	"github.com/vlasewsky/orderdesk/internal/store"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		func(g *auth.Gate) Gate { return g },
		func(s *store.OrderStore) OrderRepository { return s },
		func(c *catalog.Catalog) ProductSource { return c },
	),
	fx.Provide(
		NewAuthUseCase,
		NewOrderUseCase,
	),
)
