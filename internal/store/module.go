package store

import (
	"context"

	"go.uber.org/fx"
)

// Module wires the order store and hydrates it on startup.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(registerLifecycle),
)

func registerLifecycle(lc fx.Lifecycle, s *OrderStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Load(ctx)
		},
	})
}
