package kv

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/vlasewsky/orderdesk/internal/config"
)

// Module wires the key-value store backend chosen by configuration.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newStore picks the backend: PostgreSQL when a DSN is set, then Redis, then
// the file store.
func newStore(p storeParams) (Store, error) {
	switch {
	case p.Config.DatabaseURI != "":
		p.Logger.Info("using postgres key-value store")
		return NewPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
	case p.Config.RedisAddress != "":
		p.Logger.Info("using redis key-value store", slog.String("addr", p.Config.RedisAddress))
		return NewRedis(p.Ctx, p.Config.RedisAddress)
	default:
		p.Logger.Info("using file key-value store", slog.String("dir", p.Config.DataDir))
		return NewFile(p.Config.DataDir)
	}
}

func registerLifecycle(lc fx.Lifecycle, store Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
