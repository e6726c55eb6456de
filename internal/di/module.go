package di

import (
	"go.uber.org/fx"

	"github.com/vlasewsky/orderdesk/internal/app"
	"github.com/vlasewsky/orderdesk/internal/auth"
	"github.com/vlasewsky/orderdesk/internal/catalog"
	"github.com/vlasewsky/orderdesk/internal/config"
	"github.com/vlasewsky/orderdesk/internal/kv"
	"github.com/vlasewsky/orderdesk/internal/logger"
	pkgAuth "github.com/vlasewsky/orderdesk/internal/pkg/auth"
	"github.com/vlasewsky/orderdesk/internal/server/http/handlers"
	"github.com/vlasewsky/orderdesk/internal/server/http/router"
	"github.com/vlasewsky/orderdesk/internal/store"
	"github.com/vlasewsky/orderdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		pkgAuth.Module,
		kv.Module,
		catalog.Module,
		store.Module,
		auth.Module,
		usecase.Module,
		fx.Provide(func(f *app.OrderDeskFacade) handlers.OrderDeskFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
