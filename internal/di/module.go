package di

import (
	"github.com/ekeukwu/market/internal/adapter/mailer"
	"github.com/ekeukwu/market/internal/adapter/objectstore"
	"github.com/ekeukwu/market/internal/app"
	"github.com/ekeukwu/market/internal/config"
	"github.com/ekeukwu/market/internal/logger"
	"github.com/ekeukwu/market/internal/pkg/auth"
	"github.com/ekeukwu/market/internal/server/http/handlers"
	"github.com/ekeukwu/market/internal/server/http/router"
	"github.com/ekeukwu/market/internal/storage/postgres"
	"github.com/ekeukwu/market/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		objectstore.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(f *app.MarketFacade) handlers.MarketFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
