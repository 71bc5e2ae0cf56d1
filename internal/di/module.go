package di

import (
	"go.uber.org/fx"

	"github.com/anandaputra/tokoku/internal/adapter/duitku"
	"github.com/anandaputra/tokoku/internal/app"
	"github.com/anandaputra/tokoku/internal/cache"
	"github.com/anandaputra/tokoku/internal/config"
	"github.com/anandaputra/tokoku/internal/events"
	"github.com/anandaputra/tokoku/internal/logger"
	"github.com/anandaputra/tokoku/internal/pkg/auth"
	"github.com/anandaputra/tokoku/internal/server/http/router"
	"github.com/anandaputra/tokoku/internal/storage/postgres"
	"github.com/anandaputra/tokoku/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		duitku.Module,
		cache.Module,
		events.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
