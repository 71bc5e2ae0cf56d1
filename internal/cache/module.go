package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/anandaputra/tokoku/internal/config"
)

// Module exposes the cart/status cache to the fx graph.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) Store {
	if p.Config.RedisAddr == "" {
		p.Logger.Info("redis not configured, carts and status cache disabled")
		return NopStore{}
	}
	return NewRedisStore(p.Config.RedisAddr, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, store Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
