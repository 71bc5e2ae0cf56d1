package duitku

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/anandaputra/tokoku/internal/config"
)

// Module exposes the Duitku client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(
		p.Config.DuitkuBaseURL,
		p.Config.MerchantCode,
		p.Config.DuitkuAPIKey,
		p.Config.CallbackURL,
		p.Config.ReturnURL,
		p.Logger,
	)
}
