package main

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/holonet-labs/holocron-back/internal/config"
	"github.com/holonet-labs/holocron-back/internal/db"
	"github.com/holonet-labs/holocron-back/internal/service"
	"github.com/holonet-labs/holocron-back/internal/transport"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			db.NewGormClient,
			service.NewFavourite,
			service.NewCatalog,
			service.NewAccount,
			transport.NewHTTPServer,
			func() (*zap.SugaredLogger, error) {
				l, err := zap.NewProduction()
				if err != nil {
					return nil, err
				}
				return l.Sugar(), nil
			},
		),
		fx.Invoke(func(server *transport.HTTPServer) {}),
	)

	app.Run()
}
