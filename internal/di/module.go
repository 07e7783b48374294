package di

import (
	"go.uber.org/fx"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/app"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/config"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/logger"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/pkg/auth"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/qrcode"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/server/http/handlers"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/server/http/router"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/storage/postgres"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		qrcode.Module,
		usecase.Module,
		fx.Provide(
			func(g *qrcode.Generator) app.CardRenderer { return g },
			func(f *app.LoyaltyFacade) handlers.LoyaltyFacade { return f },
			func(s *postgres.Storage) handlers.HealthFacade { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
