package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/imagine-ke/imagine-api/internal/config"
	"github.com/imagine-ke/imagine-api/internal/repo/mongodb"
	"github.com/imagine-ke/imagine-api/internal/server"
	"github.com/imagine-ke/imagine-api/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDatabase,
			mongodb.NewStore,

			usecase.NewContentUsecase,
			usecase.NewSeedUsecase,

			server.NewController,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
