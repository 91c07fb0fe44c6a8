package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/imagine-ke/imagine-api/internal/config"
	pkgmdw "github.com/imagine-ke/imagine-api/internal/server/middleware"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(middleware.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	// Deliberately permissive: this is a public-content API. Any origin, any
	// method and header, credentials allowed.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return true, nil
		},
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	RegisterRoutes(e, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

// RegisterRoutes binds the public routes to the controller. Split out of
// StartServer so tests can mount the handlers on a bare echo instance.
func RegisterRoutes(e *echo.Echo, handler Controller) {
	e.GET("/", handler.Root)
	e.POST("/seed", handler.Seed)
	e.GET("/questions", handler.ListQuestions)
	e.POST("/questions", handler.CreateQuestion)
	e.POST("/answers", handler.CreateAnswer)
	e.GET("/answers", handler.ListAnswers)
	e.GET("/modes", handler.ListModes)
	e.GET("/pricing", handler.ListPricing)
	e.GET("/blog", handler.ListBlog)
	e.POST("/blog", handler.CreateBlog)
	e.POST("/contact", handler.Contact)
	e.POST("/chat", handler.SendChat)
	e.GET("/chat", handler.ListChat)
	e.GET("/test", handler.Diagnostics)
}
