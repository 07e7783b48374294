package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/config"
)

// Module wires the application facade, HTTP server, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewLoyaltyFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			serve(p)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return stop(ctx, p)
		},
	})
}

// serve runs the listener in the background. A listen failure other than a
// clean shutdown tears the whole fx app down instead of leaving it half-alive.
func serve(p lifecycleParams) {
	p.Logger.Info("starting loyalty service", slog.String("addr", p.Server.Addr))
	go func() {
		err := p.Server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.Logger.Error("http server terminated", slog.String("error", err.Error()))
			_ = p.Shutdowner.Shutdown()
		}
	}()
}

func stop(ctx context.Context, p lifecycleParams) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
		defer cancel()
	}

	if err := p.Server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	p.Logger.Info("loyalty service stopped")
	return nil
}
