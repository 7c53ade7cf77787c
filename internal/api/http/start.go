package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/yosapark/yomogi_backend/config"
	"github.com/yosapark/yomogi_backend/internal/api/http/router"
	"github.com/yosapark/yomogi_backend/internal/app"
)

// NewFxApp assembles the server. Workers are registered before the server
// so they stop after it and drain what the last requests queued.
func NewFxApp(cfg *config.Config, stopTimeout time.Duration) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module,

		// Invoke *fiber.App to force NewServer and its lifecycle hook.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(stopTimeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	)
}
