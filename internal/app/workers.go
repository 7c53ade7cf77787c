package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/yosapark/yomogi_backend/internal/service/notification"
)

// WorkerModule runs the background notification workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Dispatcher *notification.Dispatcher
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Dispatcher.Start()
			return nil
		},
		// Stop hooks run in reverse, so the HTTP server is already closed
		// and no new jobs arrive while the queue drains.
		OnStop: func(ctx context.Context) error {
			return p.Dispatcher.Stop(ctx)
		},
	})
}
