package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/yosapark/yomogi_backend/config"
	"github.com/yosapark/yomogi_backend/internal/api/http/handler"
	"github.com/yosapark/yomogi_backend/internal/service/catalog"
	"github.com/yosapark/yomogi_backend/internal/service/contact"
	"github.com/yosapark/yomogi_backend/internal/service/diagnosis"
	"github.com/yosapark/yomogi_backend/internal/service/reservation"
	redispkg "github.com/yosapark/yomogi_backend/pkg/redis"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

// Pinger reports whether the database answers. *repo.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Params struct {
	fx.In

	Cfg            *config.Config
	DB             Pinger
	Redis          *goredis.Client `optional:"true"`
	DiagnosisSvc   diagnosis.Service
	CatalogSvc     catalog.Service
	ContactSvc     contact.Service
	ReservationSvc reservation.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	diagnosisH := handler.NewDiagnosisHandler(r.p.DiagnosisSvc, r.p.CatalogSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	contactH := handler.NewContactHandler(r.p.ContactSvc)
	reservationH := handler.NewReservationHandler(r.p.ReservationSvc)

	api := app.Group("/api/v1")

	// 3. Delegate to sub-files
	r.registerDiagnosisRoutes(api, diagnosisH)
	r.registerCatalogRoutes(api, catalogH)
	r.registerContactRoutes(api, contactH)
	r.registerReservationRoutes(api, reservationH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: r.ready,
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

// ready requires the database, and Redis when one is configured.
func (r *Router) ready(c fiber.Ctx) bool {
	if r.p.DB == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := r.p.DB.Ping(ctx); err != nil {
		return false
	}
	if r.p.Redis != nil {
		return redispkg.Healthy(ctx, r.p.Redis) == nil
	}
	return true
}
