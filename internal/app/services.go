package app

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/yosapark/yomogi_backend/config"
	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/internal/service/catalog"
	"github.com/yosapark/yomogi_backend/internal/service/contact"
	"github.com/yosapark/yomogi_backend/internal/service/diagnosis"
	"github.com/yosapark/yomogi_backend/internal/service/notification"
	"github.com/yosapark/yomogi_backend/internal/service/reservation"
	"github.com/yosapark/yomogi_backend/pkg/email"
	"github.com/yosapark/yomogi_backend/pkg/observability"
	"github.com/yosapark/yomogi_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideDispatcher,
		ProvideNotifier,
		ProvideEngine,
		ProvideDiagnosisService,
		ProvideCatalogService,
		ProvideContactService,
		ProvideReservationService,
	),
)

func ProvideDispatcher(cfg *config.Config, logger *slog.Logger) *notification.Dispatcher {
	return notification.NewDispatcher(notification.DispatcherConfigFromCentral(cfg.Notification), logger)
}

func salonOf(cfg *config.Config) email.Salon {
	return email.Salon{
		Name:          cfg.Salon.Name,
		PostalAddress: cfg.Salon.PostalAddress,
		Phone:         cfg.Salon.Phone,
		Email:         cfg.Salon.Email,
	}
}

func ProvideNotifier(
	cfg *config.Config,
	d *notification.Dispatcher,
	mail *email.Client,
	text *sms.Client,
	logger *slog.Logger,
) notification.Notifier {
	return notification.NewNotifier(notification.NotifierParams{
		Queue:        d,
		Mail:         mail,
		SMS:          text,
		AdminAddress: mail.AdminAddress(),
		Salon:        salonOf(cfg),
		Logger:       logger,
	})
}

func ProvideEngine(cfg *config.Config) *diagnosis.Engine {
	return diagnosis.NewEngine(diagnosis.WithNearTieMargin(cfg.Diagnosis.NearTieMargin))
}

// ProvideDiagnosisService depends on the telemetry provider so the outcome
// counter is created against the installed meter.
func ProvideDiagnosisService(
	cfg *config.Config,
	engine *diagnosis.Engine,
	db *repo.Client,
	logger *slog.Logger,
	_ *observability.Provider,
) diagnosis.Service {
	return diagnosis.NewService(diagnosis.ServiceParams{
		Engine:         engine,
		Store:          db.Diagnosis,
		PersistTimeout: time.Duration(cfg.Diagnosis.PersistTimeoutSeconds) * time.Second,
		Logger:         logger,
	})
}

func ProvideCatalogService() catalog.Service {
	return catalog.New()
}

func ProvideContactService(db *repo.Client, n notification.Notifier, logger *slog.Logger) contact.Service {
	return contact.New(db.ContactMessage, n, logger)
}

func ProvideReservationService(
	cfg *config.Config,
	db *repo.Client,
	cat catalog.Service,
	n notification.Notifier,
	logger *slog.Logger,
) reservation.Service {
	return reservation.New(reservation.Params{
		Store:         db.Reservation,
		Blends:        cat,
		Notifier:      n,
		DefaultRegion: cfg.Salon.DefaultRegion,
		Logger:        logger,
	})
}
