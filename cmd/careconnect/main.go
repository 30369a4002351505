package main

import (
	"context"
	"log/slog"
	"os"

	"careconnect/config"
	"careconnect/internal/delivery"
	"careconnect/internal/delivery/http"
	"careconnect/internal/delivery/http/middleware"
	"careconnect/internal/delivery/http/router/handler"
	"careconnect/internal/delivery/mqtt"
	"careconnect/internal/delivery/scheduler"
	"careconnect/internal/domain/command"
	"careconnect/internal/domain/geofence"
	"careconnect/internal/domain/reminder"
	"careconnect/internal/infra/auth"
	"careconnect/internal/infra/blob"
	"careconnect/internal/infra/firebase"
	"careconnect/internal/infra/llm"
	logs "careconnect/internal/infra/log"
	"careconnect/internal/infra/metrics"
	"careconnect/internal/infra/notification"
	"careconnect/internal/infra/persistence/firestore"
	"careconnect/internal/infra/persistence/postgres"
	"careconnect/internal/infra/pubsub"
	"careconnect/internal/infra/qrcode"
	"careconnect/internal/infra/realtime"
	"careconnect/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectDomain(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
		postgres.Module,
		pubsub.Module,
		blob.Module,
		metrics.Module,
		realtime.Module,
	)
}

func injectRepo() fx.Option {
	return firestore.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenVerifier,
			notification.NewFirebaseService,
			qrcode.NewQRCodeService,
		),
		llm.Module,
	)
}

// injectDomain provides the in-process monitor state. The API runs as a single instance, so
// the geofence states and surfaced reminders live in memory next to the websocket hub.
func injectDomain() fx.Option {
	return fx.Provide(
		func(cfg *config.Config) *geofence.Evaluator {
			return geofence.NewEvaluator(geofence.Options{
				HysteresisMeters: cfg.Monitor.HysteresisMeters,
				MinDwell:         cfg.Monitor.MinDwell,
			})
		},
		geofence.NewStateTable,
		geofence.NewMonitor,
		func(cfg *config.Config) *reminder.Classifier {
			return reminder.NewClassifier(cfg.Monitor.LeadWindow)
		},
		reminder.NewTracker,
		command.NewParser,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDeviceService,
			impl.NewConnectionService,
			impl.NewTrackingService,
			impl.NewAlertService,
			impl.NewMedicineService,
			impl.NewReminderService,
			impl.NewChatService,
			impl.NewAssistantService,
			impl.NewSnapshotService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewConnectionHandler,
			handler.NewTrackingHandler,
			handler.NewAlertHandler,
			handler.NewMedicineHandler,
			handler.NewChatHandler,
			handler.NewAssistantHandler,
			handler.NewRealtimeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				mqtt.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
