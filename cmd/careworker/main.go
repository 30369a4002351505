package main

import (
	"context"
	"log/slog"
	"os"

	"careconnect/config"
	"careconnect/internal/delivery"
	"careconnect/internal/delivery/worker"
	"careconnect/internal/delivery/worker/handler"
	"careconnect/internal/infra/firebase"
	logs "careconnect/internal/infra/log"
	"careconnect/internal/infra/metrics"
	"careconnect/internal/infra/notification"
	"careconnect/internal/infra/persistence/postgres"
	"careconnect/internal/infra/pubsub"
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
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// The worker only delivers pushes, so it needs the device store and FCM but not Firestore.
func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.NewApp,
			firebase.NewMessagingClient,
		),
		postgres.Module,
		pubsub.Module,
		metrics.Module,
		realtime.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
