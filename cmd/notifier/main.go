// Command notifier runs the hyperlocal notification API and the help-request
// follow-up scheduler in one process.
package main

import (
	"context"
	"log/slog"

	"hyperlocal/config"
	"hyperlocal/internal/delivery"
	"hyperlocal/internal/delivery/api"
	"hyperlocal/internal/delivery/api/router/handler"
	"hyperlocal/internal/delivery/scheduler"
	"hyperlocal/internal/infra/dispatch"
	"hyperlocal/internal/infra/email"
	"hyperlocal/internal/infra/lock"
	logs "hyperlocal/internal/infra/log"
	"hyperlocal/internal/infra/metrics"
	"hyperlocal/internal/infra/notification"
	"hyperlocal/internal/infra/persistence/postgres"
	"hyperlocal/internal/infra/pubsub"
	"hyperlocal/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type runParams struct {
	fx.In

	Lc         fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		app(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
	).Run()
}

func app() fx.Option {
	return fx.Options(
		fx.Module("infra",
			fx.Provide(
				config.New,
				logs.New,
				context.Background,
				metrics.NewRegistry,
				metrics.New,
				postgres.New,
			),
		),
		fx.Module("store",
			fx.Provide(
				postgres.NewRecipientRepository,
				postgres.NewNotificationRepository,
				postgres.NewHelpRequestRepository,
			),
		),
		fx.Module("channels",
			email.Module,
			pubsub.Module,
			fx.Provide(
				notification.NewFirebaseService,
				lock.NewScanLocker,
				dispatch.NewDispatcher,
				asChannel(email.NewChannel),
				asChannel(notification.NewPushChannel),
			),
		),
		fx.Module("usecase",
			fx.Provide(
				impl.NewAudienceService,
				impl.NewNotificationService,
				impl.NewFollowUpService,
			),
		),
		fx.Module("delivery",
			fx.Provide(
				handler.NewNotificationHandler,
				handler.NewFollowUpHandler,
				asDelivery(api.NewServer),
				asDelivery(scheduler.NewScheduler),
			),
		),
		fx.Invoke(run),
	)
}

func asChannel(constructor any) any {
	return fx.Annotate(constructor, fx.ResultTags(`group:"channels"`))
}

func asDelivery(constructor any) any {
	return fx.Annotate(constructor, fx.ResultTags(`group:"deliveries"`))
}

// run starts every delivery once the lifecycle has started. A delivery that
// fails shuts the whole process down with a non-zero exit code.
func run(params runParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("[Main] Delivery stopped", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
