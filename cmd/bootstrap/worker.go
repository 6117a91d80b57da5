package bootstrap

import (
	"context"

	"seating-service/internal/infra/broker"
	"seating-service/internal/infra/worker"
	"seating-service/internal/pkg/config"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewPgJobSource,
		NewNotificationDispatcher,
	),
	fx.Invoke(startNotificationDispatcher),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) broker.Publisher {
	p := broker.NewAMQPPublisher(cfg.Broker)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

func NewNotificationDispatcher(source worker.JobSource, publisher broker.Publisher, cfg config.Config) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(source, publisher, cfg.Notification)
}

func startNotificationDispatcher(lc fx.Lifecycle, d *worker.NotificationDispatcher, cfg config.Config) {
	if !cfg.Notification.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			d.Stop()
			return nil
		},
	})
}
