// Command activity-tail consumes the console's activity stream and writes
// every entry to the log. Entries it cannot decode end up in the dead
// letter queue.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/config"
	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/infra/queue"
	"github.com/xavierca1/farmareach/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console").Fatal("config", zap.Error(err))
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	if cfg.AMQP.URL == "" {
		log.Fatal("amqp.url is required")
	}

	mq, err := queue.Connect(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		log.Fatal("rabbitmq", zap.Error(err))
	}
	defer mq.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := queue.NewWorker(mq.Ch, logEntry(log), log.Named("worker"))
	log.Info("tailing activity", zap.String("queue", queue.QueueName))
	if err := worker.Run(ctx, queue.QueueName); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("worker stopped", zap.Error(err))
	}
}

func logEntry(log *zap.Logger) queue.ActivityHandler {
	return func(_ context.Context, e entity.ActivityEntry) error {
		fields := []zap.Field{zap.String("id", e.ID), zap.Time("at", e.At)}
		switch e.Level {
		case entity.ActivityError:
			log.Error(e.Message, fields...)
		case entity.ActivityWarn:
			log.Warn(e.Message, fields...)
		default:
			log.Info(e.Message, fields...)
		}
		return nil
	}
}
