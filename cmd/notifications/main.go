package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelfspot/internal/config"
	"shelfspot/internal/logging"
	"shelfspot/internal/notifications"
	"shelfspot/internal/products"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger := logging.New("notifications")
	code := run(logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(logger *zap.Logger) int {
	cfg, err := config.LoadNotifications()
	if err != nil {
		logger.Error("load config", zap.Error(err))
		return 1
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Error("connect rabbitmq", zap.Error(err))
		return 1
	}
	defer conn.Close()

	consumer, err := notifications.NewConsumer(conn, products.EventsQueue, logger)
	if err != nil {
		logger.Error("init consumer", zap.Error(err))
		return 1
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("notifications service started", zap.String("queue", products.EventsQueue))
		errCh <- consumer.Listen(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("consumer failed", zap.Error(err))
			return 1
		}
		logger.Info("notifications service stopped")
		return 0
	}

	shutdownDeadline := time.NewTimer(cfg.ShutdownTimeout)
	defer shutdownDeadline.Stop()
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("consumer stop failed", zap.Error(err))
			return 1
		}
	case <-shutdownDeadline.C:
		logger.Warn("consumer shutdown timeout reached")
	}

	logger.Info("notifications service stopped")
	return 0
}
