package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/config"
	"github.com/oksasatya/postboard/internal/application"
	pginfra "github.com/oksasatya/postboard/internal/infrastructure/postgres"
	"github.com/oksasatya/postboard/pkg/helpers"
	"github.com/oksasatya/postboard/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify-worker", cfg.Env, cfg.LogLevel)

	if !cfg.MailSendEnabled {
		logger.Warn("MAIL_SEND_ENABLED=false; notify worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch across workers
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	if err := helpers.DeclareQueue(ch, cfg.RabbitMQEventsQueue); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	svc := application.NewNotificationService(
		pginfra.NewUserRepository(pool),
		pginfra.NewPostRepository(pool),
		mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender),
		cfg,
		logger,
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			handle(ctx, svc, logger, msg)
		}
		close(done)
	}()

	logger.Infof("notify worker listening on queue=%s", cfg.RabbitMQEventsQueue)
	<-stop
	logger.Info("shutting down...")
	_ = ch.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func handle(ctx context.Context, svc *application.NotificationService, logger *logrus.Logger, msg amqp.Delivery) {
	c, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	outcome, err := svc.HandleEvent(c, msg.Body)
	switch {
	case err == nil:
		// Ignored covers the other lifecycle events sharing this queue.
		if outcome != application.OutcomeIgnored {
			logger.WithField("outcome", outcome).Debug("event handled")
		}
		_ = msg.Ack(false)
	case errors.Is(err, application.ErrPermanent):
		helpers.LogError(logger, "dropping event", err, logrus.Fields{"message_id": msg.MessageId})
		_ = msg.Nack(false, false)
	default:
		logger.WithError(err).Warn("event failed; requeueing")
		_ = msg.Nack(false, true)
	}
}
