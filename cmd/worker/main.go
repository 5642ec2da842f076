package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightseats/config"
	"github.com/Domenick1991/flightseats/internal/kafka"
	"github.com/Domenick1991/flightseats/internal/logging"
	"github.com/Domenick1991/flightseats/internal/notify"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.Must(cfg.Logging.Env)
	defer logger.Sync() //nolint:errcheck

	if !cfg.Kafka.Enabled() {
		logger.Fatalw("kafka brokers are not configured")
	}

	topic := cfg.Kafka.NotificationsTopic
	if topic == "" {
		topic = cfg.Kafka.SeatEventsTopic
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, topic)
	defer consumer.Close()

	sender := notify.NewSender(os.Stdout)

	logger.Infow("consuming seat events", "topic", topic, "group", cfg.Kafka.GroupID)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeSeatEvent(msg)
		if err != nil {
			logger.Warnw("skipping undecodable message", "offset", msg.Offset, "error", err)
			return nil
		}
		if err := sender.Send(ctx, event); err != nil {
			logger.Warnw("boarding card not printed", "event", event.ID, "error", err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorw("consumer stopped", "error", err)
		return
	}
	logger.Infow("worker shutting down")
}
