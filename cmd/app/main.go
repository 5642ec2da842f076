package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightseats/config"
	"github.com/Domenick1991/flightseats/internal/bootstrap"
	"github.com/Domenick1991/flightseats/internal/fleet"
	"github.com/Domenick1991/flightseats/internal/kafka"
	"github.com/Domenick1991/flightseats/internal/logging"
	"github.com/Domenick1991/flightseats/internal/service/seating"
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

	flights, err := fleet.Build(cfg.Fleet)
	if err != nil {
		logger.Fatalw("build fleet", "error", err)
	}
	flight, err := fleet.Find(flights, cfg.Server.Flight)
	if err != nil {
		logger.Fatalw("select flight", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var producer seating.Producer
	if cfg.Kafka.Enabled() {
		p := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		defer p.Close()

		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := p.CheckConnection(checkCtx); err != nil {
			logger.Warnw("kafka unreachable, seat events may be lost", "error", err)
		}
		cancel()
		producer = p
	}

	seatingService := seating.NewSeatingService(
		flight,
		producer,
		cfg.Kafka.SeatEventsTopic,
		logger,
		seating.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	logger.Infow("serving flight", "flight", flight.Number(), "aircraft", flight.AircraftModel(), "available_seats", flight.NumAvailableSeats())
	if err := bootstrap.Run(ctx, cfg, seatingService, logger); err != nil {
		logger.Fatalw("server error", "error", err)
	}
}
