package main

import (
	"log"
	"os"

	"github.com/Domenick1991/flightseats/config"
	"github.com/Domenick1991/flightseats/internal/fleet"
	"github.com/Domenick1991/flightseats/internal/logging"
	"github.com/Domenick1991/flightseats/internal/render"
)

// demo prints the seating chart and boarding cards of every configured flight.
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

	for _, f := range flights {
		logger.Infow("flight", "number", f.Number(), "aircraft", f.AircraftModel(), "available_seats", f.NumAvailableSeats())
		if err := render.PrintSeating(f); err != nil {
			logger.Fatalw("print seating", "error", err)
		}
		if err := render.PrintBoardingCards(f); err != nil {
			logger.Fatalw("print boarding cards", "error", err)
		}
	}
}
