package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Fleet   FleetConfig   `yaml:"fleet"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	SeatEventsTopic    string   `yaml:"seat_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type LoggingConfig struct {
	Env string `yaml:"env"`
}

type ServerConfig struct {
	// Flight is the number of the flight served over HTTP.
	Flight string `yaml:"flight"`
}

type FleetConfig struct {
	Aircraft []AircraftConfig `yaml:"aircraft"`
	Flights  []FlightConfig   `yaml:"flights"`
}

type AircraftConfig struct {
	Registration string `yaml:"registration"`
	Kind         string `yaml:"kind"`
	Model        string `yaml:"model"`
	Rows         int    `yaml:"rows"`
	SeatsPerRow  int    `yaml:"seats_per_row"`
	Variant      string `yaml:"variant"`
	Airline      string `yaml:"airline"`
}

type FlightConfig struct {
	Number     string            `yaml:"number"`
	Aircraft   string            `yaml:"aircraft"`
	Passengers []PassengerConfig `yaml:"passengers"`
}

type PassengerConfig struct {
	Seat    string `yaml:"seat"`
	Name    string `yaml:"name"`
	Surname string `yaml:"surname"`
	IDCard  string `yaml:"id_card"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "development"
	}
	if c.Kafka.SeatEventsTopic == "" {
		c.Kafka.SeatEventsTopic = "seat-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "flightseats-worker"
	}
	if c.Server.Flight == "" && len(c.Fleet.Flights) > 0 {
		c.Server.Flight = c.Fleet.Flights[0].Number
	}
}
