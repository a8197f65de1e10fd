package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP        HTTPConfig          `yaml:"http"`
	GRPC        GRPCConfig          `yaml:"grpc"`
	Redis       RedisConfig         `yaml:"redis"`
	Kafka       KafkaConfig         `yaml:"kafka"`
	Reservation ReservationConfig   `yaml:"reservation"`
	RateLimit   RateLimitConfig     `yaml:"rate_limit"`
	Flights     []domain.FlightSpec `yaml:"flights"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

// RedisConfig is optional; an empty Addr disables the flight summary cache.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// KafkaConfig is optional; no brokers means reservation events are not published.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	ReservationTopic   string   `yaml:"reservation_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type ReservationConfig struct {
	AutoSeatAttempts int `yaml:"auto_seat_attempts"`
	PNRAttempts      int `yaml:"pnr_attempts"`
	FlightsCacheTTL  int `yaml:"flights_cache_ttl_seconds"`
	// ConsistencyAudit is the interval between grid/ledger audits; negative disables it.
	ConsistencyAudit int `yaml:"consistency_audit_seconds"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates the flight catalog.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "airreservation-worker"
	}
	if c.Reservation.AutoSeatAttempts <= 0 {
		c.Reservation.AutoSeatAttempts = 8
	}
	if c.Reservation.PNRAttempts <= 0 {
		c.Reservation.PNRAttempts = 32
	}
	if c.Reservation.FlightsCacheTTL <= 0 {
		c.Reservation.FlightsCacheTTL = 30
	}
	if c.Reservation.ConsistencyAudit == 0 {
		c.Reservation.ConsistencyAudit = 60
	}
	if c.RateLimit.RPS <= 0 {
		c.RateLimit.RPS = 20
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 40
	}
}

func (c *Config) Validate() error {
	if len(c.Flights) == 0 {
		return errors.New("config: at least one flight is required")
	}
	seen := make(map[string]bool, len(c.Flights))
	for i, f := range c.Flights {
		if f.ID == "" {
			return fmt.Errorf("config: flights[%d]: id is required", i)
		}
		if seen[f.ID] {
			return fmt.Errorf("config: flights[%d]: duplicate id %q", i, f.ID)
		}
		seen[f.ID] = true
		if f.Rows <= 0 {
			return fmt.Errorf("config: flight %s: rows must be positive", f.ID)
		}
		if f.Columns <= 0 || f.Columns > domain.MaxColumns {
			return fmt.Errorf("config: flight %s: columns must be within 1..%d", f.ID, domain.MaxColumns)
		}
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.ReservationTopic == "" {
		return errors.New("config: kafka.reservation_topic is required when brokers are set")
	}
	return nil
}
