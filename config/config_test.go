package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
http:
  address: ":8081"
kafka:
  brokers: ["kafka:9092"]
  reservation_topic: "reservations"
flights:
  - id: FL100
    origin: New York
    destination: London
    rows: 10
    columns: 6
  - id: FL300
    origin: Paris
    destination: Berlin
    rows: 8
    columns: 4
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "airreservation-worker", cfg.Kafka.GroupID)
	assert.Equal(t, 8, cfg.Reservation.AutoSeatAttempts)
	assert.Equal(t, 32, cfg.Reservation.PNRAttempts)
	assert.Equal(t, 60, cfg.Reservation.ConsistencyAudit)
	require.Len(t, cfg.Flights, 2)
	assert.Equal(t, "FL100", cfg.Flights[0].ID)
	assert.Equal(t, "London", cfg.Flights[0].Destination)
	assert.Equal(t, 4, cfg.Flights[1].Columns)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		yaml        string
		expectedErr string
	}{
		{"no flights", "http: {address: ':1'}", "at least one flight"},
		{"duplicate id", "flights: [{id: A, rows: 1, columns: 1}, {id: A, rows: 1, columns: 1}]", "duplicate id"},
		{"zero rows", "flights: [{id: A, rows: 0, columns: 1}]", "rows must be positive"},
		{"too many columns", "flights: [{id: A, rows: 1, columns: 27}]", "columns must be within"},
		{"missing id", "flights: [{rows: 1, columns: 1}]", "id is required"},
		{"kafka without topic", "kafka: {brokers: [\"k:9092\"]}\nflights: [{id: A, rows: 1, columns: 1}]", "reservation_topic"},
		{"bad yaml", "flights: [", "failed to parse config"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tc.expectedErr)
		})
	}
}
