package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/syrec53/AeroplaneReservation/config"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

// RedisCache keeps the flight summary list for listing endpoints. Seat state
// itself never lives here.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	prefix     string
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL,
		cfg.KeyPrefix,
	)
}

func NewRedisCacheWithClient(client *redis.Client, flightsTTL time.Duration, prefix string) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL, prefix: prefix}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey(c.prefix)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(c.prefix), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey(c.prefix)).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func flightsKey(prefix string) string {
	if prefix == "" {
		prefix = "airreservation"
	}
	return prefix + ":cache:flights"
}
