package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

// stubRedis answers GET/SET/DEL/PING from a map inside a client hook, so no
// command ever reaches the network.
type stubRedis struct {
	mu   sync.Mutex
	data map[string]string
	args map[string][]interface{}
	err  error
}

func newStubClient(t *testing.T) (*redis.Client, *stubRedis) {
	t.Helper()
	stub := &stubRedis{data: make(map[string]string), args: make(map[string][]interface{})}
	client := redis.NewClient(&redis.Options{Addr: "stub:6379"})
	client.AddHook(stub)
	t.Cleanup(func() { _ = client.Close() })
	return client, stub
}

func (s *stubRedis) DialHook(next redis.DialHook) redis.DialHook { return next }

func (s *stubRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (s *stubRedis) ProcessHook(_ redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.err != nil {
			cmd.SetErr(s.err)
			return s.err
		}

		args := cmd.Args()
		s.args[cmd.Name()] = args
		switch cmd.Name() {
		case "get":
			v, ok := s.data[fmt.Sprint(args[1])]
			if !ok {
				cmd.SetErr(redis.Nil)
				return redis.Nil
			}
			cmd.(*redis.StringCmd).SetVal(v)
		case "set":
			switch v := args[2].(type) {
			case []byte:
				s.data[fmt.Sprint(args[1])] = string(v)
			default:
				s.data[fmt.Sprint(args[1])] = fmt.Sprint(v)
			}
			cmd.(*redis.StatusCmd).SetVal("OK")
		case "del":
			var n int64
			for _, k := range args[1:] {
				if _, ok := s.data[fmt.Sprint(k)]; ok {
					delete(s.data, fmt.Sprint(k))
					n++
				}
			}
			cmd.(*redis.IntCmd).SetVal(n)
		case "ping":
			cmd.(*redis.StatusCmd).SetVal("PONG")
		default:
			err := fmt.Errorf("stub: unsupported command %q", cmd.Name())
			cmd.SetErr(err)
			return err
		}
		return nil
	}
}

func TestFlightsKey(t *testing.T) {
	assert.Equal(t, "airreservation:cache:flights", flightsKey(""))
	assert.Equal(t, "staging:cache:flights", flightsKey("staging"))
}

func TestRedisCache_SetGetInvalidate(t *testing.T) {
	client, stub := newStubClient(t)
	c := NewRedisCacheWithClient(client, 30*time.Second, "test")
	ctx := context.Background()

	flights, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Nil(t, flights)

	want := []domain.Flight{
		{ID: "FL100", Origin: "New York", Destination: "London", Rows: 10, Columns: 6, TotalSeats: 60},
		{ID: "FL300", Origin: "Paris", Destination: "Berlin", Rows: 8, Columns: 4, TotalSeats: 32},
	}
	require.NoError(t, c.SetFlights(ctx, want))
	assert.Contains(t, stub.data, "test:cache:flights")
	assert.Equal(t, []interface{}{"ex", int64(30)}, stub.args["set"][3:])

	got, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, c.InvalidateFlights(ctx))
	assert.NotContains(t, stub.data, "test:cache:flights")

	got, err = c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_GetFlights_CorruptPayload(t *testing.T) {
	client, stub := newStubClient(t)
	c := NewRedisCacheWithClient(client, time.Minute, "")
	stub.data["airreservation:cache:flights"] = "{not json"

	flights, err := c.GetFlights(context.Background())
	assert.Error(t, err)
	assert.Nil(t, flights)
}

func TestRedisCache_Errors(t *testing.T) {
	client, stub := newStubClient(t)
	c := NewRedisCacheWithClient(client, time.Minute, "")
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	stub.err = errors.New("connection refused")

	_, err := c.GetFlights(ctx)
	assert.ErrorIs(t, err, stub.err)
	assert.ErrorIs(t, c.SetFlights(ctx, nil), stub.err)
	assert.ErrorIs(t, c.InvalidateFlights(ctx), stub.err)
	assert.ErrorIs(t, c.Ping(ctx), stub.err)
}
