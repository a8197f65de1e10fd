package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/syrec53/AeroplaneReservation/config"
	"github.com/syrec53/AeroplaneReservation/internal/bootstrap"
	"github.com/syrec53/AeroplaneReservation/internal/cache"
	"github.com/syrec53/AeroplaneReservation/internal/inventory"
	"github.com/syrec53/AeroplaneReservation/internal/kafka"
	"github.com/syrec53/AeroplaneReservation/internal/ledger"
	"github.com/syrec53/AeroplaneReservation/internal/service/flights"
	"github.com/syrec53/AeroplaneReservation/internal/service/reservation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := inventory.NewCatalog(cfg.Flights)
	if err != nil {
		log.Fatalf("build flight catalog: %v", err)
	}
	reservations := ledger.New(ledger.WithPNRAttempts(cfg.Reservation.PNRAttempts))

	var flightCache flights.FlightCache
	opts := []reservation.ReservationServiceOption{
		reservation.WithAutoSeatAttempts(cfg.Reservation.AutoSeatAttempts),
	}

	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Reservation.FlightsCacheTTL)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("WARNING: redis unavailable, flight listings are served uncached until it recovers: %v", err)
		}
		flightCache = redisCache
		opts = append(opts, reservation.WithCache(redisCache))
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka unavailable, reservation events may be dropped: %v", err)
		}
		opts = append(opts,
			reservation.WithProducer(producer, cfg.Kafka.ReservationTopic),
			reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	flightService := flights.NewFlightService(catalog, flightCache)
	reservationService := reservation.NewReservationService(catalog, reservations, opts...)

	if cfg.Reservation.ConsistencyAudit > 0 {
		go auditConsistency(ctx, catalog, reservationService, time.Duration(cfg.Reservation.ConsistencyAudit)*time.Second)
	}

	log.Printf("serving %d flights", len(catalog.List()))
	if err := bootstrap.Run(ctx, cfg, flightService, reservationService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// auditConsistency reports any flight whose booked seats diverge from its reservations.
func auditConsistency(ctx context.Context, catalog *inventory.Catalog, svc reservation.ReservationUseCase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, f := range catalog.List() {
				if err := svc.CheckConsistency(ctx, f.ID()); err != nil {
					log.Printf("ERROR: consistency audit: %v", err)
				}
			}
		case <-ctx.Done():
			return
		}
	}
}
