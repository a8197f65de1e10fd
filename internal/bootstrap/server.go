package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/syrec53/AeroplaneReservation/api"
	"github.com/syrec53/AeroplaneReservation/config"
	flightsapi "github.com/syrec53/AeroplaneReservation/internal/api/flights_service_api"
	reservationsapi "github.com/syrec53/AeroplaneReservation/internal/api/reservations_service_api"
	"github.com/syrec53/AeroplaneReservation/internal/service/flights"
	"github.com/syrec53/AeroplaneReservation/internal/service/reservation"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the gRPC and HTTP (gin + swagger) servers and blocks until ctx is
// canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, reservationSvc reservation.ReservationUseCase) error {
	s := NewServers(cfg, flightSvc, reservationSvc)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	return s.Serve(ctx, lis)
}

func NewServers(cfg *config.Config, flightSvc flights.FlightUseCase, reservationSvc reservation.ReservationUseCase) *Servers {
	grpcSrv := grpc.NewServer()
	flightsapi.Register(grpcSrv, flightsapi.NewServer(flightSvc))
	reservationsapi.Register(grpcSrv, reservationsapi.NewServer(reservationSvc))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           api.NewRouter(cfg, flightSvc, reservationSvc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: httpSrv,
	}
}

// Serve runs gRPC on lis and HTTP on the configured address until ctx is done.
func (s *Servers) Serve(ctx context.Context, lis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("gRPC listening on %s", lis.Addr())
		return s.grpcServer.Serve(lis)
	})

	g.Go(func() error {
		log.Printf("HTTP listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
