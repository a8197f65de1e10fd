package flights

import (
	"context"
	"log"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"github.com/syrec53/AeroplaneReservation/internal/inventory"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	SeatMap(ctx context.Context, id string) (*domain.SeatMap, error)
	AvailableSeats(ctx context.Context, id string) ([]string, error)
	IsBookedAt(ctx context.Context, id, label string) (bool, error)
}

type Catalog interface {
	Get(id string) (*inventory.Flight, bool)
	List() []*inventory.Flight
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	catalog Catalog
	cache   FlightCache
}

// NewFlightService accepts a nil cache; listings are then always computed from the grid.
func NewFlightService(catalog Catalog, cache FlightCache) *FlightService {
	return &FlightService{catalog: catalog, cache: cache}
}

// List returns flight summaries in catalog order. The cache holds only the
// static part of each summary; AvailableSeats always comes from the grid, so a
// listing written back after a concurrent invalidation never serves stale counts.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			if flights, ok := s.withAvailability(cached); ok {
				return flights, nil
			}
		}
	}

	catalog := s.catalog.List()
	flights := make([]domain.Flight, 0, len(catalog))
	for _, f := range catalog {
		flights = append(flights, f.Summary())
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, withoutAvailability(flights)); err != nil {
			log.Printf("WARNING: failed to cache flights: %v", err)
		}
	}
	return flights, nil
}

// withAvailability fills live seat counts into cached summaries. A cached flight
// missing from the catalog invalidates the whole entry.
func (s *FlightService) withAvailability(cached []domain.Flight) ([]domain.Flight, bool) {
	flights := make([]domain.Flight, len(cached))
	for i, f := range cached {
		live, ok := s.catalog.Get(f.ID)
		if !ok {
			return nil, false
		}
		f.AvailableSeats = live.Summary().AvailableSeats
		flights[i] = f
	}
	return flights, true
}

func withoutAvailability(flights []domain.Flight) []domain.Flight {
	out := make([]domain.Flight, len(flights))
	for i, f := range flights {
		f.AvailableSeats = 0
		out[i] = f
	}
	return out
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	f, err := s.flight(id)
	if err != nil {
		return nil, err
	}
	summary := f.Summary()
	return &summary, nil
}

func (s *FlightService) SeatMap(ctx context.Context, id string) (*domain.SeatMap, error) {
	f, err := s.flight(id)
	if err != nil {
		return nil, err
	}
	m := f.SeatMap()
	return &m, nil
}

func (s *FlightService) AvailableSeats(ctx context.Context, id string) ([]string, error) {
	f, err := s.flight(id)
	if err != nil {
		return nil, err
	}
	return f.AvailableSeats(), nil
}

func (s *FlightService) IsBookedAt(ctx context.Context, id, label string) (bool, error) {
	f, err := s.flight(id)
	if err != nil {
		return false, err
	}
	return f.IsBookedAt(label)
}

func (s *FlightService) flight(id string) (*inventory.Flight, error) {
	f, ok := s.catalog.Get(id)
	if !ok {
		return nil, domain.WithID(domain.ErrFlightNotFound, id)
	}
	return f, nil
}

var _ FlightUseCase = (*FlightService)(nil)
