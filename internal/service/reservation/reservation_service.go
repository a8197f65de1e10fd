package reservation

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"github.com/syrec53/AeroplaneReservation/internal/inventory"
	"github.com/syrec53/AeroplaneReservation/internal/kafka"
)

// AutoSeat requests the first available seat instead of a specific label.
const AutoSeat = "AUTO"

const defaultAutoSeatAttempts = 8

type ReservationUseCase interface {
	BookSeat(ctx context.Context, input BookSeatInput) (*domain.Reservation, error)
	CancelBooking(ctx context.Context, pnr string) (*domain.Reservation, error)
	ViewReservation(ctx context.Context, pnr string) (*domain.Reservation, error)
	CheckConsistency(ctx context.Context, flightID string) error
}

type Catalog interface {
	Get(id string) (*inventory.Flight, bool)
}

type Ledger interface {
	Issue(flightID, passengerName, seat string) (domain.Reservation, error)
	Lookup(pnr string) (domain.Reservation, error)
	Claim(pnr string) (domain.Reservation, error)
	Release(pnr string)
	Remove(pnr string) error
	ListByFlight(flightID string) []domain.Reservation
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// FlightsCache is the part of the flight summary cache that goes stale when seats change.
type FlightsCache interface {
	InvalidateFlights(ctx context.Context) error
}

type ReservationService struct {
	catalog            Catalog
	ledger             Ledger
	cache              FlightsCache
	producer           Producer
	reservationTopic   string
	notificationsTopic string
	autoSeatAttempts   int

	// gates maps a flight id to a *sync.RWMutex. A booking holds it shared from
	// the seat flip to the ledger write, a cancellation from the seat release to
	// the ledger removal. CheckConsistency holds it exclusively.
	gates sync.Map
}

type BookSeatInput struct {
	FlightID      string `json:"flight_id"`
	Seat          string `json:"seat"`
	PassengerName string `json:"passenger_name"`
}

type ReservationServiceOption func(*ReservationService)

func WithProducer(producer Producer, reservationTopic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.producer = producer
		s.reservationTopic = reservationTopic
	}
}

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func WithCache(cache FlightsCache) ReservationServiceOption {
	return func(s *ReservationService) {
		s.cache = cache
	}
}

// WithAutoSeatAttempts bounds how often AUTO selection retries after losing a seat race.
func WithAutoSeatAttempts(n int) ReservationServiceOption {
	return func(s *ReservationService) {
		if n > 0 {
			s.autoSeatAttempts = n
		}
	}
}

func NewReservationService(catalog Catalog, ledger Ledger, opts ...ReservationServiceOption) *ReservationService {
	service := &ReservationService{
		catalog:          catalog,
		ledger:           ledger,
		autoSeatAttempts: defaultAutoSeatAttempts,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ReservationService) BookSeat(ctx context.Context, input BookSeatInput) (*domain.Reservation, error) {
	flightID := strings.TrimSpace(input.FlightID)
	flight, ok := s.catalog.Get(flightID)
	if !ok {
		return nil, domain.WithID(domain.ErrFlightNotFound, flightID)
	}

	name := strings.TrimSpace(input.PassengerName)
	if name == "" {
		return nil, domain.WithID(domain.ErrPassengerNameRequired, flightID)
	}

	gate := s.gate(flight.ID())
	gate.RLock()
	r, err := s.bookAndRecord(flight, name, strings.ToUpper(strings.TrimSpace(input.Seat)))
	gate.RUnlock()
	if err != nil {
		return nil, err
	}

	s.afterChange(ctx, kafka.EventReservationBooked, r)
	return &r, nil
}

func (s *ReservationService) bookAndRecord(flight *inventory.Flight, name, seat string) (domain.Reservation, error) {
	var (
		label string
		err   error
	)
	if seat == AutoSeat {
		label, err = s.bookFirstAvailable(flight)
	} else {
		label, err = s.bookLabel(flight, seat)
	}
	if err != nil {
		return domain.Reservation{}, err
	}

	r, err := s.ledger.Issue(flight.ID(), name, label)
	if err != nil {
		s.rollbackSeat(flight, label)
		return domain.Reservation{}, fmt.Errorf("record reservation for %s %s: %w", flight.ID(), label, err)
	}
	return r, nil
}

func (s *ReservationService) gate(flightID string) *sync.RWMutex {
	if g, ok := s.gates.Load(flightID); ok {
		return g.(*sync.RWMutex)
	}
	g, _ := s.gates.LoadOrStore(flightID, new(sync.RWMutex))
	return g.(*sync.RWMutex)
}

func (s *ReservationService) bookLabel(flight *inventory.Flight, label string) (string, error) {
	row, col, err := flight.ParseSeatLabel(label)
	if err != nil {
		return "", err
	}
	booked, err := flight.Book(row, col)
	if err != nil {
		return "", err
	}
	if !booked {
		return "", domain.WithID(domain.ErrSeatUnavailable, label)
	}
	return flight.SeatLabel(row, col), nil
}

// bookFirstAvailable treats the head of the availability snapshot as a candidate
// only; a lost race re-reads the snapshot.
func (s *ReservationService) bookFirstAvailable(flight *inventory.Flight) (string, error) {
	for attempt := 0; attempt < s.autoSeatAttempts; attempt++ {
		available := flight.AvailableSeats()
		if len(available) == 0 {
			return "", domain.WithID(domain.ErrNoSeatsAvailable, flight.ID())
		}
		candidate := available[0]
		booked, err := flight.BookAt(candidate)
		if err != nil {
			return "", err
		}
		if booked {
			return candidate, nil
		}
	}
	return "", domain.WithID(domain.ErrSeatUnavailable, flight.ID())
}

func (s *ReservationService) rollbackSeat(flight *inventory.Flight, label string) {
	freed, err := flight.CancelAt(label)
	if err != nil || !freed {
		log.Printf("ERROR: rollback of seat %s on flight %s failed (freed=%v): %v", label, flight.ID(), freed, err)
	}
}

func (s *ReservationService) CancelBooking(ctx context.Context, pnr string) (*domain.Reservation, error) {
	r, err := s.ledger.Claim(pnr)
	if err != nil {
		return nil, err
	}

	flight, ok := s.catalog.Get(r.FlightID)
	if !ok {
		s.ledger.Release(r.PNR)
		log.Printf("ERROR: reservation %s references unknown flight %s", r.PNR, r.FlightID)
		return nil, domain.WithID(domain.ErrFlightDataCorruption, r.PNR)
	}

	gate := s.gate(flight.ID())
	gate.RLock()
	err = s.releaseAndRemove(flight, r)
	gate.RUnlock()
	if err != nil {
		return nil, err
	}

	s.afterChange(ctx, kafka.EventReservationCancelled, r)
	return &r, nil
}

// releaseAndRemove frees the reserved seat, then drops the ledger entry. The claim
// is released on every failure path.
func (s *ReservationService) releaseAndRemove(flight *inventory.Flight, r domain.Reservation) error {
	row, col, err := flight.ParseSeatLabel(r.Seat)
	if err != nil {
		s.ledger.Release(r.PNR)
		log.Printf("ERROR: reservation %s holds unparsable seat %q: %v", r.PNR, r.Seat, err)
		return domain.WithID(domain.ErrCorruptSeatLabel, r.PNR)
	}

	freed, err := flight.Cancel(row, col)
	if err != nil {
		s.ledger.Release(r.PNR)
		return err
	}
	if !freed {
		s.ledger.Release(r.PNR)
		log.Printf("ERROR: reservation %s found seat %s on flight %s already free", r.PNR, r.Seat, r.FlightID)
		return domain.WithID(domain.ErrSeatAlreadyFree, r.Seat)
	}

	// The seat is free before the ledger entry goes away, never the other way round.
	if err := s.ledger.Remove(r.PNR); err != nil {
		log.Printf("ERROR: seat %s on flight %s released but reservation %s could not be removed: %v", r.Seat, r.FlightID, r.PNR, err)
		return domain.WithID(fmt.Errorf("%w: remove after seat release: %v", domain.ErrInvariantViolation, err), r.PNR)
	}

	return nil
}

func (s *ReservationService) ViewReservation(ctx context.Context, pnr string) (*domain.Reservation, error) {
	r, err := s.ledger.Lookup(pnr)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CheckConsistency compares the flight's booked seats with its active
// reservations. Both are read while no booking or cancellation of the flight is
// between its seat change and its ledger change, so any difference is real.
func (s *ReservationService) CheckConsistency(ctx context.Context, flightID string) error {
	flight, ok := s.catalog.Get(flightID)
	if !ok {
		return domain.WithID(domain.ErrFlightNotFound, flightID)
	}

	gate := s.gate(flightID)
	gate.Lock()
	bookedSeats := flight.BookedSeats()
	reservations := s.ledger.ListByFlight(flightID)
	gate.Unlock()

	booked := make(map[string]bool, len(bookedSeats))
	for _, label := range bookedSeats {
		booked[label] = true
	}

	var duplicated, unbacked []string
	reserved := make(map[string]bool, len(reservations))
	for _, r := range reservations {
		if reserved[r.Seat] {
			duplicated = append(duplicated, r.Seat)
		}
		reserved[r.Seat] = true
	}
	for label := range reserved {
		if !booked[label] {
			unbacked = append(unbacked, label)
		}
	}
	var orphaned []string
	for label := range booked {
		if !reserved[label] {
			orphaned = append(orphaned, label)
		}
	}

	if len(duplicated) == 0 && len(unbacked) == 0 && len(orphaned) == 0 {
		return nil
	}
	sort.Strings(unbacked)
	sort.Strings(orphaned)
	log.Printf("ERROR: flight %s diverged: orphaned=%v unbacked=%v duplicated=%v", flightID, orphaned, unbacked, duplicated)
	return domain.WithID(fmt.Errorf("%w: booked without reservation %v, reserved but free %v, reserved twice %v",
		domain.ErrInvariantViolation, orphaned, unbacked, duplicated), flightID)
}

func (s *ReservationService) afterChange(ctx context.Context, eventType string, r domain.Reservation) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: failed to invalidate flights cache after %s %s: %v", eventType, r.PNR, err)
		}
	}
	if err := s.publish(ctx, eventType, r); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %s: %v", eventType, r.PNR, err)
	}
}

func (s *ReservationService) publish(ctx context.Context, eventType string, r domain.Reservation) error {
	if s.producer == nil || s.reservationTopic == "" {
		return nil
	}
	event := kafka.NewReservationEvent(eventType, r)
	if err := s.producer.Publish(ctx, s.reservationTopic, r.PNR, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, r.PNR, event)
	}
	return nil
}

var _ ReservationUseCase = (*ReservationService)(nil)
