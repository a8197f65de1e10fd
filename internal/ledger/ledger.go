package ledger

import (
	"crypto/rand"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

const defaultPNRAttempts = 32

type entry struct {
	reservation domain.Reservation
	claimed     bool
}

// Ledger owns every active reservation and is the only writer of the PNR index.
type Ledger struct {
	mu          sync.RWMutex
	entries     map[string]*entry
	random      io.Reader
	now         func() time.Time
	pnrAttempts int
}

type Option func(*Ledger)

// WithRandom sets the entropy source used for PNR generation.
func WithRandom(r io.Reader) Option {
	return func(l *Ledger) {
		if r != nil {
			l.random = r
		}
	}
}

// WithPNRAttempts bounds how many collisions IssuePNR tolerates.
func WithPNRAttempts(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.pnrAttempts = n
		}
	}
}

// WithClock overrides the time source for BookedAt.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		entries:     make(map[string]*entry),
		random:      rand.Reader,
		now:         func() time.Time { return time.Now().UTC() },
		pnrAttempts: defaultPNRAttempts,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IssuePNR returns a PNR not held by any active reservation at call time.
func (l *Ledger) IssuePNR() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.issueLocked()
}

func (l *Ledger) issueLocked() (string, error) {
	for i := 0; i < l.pnrAttempts; i++ {
		pnr, err := generatePNR(l.random)
		if err != nil {
			return "", err
		}
		if _, taken := l.entries[pnr]; !taken {
			return pnr, nil
		}
	}
	return "", domain.WithID(domain.ErrPNRSpaceExhausted, "")
}

// Record inserts r under r.PNR.
func (l *Ledger) Record(r domain.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.entries[r.PNR]; exists {
		return domain.WithID(domain.ErrDuplicatePNR, r.PNR)
	}
	l.entries[r.PNR] = &entry{reservation: r}
	return nil
}

// Issue generates a fresh PNR and records the reservation under a single lock,
// so concurrent issuers can never race on the same code.
func (l *Ledger) Issue(flightID, passengerName, seat string) (domain.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pnr, err := l.issueLocked()
	if err != nil {
		return domain.Reservation{}, err
	}
	r := domain.Reservation{
		PNR:           pnr,
		FlightID:      flightID,
		PassengerName: passengerName,
		Seat:          seat,
		BookedAt:      l.now(),
	}
	l.entries[pnr] = &entry{reservation: r}
	return r, nil
}

func normalize(pnr string) string {
	return strings.ToUpper(strings.TrimSpace(pnr))
}

func (l *Ledger) Lookup(pnr string) (domain.Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.entries[normalize(pnr)]
	if !ok {
		return domain.Reservation{}, domain.WithID(domain.ErrReservationNotFound, pnr)
	}
	return e.reservation, nil
}

func (l *Ledger) Remove(pnr string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := normalize(pnr)
	if _, ok := l.entries[key]; !ok {
		return domain.WithID(domain.ErrReservationNotFound, pnr)
	}
	delete(l.entries, key)
	return nil
}

// Claim marks the reservation as being cancelled. Only one caller can hold the
// claim; the reservation stays visible to Lookup until Remove.
func (l *Ledger) Claim(pnr string) (domain.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[normalize(pnr)]
	if !ok {
		return domain.Reservation{}, domain.WithID(domain.ErrReservationNotFound, pnr)
	}
	if e.claimed {
		return domain.Reservation{}, domain.WithID(domain.ErrCancellationInProgress, pnr)
	}
	e.claimed = true
	return e.reservation, nil
}

// Release drops a claim taken by Claim without removing the reservation.
func (l *Ledger) Release(pnr string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries[normalize(pnr)]; ok {
		e.claimed = false
	}
}

// ListByFlight returns the flight's reservations ordered by seat label.
func (l *Ledger) ListByFlight(flightID string) []domain.Reservation {
	l.mu.RLock()
	out := make([]domain.Reservation, 0)
	for _, e := range l.entries {
		if e.reservation.FlightID == flightID {
			out = append(out, e.reservation)
		}
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Seat < out[j].Seat })
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
