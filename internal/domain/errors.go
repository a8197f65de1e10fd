package domain

import (
	"errors"
	"fmt"
)

// Kind groups domain errors by how callers should react to them.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidInput
	KindConflict
	KindExhausted
	KindInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	case KindExhausted:
		return "exhausted"
	case KindInvariantViolation:
		return "invariant_violation"
	default:
		return "unknown"
	}
}

var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrReservationNotFound = errors.New("reservation not found")

	ErrInvalidSeat           = errors.New("invalid seat")
	ErrInvalidSeatFormat     = fmt.Errorf("%w: malformed label", ErrInvalidSeat)
	ErrInvalidSeatRange      = fmt.Errorf("%w: out of range", ErrInvalidSeat)
	ErrSeatOutOfRange        = errors.New("seat coordinates out of range")
	ErrPassengerNameRequired = errors.New("passenger name is required")
	ErrInvalidFlightSpec     = errors.New("invalid flight spec")

	ErrSeatUnavailable        = errors.New("seat unavailable")
	ErrSeatAlreadyFree        = errors.New("seat already free")
	ErrDuplicatePNR           = errors.New("duplicate pnr")
	ErrCancellationInProgress = errors.New("cancellation already in progress")

	ErrNoSeatsAvailable  = errors.New("no seats available")
	ErrPNRSpaceExhausted = errors.New("could not issue a unique pnr")

	ErrInvariantViolation   = errors.New("invariant violation")
	ErrFlightDataCorruption = fmt.Errorf("%w: reservation references unknown flight", ErrInvariantViolation)
	ErrCorruptSeatLabel     = fmt.Errorf("%w: reservation holds unparsable seat", ErrInvariantViolation)
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrFlightNotFound, KindNotFound},
	{ErrReservationNotFound, KindNotFound},
	{ErrInvalidSeat, KindInvalidInput},
	{ErrSeatOutOfRange, KindInvalidInput},
	{ErrPassengerNameRequired, KindInvalidInput},
	{ErrInvalidFlightSpec, KindInvalidInput},
	{ErrSeatUnavailable, KindConflict},
	{ErrSeatAlreadyFree, KindConflict},
	{ErrDuplicatePNR, KindConflict},
	{ErrCancellationInProgress, KindConflict},
	{ErrNoSeatsAvailable, KindExhausted},
	{ErrPNRSpaceExhausted, KindExhausted},
	{ErrInvariantViolation, KindInvariantViolation},
}

// Error attaches the offending identifier (flight id, PNR or seat label) to a
// sentinel error.
type Error struct {
	Err error
	ID  string
}

// WithID wraps err with the identifier that caused it.
func WithID(err error, id string) *Error {
	return &Error{Err: err, ID: id}
}

func (e *Error) Error() string {
	if e.ID == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.ID)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classifies err. Invariant violations win over every other kind.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrInvariantViolation) {
		return KindInvariantViolation
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// IDOf returns the identifier attached to err, if any.
func IDOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.ID
	}
	return ""
}
