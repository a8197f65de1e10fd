package inventory

import (
	"fmt"
	"strings"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

// Flight is a catalog flight and the seat grid it owns.
type Flight struct {
	id          string
	origin      string
	destination string
	grid        *SeatGrid
}

func NewFlight(spec domain.FlightSpec) (*Flight, error) {
	if err := ValidateSpec(spec); err != nil {
		return nil, err
	}
	return &Flight{
		id:          spec.ID,
		origin:      spec.Origin,
		destination: spec.Destination,
		grid:        NewSeatGrid(spec.Rows, spec.Columns),
	}, nil
}

// ValidateSpec checks the dimensions and identity of a catalog entry.
func ValidateSpec(spec domain.FlightSpec) error {
	switch {
	case strings.TrimSpace(spec.ID) == "":
		return domain.WithID(fmt.Errorf("%w: empty id", domain.ErrInvalidFlightSpec), spec.ID)
	case spec.Rows <= 0:
		return domain.WithID(fmt.Errorf("%w: rows must be positive", domain.ErrInvalidFlightSpec), spec.ID)
	case spec.Columns <= 0 || spec.Columns > domain.MaxColumns:
		return domain.WithID(fmt.Errorf("%w: columns must be within 1..%d", domain.ErrInvalidFlightSpec, domain.MaxColumns), spec.ID)
	}
	return nil
}

func (f *Flight) ID() string          { return f.id }
func (f *Flight) Origin() string      { return f.origin }
func (f *Flight) Destination() string { return f.destination }
func (f *Flight) Rows() int           { return f.grid.Rows() }
func (f *Flight) Cols() int           { return f.grid.Cols() }

func (f *Flight) SeatLabel(row, col int) string {
	return SeatLabel(row, col)
}

func (f *Flight) ParseSeatLabel(label string) (int, int, error) {
	return ParseSeatLabel(label, f.grid.Rows(), f.grid.Cols())
}

func (f *Flight) IsBooked(row, col int) (bool, error) { return f.grid.IsBooked(row, col) }
func (f *Flight) Book(row, col int) (bool, error)     { return f.grid.Book(row, col) }
func (f *Flight) Cancel(row, col int) (bool, error)   { return f.grid.Cancel(row, col) }
func (f *Flight) AvailableSeats() []string            { return f.grid.AvailableSeats() }
func (f *Flight) BookedSeats() []string               { return f.grid.BookedSeats() }

func (f *Flight) IsBookedAt(label string) (bool, error) {
	row, col, err := f.ParseSeatLabel(label)
	if err != nil {
		return false, err
	}
	return f.grid.IsBooked(row, col)
}

func (f *Flight) BookAt(label string) (bool, error) {
	row, col, err := f.ParseSeatLabel(label)
	if err != nil {
		return false, err
	}
	return f.grid.Book(row, col)
}

func (f *Flight) CancelAt(label string) (bool, error) {
	row, col, err := f.ParseSeatLabel(label)
	if err != nil {
		return false, err
	}
	return f.grid.Cancel(row, col)
}

func (f *Flight) Summary() domain.Flight {
	return domain.Flight{
		ID:             f.id,
		Origin:         f.origin,
		Destination:    f.destination,
		Rows:           f.grid.Rows(),
		Columns:        f.grid.Cols(),
		TotalSeats:     f.grid.Rows() * f.grid.Cols(),
		AvailableSeats: f.grid.Available(),
	}
}

func (f *Flight) SeatMap() domain.SeatMap {
	m := domain.SeatMap{FlightID: f.id, Rows: make([][]domain.SeatState, f.grid.Rows())}
	for r := range m.Rows {
		row := make([]domain.SeatState, f.grid.Cols())
		for c := range row {
			booked, _ := f.grid.IsBooked(r, c)
			row[c] = domain.SeatState{Label: SeatLabel(r, c), Booked: booked}
		}
		m.Rows[r] = row
	}
	return m
}

func (f *Flight) String() string {
	return fmt.Sprintf("%s: %s -> %s (%dx%d)", f.id, f.origin, f.destination, f.grid.Rows(), f.grid.Cols())
}
