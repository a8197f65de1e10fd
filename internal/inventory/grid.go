package inventory

import (
	"fmt"
	"sync/atomic"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

// SeatGrid holds booked/free state for a rows x cols cabin. Every seat is an
// independent atomic flag, so Book and Cancel on the same seat are linearizable
// without a grid-wide lock.
type SeatGrid struct {
	rows, cols int
	seats      []atomic.Bool
	booked     atomic.Int64
}

func NewSeatGrid(rows, cols int) *SeatGrid {
	return &SeatGrid{
		rows:  rows,
		cols:  cols,
		seats: make([]atomic.Bool, rows*cols),
	}
}

func (g *SeatGrid) Rows() int { return g.rows }
func (g *SeatGrid) Cols() int { return g.cols }

func (g *SeatGrid) seat(row, col int) (*atomic.Bool, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil, domain.WithID(domain.ErrSeatOutOfRange, fmt.Sprintf("%d,%d", row, col))
	}
	return &g.seats[row*g.cols+col], nil
}

func (g *SeatGrid) IsBooked(row, col int) (bool, error) {
	s, err := g.seat(row, col)
	if err != nil {
		return false, err
	}
	return s.Load(), nil
}

// Book flips the seat free->booked. It reports false, without mutating, when the
// seat is already booked.
func (g *SeatGrid) Book(row, col int) (bool, error) {
	s, err := g.seat(row, col)
	if err != nil {
		return false, err
	}
	if !s.CompareAndSwap(false, true) {
		return false, nil
	}
	g.booked.Add(1)
	return true, nil
}

// Cancel flips the seat booked->free. It reports false when the seat is already free.
func (g *SeatGrid) Cancel(row, col int) (bool, error) {
	s, err := g.seat(row, col)
	if err != nil {
		return false, err
	}
	if !s.CompareAndSwap(true, false) {
		return false, nil
	}
	g.booked.Add(-1)
	return true, nil
}

// AvailableSeats returns free seat labels in row-major order. The result is a
// snapshot and may be stale by the time the caller acts on it.
func (g *SeatGrid) AvailableSeats() []string {
	return g.collect(false)
}

// BookedSeats returns booked seat labels in row-major order.
func (g *SeatGrid) BookedSeats() []string {
	return g.collect(true)
}

func (g *SeatGrid) collect(booked bool) []string {
	out := make([]string, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.seats[r*g.cols+c].Load() == booked {
				out = append(out, SeatLabel(r, c))
			}
		}
	}
	return out
}

// Available is the number of free seats.
func (g *SeatGrid) Available() int {
	return g.rows*g.cols - int(g.booked.Load())
}
