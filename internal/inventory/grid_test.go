package inventory

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

func TestSeatGrid_BookCancel(t *testing.T) {
	g := NewSeatGrid(3, 2)

	booked, err := g.IsBooked(1, 1)
	require.NoError(t, err)
	assert.False(t, booked)

	ok, err := g.Book(1, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	booked, _ = g.IsBooked(1, 1)
	assert.True(t, booked)
	assert.Equal(t, 5, g.Available())

	ok, err = g.Book(1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "second book must not succeed")

	ok, err = g.Cancel(1, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	booked, _ = g.IsBooked(1, 1)
	assert.False(t, booked)
	assert.Equal(t, 6, g.Available())

	ok, err = g.Cancel(1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "cancel of a free seat must not succeed")
}

func TestSeatGrid_OutOfRange(t *testing.T) {
	g := NewSeatGrid(3, 2)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, err := g.IsBooked(rc[0], rc[1])
		assert.ErrorIs(t, err, domain.ErrSeatOutOfRange)
		_, err = g.Book(rc[0], rc[1])
		assert.ErrorIs(t, err, domain.ErrSeatOutOfRange)
		_, err = g.Cancel(rc[0], rc[1])
		assert.ErrorIs(t, err, domain.ErrSeatOutOfRange)
	}
	assert.Equal(t, 6, g.Available())
}

func TestSeatGrid_AvailableSeatsRowMajor(t *testing.T) {
	g := NewSeatGrid(2, 3)
	_, _ = g.Book(0, 0)
	_, _ = g.Book(1, 1)

	assert.Equal(t, []string{"1B", "1C", "2A", "2C"}, g.AvailableSeats())
	assert.Equal(t, []string{"1A", "2B"}, g.BookedSeats())
}

func TestSeatGrid_ConcurrentBookSameSeat(t *testing.T) {
	g := NewSeatGrid(10, 6)
	const n = 64

	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ok, err := g.Book(2, 2)
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 59, g.Available())
}

func TestSeatGrid_ConcurrentBookCancelCounts(t *testing.T) {
	g := NewSeatGrid(4, 4)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				r, c := (w+i)%4, i%4
				if ok, _ := g.Book(r, c); ok {
					_, _ = g.Cancel(r, c)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 16, g.Available())
	assert.Empty(t, g.BookedSeats())
}
