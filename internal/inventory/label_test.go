package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

func TestSeatLabel(t *testing.T) {
	assert.Equal(t, "1A", SeatLabel(0, 0))
	assert.Equal(t, "3C", SeatLabel(2, 2))
	assert.Equal(t, "10F", SeatLabel(9, 5))
	assert.Equal(t, "120Z", SeatLabel(119, 25))
}

func TestParseSeatLabel_RoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{10, 6}, {12, 6}, {8, 4}, {1, 1}, {120, 26}} {
		rows, cols := dims[0], dims[1]
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				row, col, err := ParseSeatLabel(SeatLabel(r, c), rows, cols)
				require.NoError(t, err)
				assert.Equal(t, r, row)
				assert.Equal(t, c, col)
			}
		}
	}
}

func TestParseSeatLabel_Rejects(t *testing.T) {
	testCases := []struct {
		label string
		want  error
	}{
		{"", domain.ErrInvalidSeatFormat},
		{"A", domain.ErrInvalidSeatFormat},
		{"3", domain.ErrInvalidSeatFormat},
		{"3c", domain.ErrInvalidSeatFormat},
		{"C3", domain.ErrInvalidSeatFormat},
		{"3CC", domain.ErrInvalidSeatFormat},
		{"-1A", domain.ErrInvalidSeatFormat},
		{"+1A", domain.ErrInvalidSeatFormat},
		{" 1A", domain.ErrInvalidSeatFormat},
		{"03C", domain.ErrInvalidSeatFormat},
		{"1.5A", domain.ErrInvalidSeatFormat},
		{"3!", domain.ErrInvalidSeatFormat},
		{"0A", domain.ErrInvalidSeatRange},
		{"11A", domain.ErrInvalidSeatRange},
		{"99Z", domain.ErrInvalidSeatRange},
		{"3G", domain.ErrInvalidSeatRange},
		{"3Z", domain.ErrInvalidSeatRange},
		{"99999999999999999999999A", domain.ErrInvalidSeatRange},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			_, _, err := ParseSeatLabel(tc.label, 10, 6)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, domain.ErrInvalidSeat)
			assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
			assert.Equal(t, tc.label, domain.IDOf(err))
		})
	}
}
