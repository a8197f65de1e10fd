package inventory

import (
	"errors"
	"strconv"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

// SeatLabel encodes zero-based coordinates as "<row+1><letter>", e.g. (2, 2) -> "3C".
func SeatLabel(row, col int) string {
	return strconv.Itoa(row+1) + string(rune('A'+col))
}

// ParseSeatLabel decodes a label for a rows x cols grid. Labels that are not
// "<digits><A-Z>" fail with ErrInvalidSeatFormat; well-formed labels outside the
// grid fail with ErrInvalidSeatRange.
func ParseSeatLabel(label string, rows, cols int) (int, int, error) {
	if len(label) < 2 {
		return 0, 0, domain.WithID(domain.ErrInvalidSeatFormat, label)
	}

	letter := label[len(label)-1]
	if letter < 'A' || letter > 'Z' {
		return 0, 0, domain.WithID(domain.ErrInvalidSeatFormat, label)
	}

	digits := label[:len(label)-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, 0, domain.WithID(domain.ErrInvalidSeatFormat, label)
		}
	}
	// "03C" would alias "3C".
	if len(digits) > 1 && digits[0] == '0' {
		return 0, 0, domain.WithID(domain.ErrInvalidSeatFormat, label)
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, 0, domain.WithID(domain.ErrInvalidSeatRange, label)
		}
		return 0, 0, domain.WithID(domain.ErrInvalidSeatFormat, label)
	}

	row, col := n-1, int(letter-'A')
	if row < 0 || row >= rows || col >= cols {
		return 0, 0, domain.WithID(domain.ErrInvalidSeatRange, label)
	}
	return row, col, nil
}
