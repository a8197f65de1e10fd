package ledger

import (
	"fmt"
	"io"
)

// PNRAlphabet omits I, O, 0 and 1. Its 32 symbols divide 256, so masking a
// random byte picks each symbol with equal probability.
const PNRAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const PNRLength = 6

func generatePNR(r io.Reader) (string, error) {
	buf := make([]byte, PNRLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read pnr entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = PNRAlphabet[int(b)%len(PNRAlphabet)]
	}
	return string(buf), nil
}
