package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/syrec53/AeroplaneReservation/internal/kafka"
)

// Sender delivers passenger notices. Delivery is a formatted line on the
// configured writer; there is no mail gateway.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	msg, err := Message(event)
	if err != nil {
		log.Printf("skip notification %s: %v", event.ID, err)
		return nil
	}
	_, err = fmt.Fprintln(s.out, msg)
	return err
}

// Message renders the notice for a reservation event.
func Message(event kafka.ReservationEvent) (string, error) {
	switch event.Type {
	case kafka.EventReservationBooked:
		return fmt.Sprintf("notify %s: seat %s on flight %s is confirmed, PNR %s",
			event.PassengerName, event.Seat, event.FlightID, event.PNR), nil
	case kafka.EventReservationCancelled:
		return fmt.Sprintf("notify %s: reservation %s for seat %s on flight %s was cancelled",
			event.PassengerName, event.PNR, event.Seat, event.FlightID), nil
	default:
		return "", fmt.Errorf("unknown event type %q", event.Type)
	}
}
