package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syrec53/AeroplaneReservation/internal/kafka"
)

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSenderTo(&buf)

	err := sender.Send(context.Background(), kafka.ReservationEvent{
		ID: "e1", Type: "reservation_booked", PNR: "ABC234", FlightID: "FL100", PassengerName: "Ada Lovelace", Seat: "3C",
	})
	require.NoError(t, err)
	assert.Equal(t, "notify Ada Lovelace: seat 3C on flight FL100 is confirmed, PNR ABC234\n", buf.String())

	buf.Reset()
	err = sender.Send(context.Background(), kafka.ReservationEvent{
		ID: "e2", Type: "reservation_cancelled", PNR: "ABC234", FlightID: "FL100", PassengerName: "Ada Lovelace", Seat: "3C",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reservation ABC234 for seat 3C on flight FL100 was cancelled")
}

func TestSender_SkipsUnknownEvents(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSenderTo(&buf)

	err := sender.Send(context.Background(), kafka.ReservationEvent{ID: "e3", Type: "booking_expired"})
	assert.NoError(t, err)
	assert.Empty(t, buf.String())
}
