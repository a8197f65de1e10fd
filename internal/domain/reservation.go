package domain

import "time"

type Reservation struct {
	PNR           string    `json:"pnr"`
	FlightID      string    `json:"flight_id"`
	PassengerName string    `json:"passenger_name"`
	Seat          string    `json:"seat"`
	BookedAt      time.Time `json:"booked_at"`
}
