package grpcutil

import (
	"time"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

// String reads a string field; missing or non-string fields read as "".
func String(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func FlightValue(f domain.Flight) map[string]interface{} {
	return map[string]interface{}{
		"id":              f.ID,
		"origin":          f.Origin,
		"destination":     f.Destination,
		"rows":            f.Rows,
		"columns":         f.Columns,
		"total_seats":     f.TotalSeats,
		"available_seats": f.AvailableSeats,
	}
}

func ReservationValue(r domain.Reservation) map[string]interface{} {
	return map[string]interface{}{
		"pnr":            r.PNR,
		"flight_id":      r.FlightID,
		"passenger_name": r.PassengerName,
		"seat":           r.Seat,
		"booked_at":      r.BookedAt.Format(time.RFC3339),
	}
}
