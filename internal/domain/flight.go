package domain

// FlightSpec is one entry of the seeded flight catalog.
type FlightSpec struct {
	ID          string `yaml:"id" json:"id"`
	Origin      string `yaml:"origin" json:"origin"`
	Destination string `yaml:"destination" json:"destination"`
	Rows        int    `yaml:"rows" json:"rows"`
	Columns     int    `yaml:"columns" json:"columns"`
}

// MaxColumns is bounded by the seat letters A..Z.
const MaxColumns = 26

// Flight is a point-in-time summary of a catalog flight.
type Flight struct {
	ID             string `json:"id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Rows           int    `json:"rows"`
	Columns        int    `json:"columns"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

type SeatState struct {
	Label  string `json:"label"`
	Booked bool   `json:"booked"`
}

// SeatMap is a row-major occupancy snapshot used by seat-map renderers.
type SeatMap struct {
	FlightID string        `json:"flight_id"`
	Rows     [][]SeatState `json:"rows"`
}
