package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"github.com/syrec53/AeroplaneReservation/internal/service/flights"
	"github.com/syrec53/AeroplaneReservation/internal/service/reservation"
)

type FlightHandler struct {
	service      flights.FlightUseCase
	reservations reservation.ReservationUseCase
}

type seatsResponse struct {
	FlightID  string               `json:"flight_id"`
	Available []string             `json:"available"`
	Map       [][]domain.SeatState `json:"map"`
}

func NewFlightHandler(service flights.FlightUseCase, reservations reservation.ReservationUseCase) *FlightHandler {
	return &FlightHandler{service: service, reservations: reservations}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/seats", h.seats)
	router.GET("/:id/consistency", h.consistency)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// seats derives the available list from the same snapshot as the map.
func (h *FlightHandler) seats(c *gin.Context) {
	id := c.Param("id")

	seatMap, err := h.service.SeatMap(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	available := make([]string, 0)
	for _, row := range seatMap.Rows {
		for _, seat := range row {
			if !seat.Booked {
				available = append(available, seat.Label)
			}
		}
	}
	c.JSON(http.StatusOK, seatsResponse{FlightID: id, Available: available, Map: seatMap.Rows})
}

func (h *FlightHandler) consistency(c *gin.Context) {
	if err := h.reservations.CheckConsistency(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": c.Param("id"), "consistent": true})
}
