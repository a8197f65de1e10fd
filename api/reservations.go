package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"github.com/syrec53/AeroplaneReservation/internal/service/reservation"
)

type ReservationHandler struct {
	service reservation.ReservationUseCase
}

type bookSeatRequest struct {
	FlightID      string `json:"flight_id" binding:"required"`
	Seat          string `json:"seat" binding:"required"`
	PassengerName string `json:"passenger_name" binding:"required"`
}

type reservationResponse struct {
	PNR           string `json:"pnr"`
	FlightID      string `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
	Seat          string `json:"seat"`
	BookedAt      string `json:"booked_at"`
}

func toResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		PNR:           r.PNR,
		FlightID:      r.FlightID,
		PassengerName: r.PassengerName,
		Seat:          r.Seat,
		BookedAt:      r.BookedAt.Format(time.RFC3339),
	}
}

func NewReservationHandler(service reservation.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.book)
	router.GET("/:pnr", h.view)
	router.DELETE("/:pnr", h.cancel)
}

func (h *ReservationHandler) book(c *gin.Context) {
	var req bookSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: domain.KindInvalidInput.String()})
		return
	}

	r, err := h.service.BookSeat(c.Request.Context(), reservation.BookSeatInput{
		FlightID:      req.FlightID,
		Seat:          req.Seat,
		PassengerName: req.PassengerName,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(r))
}

func (h *ReservationHandler) view(c *gin.Context) {
	r, err := h.service.ViewReservation(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(r))
}

func (h *ReservationHandler) cancel(c *gin.Context) {
	r, err := h.service.CancelBooking(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(r))
}
