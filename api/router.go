package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/syrec53/AeroplaneReservation/config"
	"github.com/syrec53/AeroplaneReservation/internal/service/flights"
	"github.com/syrec53/AeroplaneReservation/internal/service/reservation"
)

const openAPIFile = "openapi.json"

func NewRouter(cfg *config.Config, flightSvc flights.FlightUseCase, reservationSvc reservation.ReservationUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFile("/swagger/"+openAPIFile, filepath.Join(cfg.HTTP.SwaggerDir, openAPIFile))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/"+openAPIFile))))
	}

	v1 := router.Group("/", RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	NewFlightHandler(flightSvc, reservationSvc).Register(v1.Group("/flights"))
	NewReservationHandler(reservationSvc).Register(v1.Group("/reservations"))

	return router
}
