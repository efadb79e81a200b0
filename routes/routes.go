package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotels-api/controllers"
	"hotels-api/middleware"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the HTTP surface.
func SetupRouter(
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	gc *controllers.GuestController,
	log *zap.Logger,
	corsOrigins string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	hotels := r.Group("/hotels")
	{
		hotels.POST("", hc.CreateHotel)
		hotels.GET("", hc.GetHotels)

		// static route must be registered alongside the :hotelId param
		hotels.GET("/search", hc.SearchHotels)

		hotels.GET("/:hotelId", hc.GetHotelByID)
		hotels.PUT("/:hotelId", hc.UpdateHotel)
		hotels.PATCH("/:hotelId/toggle-status", hc.ToggleHotelStatus)

		hotels.POST("/:hotelId/rooms", rc.AddRoomToHotel)
		hotels.GET("/:hotelId/rooms", rc.GetRoomsByHotel)

		hotels.GET("/:hotelId/reservations", resc.GetReservationsByHotel)
	}

	rooms := r.Group("/rooms")
	{
		rooms.PUT("/:roomId", rc.UpdateRoom)
		rooms.PATCH("/:roomId/toggle-status", rc.ToggleRoomStatus)
	}

	reservations := r.Group("/reservations")
	{
		reservations.POST("", resc.CreateReservation)
		reservations.GET("/:reservationId", resc.GetReservationDetails)
		reservations.PUT("/:reservationId/add-guests", resc.AddGuests)
		reservations.PUT("/:reservationId/add-emergency-contact", gc.AddEmergencyContact)
		reservations.GET("/:reservationId/guests", gc.GetGuestsByReservation)
	}

	return r
}
