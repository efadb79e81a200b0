package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"hotels-api/controllers"
)

func TestParseCorsOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseCorsOrigins(""))
	assert.Equal(t, []string{"*"}, parseCorsOrigins(" , ,"))
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		parseCorsOrigins("https://a.example, https://b.example"),
	)
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := SetupRouter(
		&controllers.HotelController{},
		&controllers.RoomController{},
		&controllers.ReservationController{},
		&controllers.GuestController{},
		zap.NewNop(),
		"",
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
