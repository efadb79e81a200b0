package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotels-api/services"
	"hotels-api/utils"
)

func newBookingRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	svc := services.NewReservationService(db, services.FlatCost{Amount: 500}, zap.NewNop())
	rc := NewReservationController(svc, zap.NewNop())

	r := gin.New()
	r.POST("/reservations", rc.CreateReservation)
	return r, mock
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.ResponseResult {
	t.Helper()
	var envelope utils.ResponseResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestCreateReservationRejectsMissingFields(t *testing.T) {
	r, mock := newBookingRouter(t)

	w := postJSON(t, r, "/reservations", `{"roomId":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, decodeEnvelope(t, w).IsError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationRejectsBadUUID(t *testing.T) {
	r, mock := newBookingRouter(t)

	w := postJSON(t, r, "/reservations", `{
		"hotelId": "not-a-uuid",
		"roomId": "`+uuid.NewString()+`",
		"checkInDate": "2024-06-01",
		"checkOutDate": "2024-06-05",
		"numberOfGuests": 2
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationRejectsReversedDates(t *testing.T) {
	r, mock := newBookingRouter(t)

	w := postJSON(t, r, "/reservations", `{
		"hotelId": "`+uuid.NewString()+`",
		"roomId": "`+uuid.NewString()+`",
		"checkInDate": "2024-06-05",
		"checkOutDate": "2024-06-01",
		"numberOfGuests": 2
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.IsError)
	assert.Contains(t, envelope.Message, "strictly before")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationRejectsEqualDates(t *testing.T) {
	r, mock := newBookingRouter(t)

	w := postJSON(t, r, "/reservations", `{
		"hotelId": "`+uuid.NewString()+`",
		"roomId": "`+uuid.NewString()+`",
		"checkInDate": "2024-06-01",
		"checkOutDate": "2024-06-01",
		"numberOfGuests": 2
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationRejectsZeroGuests(t *testing.T) {
	r, mock := newBookingRouter(t)

	w := postJSON(t, r, "/reservations", `{
		"hotelId": "`+uuid.NewString()+`",
		"roomId": "`+uuid.NewString()+`",
		"checkInDate": "2024-06-01",
		"checkOutDate": "2024-06-05",
		"numberOfGuests": 0
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationConflictMapsTo409(t *testing.T) {
	r, mock := newBookingRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `rooms` .+FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{
			"room_id", "hotel_id", "room_type", "base_cost",
			"tax_percentage", "capacity", "status",
		}).AddRow(uuid.NewString(), uuid.NewString(), "Standard", 120.0, 19.0, 2, true))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `reservations`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	w := postJSON(t, r, "/reservations", `{
		"hotelId": "`+uuid.NewString()+`",
		"roomId": "`+uuid.NewString()+`",
		"checkInDate": "2024-06-04",
		"checkOutDate": "2024-06-08",
		"numberOfGuests": 1
	}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.IsError)
	assert.Contains(t, envelope.Message, "not available")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationInvalidRoomMapsTo400(t *testing.T) {
	r, mock := newBookingRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `rooms` .+FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "hotel_id", "status"}))
	mock.ExpectRollback()

	w := postJSON(t, r, "/reservations", `{
		"hotelId": "`+uuid.NewString()+`",
		"roomId": "`+uuid.NewString()+`",
		"checkInDate": "2024-06-01",
		"checkOutDate": "2024-06-05",
		"numberOfGuests": 1
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, decodeEnvelope(t, w).IsError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
