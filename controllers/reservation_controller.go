package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotels-api/services"
	"hotels-api/utils"
)

type CreateReservationRequest struct {
	HotelID        string `json:"hotelId" binding:"required"`
	RoomID         string `json:"roomId" binding:"required"`
	CheckInDate    string `json:"checkInDate" binding:"required"`
	CheckOutDate   string `json:"checkOutDate" binding:"required"`
	GuestName      string `json:"guestName"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required,gte=1"`
}

type AddGuestsRequest struct {
	AdditionalGuests int `json:"additionalGuests" binding:"required,gt=0"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
	Log            *zap.Logger
}

func NewReservationController(svc *services.ReservationService, log *zap.Logger) *ReservationController {
	return &ReservationController{ReservationSvc: svc, Log: log}
}

// CreateReservation handles POST /reservations. Boundary validation only;
// room ownership and availability are decided inside the booking
// transaction.
func (r *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if _, err := uuid.Parse(req.HotelID); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "'hotelId' must be a valid UUID.")
		return
	}
	if _, err := uuid.Parse(req.RoomID); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "'roomId' must be a valid UUID.")
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid 'checkInDate'. Expected YYYY-MM-DD.")
		return
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid 'checkOutDate'. Expected YYYY-MM-DD.")
		return
	}
	if !checkIn.Before(checkOut) {
		utils.JSONError(c, http.StatusBadRequest, "'checkInDate' must be strictly before 'checkOutDate'.")
		return
	}

	reservation, err := r.ReservationSvc.Create(c.Request.Context(), services.CreateReservationInput{
		HotelID:     req.HotelID,
		RoomID:      req.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalGuests: req.NumberOfGuests,
	})
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

func (r *ReservationController) GetReservationDetails(c *gin.Context) {
	reservation, err := r.ReservationSvc.GetByID(c.Request.Context(), c.Param("reservationId"))
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (r *ReservationController) GetReservationsByHotel(c *gin.Context) {
	reservations, err := r.ReservationSvc.GetByHotel(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	if len(reservations) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// AddGuests handles PUT /reservations/:reservationId/add-guests.
func (r *ReservationController) AddGuests(c *gin.Context) {
	var req AddGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	total, err := r.ReservationSvc.AddGuests(c.Request.Context(), c.Param("reservationId"), req.AdditionalGuests)
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservationId": c.Param("reservationId"), "totalGuests": total})
}
