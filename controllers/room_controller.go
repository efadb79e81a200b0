package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotels-api/services"
	"hotels-api/utils"
)

type AddRoomRequest struct {
	RoomType      string  `json:"roomType" binding:"required"`
	BaseCost      float64 `json:"baseCost" binding:"gte=0"`
	TaxPercentage float64 `json:"taxPercentage" binding:"gte=0,lte=100"`
	Capacity      int     `json:"capacity" binding:"required,gte=1"`
	Status        *bool   `json:"status"`
}

type UpdateRoomRequest struct {
	RoomType      string  `json:"roomType" binding:"required"`
	BaseCost      float64 `json:"baseCost" binding:"gte=0"`
	TaxPercentage float64 `json:"taxPercentage" binding:"gte=0,lte=100"`
	Capacity      int     `json:"capacity" binding:"required,gte=1"`
	Status        *bool   `json:"status" binding:"required"`
}

type RoomController struct {
	RoomSvc *services.RoomService
	Log     *zap.Logger
}

func NewRoomController(svc *services.RoomService, log *zap.Logger) *RoomController {
	return &RoomController{RoomSvc: svc, Log: log}
}

func (r *RoomController) AddRoomToHotel(c *gin.Context) {
	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	// New rooms default to active unless the payload says otherwise.
	status := true
	if req.Status != nil {
		status = *req.Status
	}

	room, err := r.RoomSvc.AddToHotel(c.Request.Context(), c.Param("hotelId"), services.AddRoomInput{
		RoomType:      req.RoomType,
		BaseCost:      req.BaseCost,
		TaxPercentage: req.TaxPercentage,
		Capacity:      req.Capacity,
		Status:        status,
	})
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}

	r.Log.Info("room added", zap.String("roomId", room.RoomID), zap.String("hotelId", room.HotelID))
	c.JSON(http.StatusOK, room)
}

func (r *RoomController) GetRoomsByHotel(c *gin.Context) {
	rooms, err := r.RoomSvc.GetByHotel(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	if len(rooms) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (r *RoomController) UpdateRoom(c *gin.Context) {
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	err := r.RoomSvc.Update(c.Request.Context(), c.Param("roomId"), services.UpdateRoomInput{
		RoomType:      req.RoomType,
		BaseCost:      req.BaseCost,
		TaxPercentage: req.TaxPercentage,
		Capacity:      req.Capacity,
		Status:        *req.Status,
	})
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room updated successfully.")
}

func (r *RoomController) ToggleRoomStatus(c *gin.Context) {
	status, err := r.RoomSvc.ToggleStatus(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": c.Param("roomId"), "status": status})
}
