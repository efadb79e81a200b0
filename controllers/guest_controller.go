package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotels-api/services"
	"hotels-api/utils"
)

type AddEmergencyContactRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Relationship string `json:"relationship"`
}

type GuestController struct {
	GuestSvc *services.GuestService
	Log      *zap.Logger
}

func NewGuestController(svc *services.GuestService, log *zap.Logger) *GuestController {
	return &GuestController{GuestSvc: svc, Log: log}
}

func (g *GuestController) GetGuestsByReservation(c *gin.Context) {
	guests, err := g.GuestSvc.GetByReservation(c.Request.Context(), c.Param("reservationId"))
	if err != nil {
		respondServiceError(c, g.Log, err)
		return
	}
	if len(guests) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, guests)
}

func (g *GuestController) AddEmergencyContact(c *gin.Context) {
	var req AddEmergencyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	contact, err := g.GuestSvc.AddEmergencyContact(c.Request.Context(), c.Param("reservationId"), services.AddEmergencyContactInput{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	})
	if err != nil {
		respondServiceError(c, g.Log, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}
