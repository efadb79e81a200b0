package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotels-api/services"
	"hotels-api/utils"
)

type CreateHotelRequest struct {
	Name      string  `json:"name" binding:"required"`
	Location  string  `json:"location" binding:"required"`
	BasePrice float64 `json:"basePrice" binding:"gte=0"`
}

type UpdateHotelRequest struct {
	Name      string  `json:"name" binding:"required"`
	Location  string  `json:"location" binding:"required"`
	BasePrice float64 `json:"basePrice" binding:"gte=0"`
	Status    *bool   `json:"status" binding:"required"`
}

type HotelController struct {
	HotelSvc *services.HotelService
	Log      *zap.Logger
}

func NewHotelController(svc *services.HotelService, log *zap.Logger) *HotelController {
	return &HotelController{HotelSvc: svc, Log: log}
}

func (h *HotelController) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	hotel, err := h.HotelSvc.Create(c.Request.Context(), services.CreateHotelInput{
		Name:      req.Name,
		Location:  req.Location,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		respondServiceError(c, h.Log, err)
		return
	}

	h.Log.Info("hotel created", zap.String("hotelId", hotel.HotelID))
	c.JSON(http.StatusOK, hotel)
}

func (h *HotelController) GetHotels(c *gin.Context) {
	hotels, err := h.HotelSvc.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.Log, err)
		return
	}
	if len(hotels) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *HotelController) GetHotelByID(c *gin.Context) {
	hotel, err := h.HotelSvc.GetByID(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		respondServiceError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (h *HotelController) UpdateHotel(c *gin.Context) {
	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	err := h.HotelSvc.Update(c.Request.Context(), c.Param("hotelId"), services.UpdateHotelInput{
		Name:      req.Name,
		Location:  req.Location,
		BasePrice: req.BasePrice,
		Status:    *req.Status,
	})
	if err != nil {
		respondServiceError(c, h.Log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Hotel updated successfully.")
}

func (h *HotelController) ToggleHotelStatus(c *gin.Context) {
	status, err := h.HotelSvc.ToggleStatus(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		respondServiceError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotelId": c.Param("hotelId"), "status": status})
}

// SearchHotels handles GET /hotels/search?city&checkInDate&checkOutDate&numGuests.
// City is optional; the date range and guest count are required.
func (h *HotelController) SearchHotels(c *gin.Context) {
	checkIn, err := parseDate(c.Query("checkInDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid or missing 'checkInDate'. Expected YYYY-MM-DD.")
		return
	}
	checkOut, err := parseDate(c.Query("checkOutDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid or missing 'checkOutDate'. Expected YYYY-MM-DD.")
		return
	}
	if !checkIn.Before(checkOut) {
		utils.JSONError(c, http.StatusBadRequest, "'checkInDate' must be before 'checkOutDate'.")
		return
	}
	numGuests, err := strconv.Atoi(c.DefaultQuery("numGuests", "1"))
	if err != nil || numGuests < 1 {
		utils.JSONError(c, http.StatusBadRequest, "'numGuests' must be a positive integer.")
		return
	}

	hotels, err := h.HotelSvc.Search(c.Request.Context(), services.SearchHotelsInput{
		City:      c.Query("city"),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		NumGuests: numGuests,
	})
	if err != nil {
		respondServiceError(c, h.Log, err)
		return
	}
	if len(hotels) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, hotels)
}
