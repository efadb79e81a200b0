package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotels-api/services"
	"hotels-api/utils"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// respondServiceError maps domain errors to status codes. Anything
// unrecognized is a persistence failure: logged with its cause, surfaced
// as an opaque 500.
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrNoGuestsFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidRoomReference):
		utils.JSONError(c, http.StatusBadRequest, "The specified room does not exist or does not belong to the specified hotel.")
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "The room is not available for the selected dates.")
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
