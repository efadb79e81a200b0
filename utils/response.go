package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ResponseResult is the envelope returned by mutating endpoints and by every
// error response. Successful GETs return the entity or list body directly.
type ResponseResult struct {
	IsError   bool      `json:"isError"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, ResponseResult{
		IsError:   false,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, ResponseResult{
		IsError:   true,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}
