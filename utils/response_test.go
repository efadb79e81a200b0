package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONError(c, http.StatusNotFound, "hotel not found")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope ResponseResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.IsError)
	assert.Equal(t, "hotel not found", envelope.Message)
	assert.WithinDuration(t, time.Now().UTC(), envelope.Timestamp, time.Minute)
}

func TestJSONMessageEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONMessage(c, http.StatusOK, "Hotel updated successfully.")

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope ResponseResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.IsError)
}
