package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moveBody struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
	Day       int    `json:"day_number" binding:"gt=0"`
}

func bind(t *testing.T, body string) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req moveBody
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)
	RespondBindingError(c, err)

	var res APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return w.Code, res
}

func TestRespondBindingError_ListsJSONFields(t *testing.T) {
	code, res := bind(t, `{"direction":"left","day_number":0}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, res.Message, "direction must be one of: up, down")
	assert.Contains(t, res.Message, "day_number must be greater than 0")
}

func TestRespondBindingError_Malformed(t *testing.T) {
	code, res := bind(t, `{"direction":`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Malformed request body", res.Message)
}
