package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, gin.H{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	assert.Contains(t, body, "error")
	assert.Nil(t, body["error"])
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name    string
		respond func(c *gin.Context)
		status  int
		message string
	}{
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, MsgUnauthorized},
		{"not found", func(c *gin.Context) { NotFound(c, "Task not found") }, http.StatusNotFound, "Task not found"},
		{"bad request", func(c *gin.Context) { BadRequest(c, "title is required") }, http.StatusBadRequest, "title is required"},
		{"conflict", func(c *gin.Context) { Conflict(c, "") }, http.StatusConflict, MsgConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.respond(c)

			assert.Equal(t, tc.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Nil(t, body["data"])
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestInternalError_HidesMessageOutsideDebug(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	InternalError(c, fmt.Errorf("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MsgInternalError, decode(t, w)["error"])
	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors[0].Err, "connection refused")
}

func TestInternalError_ExposesMessageInDebug(t *testing.T) {
	gin.SetMode(gin.DebugMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	InternalError(c, fmt.Errorf("connection refused"))

	assert.Equal(t, "connection refused", decode(t, w)["error"])
}
