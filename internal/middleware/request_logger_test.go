package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger_StoresEntry(t *testing.T) {
	logging := newCaptureLoggingService()

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logging))
	router.GET("/api/materials", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	entry := logging.wait(t)
	assert.Equal(t, http.MethodGet, entry.Method)
	assert.Equal(t, "/api/materials", entry.Path)
	assert.Equal(t, http.StatusOK, entry.StatusCode)
	assert.Equal(t, "info", entry.Level)
	assert.NotEmpty(t, entry.RequestID)
}

func TestRequestLogger_ErrorLevelForServerFailures(t *testing.T) {
	logging := newCaptureLoggingService()

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logging))
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	entry := logging.wait(t)
	assert.Equal(t, http.StatusInternalServerError, entry.StatusCode)
	assert.Equal(t, "error", entry.Level)
}

func TestRequestLogger_NilServiceStillServes(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
