package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/John-Mota/production-optimizer-back/internal/domain/dto"
	"github.com/John-Mota/production-optimizer-back/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing. It should
	// comfortably exceed the solver time budget so optimize requests can
	// fall back to the heuristic answer instead of timing out.
	Timeout time.Duration
	// ErrorMessage is returned when no translator is available.
	ErrorMessage string
}

// DefaultTimeoutConfig returns sensible defaults for the timeout middleware.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout returns a middleware that bounds request processing time and
// answers 504 when the deadline passes before the handler writes.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// finished guards against writing a 504 after the handler completed.
		var mu sync.Mutex
		var finished bool

		done := make(chan struct{})
		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if !finished && !c.Writer.Written() {
				writeTimeoutResponse(c, cfg)
			}
		}
	}
}

func writeTimeoutResponse(c *gin.Context, cfg TimeoutConfig) {
	message := cfg.ErrorMessage
	if translator := i18n.GetTranslator(); translator != nil {
		message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	}

	c.AbortWithStatusJSON(http.StatusGatewayTimeout,
		dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
}

// TimeoutWithDuration creates timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
