// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

// AuditLog logs a catalog action for audit purposes.
// This should be used for data modifications: creating materials, deleting
// products, running optimizations and so on.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, actionType, message, fields)
	entry.Level = "info"

	storeAsync(loggingService, entry)
}

// AuditLogError logs a failed action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, actionType, message, fields)
	entry.Level = "error"
	entry.Error = err.Error()

	storeAsync(loggingService, entry)
}

// newAuditEntry builds a log entry from the request context.
func newAuditEntry(c *gin.Context, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	if client := GetClient(c); client != "" {
		entry.WithField("client", client)
	}
	return entry
}

// storeAsync writes the entry without blocking the request.
func storeAsync(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
