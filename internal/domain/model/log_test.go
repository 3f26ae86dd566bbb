package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	entry := &LogEntry{Fields: make(map[string]interface{})}

	result := entry.WithField("product_id", "p-1")
	assert.Same(t, entry, result)
	assert.Equal(t, "p-1", entry.Fields["product_id"])

	entry.WithField("product_id", "p-2")
	assert.Equal(t, "p-2", entry.Fields["product_id"])
}

func TestLogEntry_WithField_NilFields(t *testing.T) {
	entry := &LogEntry{}

	entry.WithField("client", "frontend")
	assert.Equal(t, "frontend", entry.Fields["client"])
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &LogEntry{Fields: map[string]interface{}{"client": "frontend"}}

	entry.WithFields(map[string]interface{}{
		"material_id": "m-1",
		"quantity":    5,
	})

	assert.Equal(t, "frontend", entry.Fields["client"])
	assert.Equal(t, "m-1", entry.Fields["material_id"])
	assert.Equal(t, 5, entry.Fields["quantity"])
}
