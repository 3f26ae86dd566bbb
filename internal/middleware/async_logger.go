package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
	"github.com/John-Mota/production-optimizer-back/internal/logger"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

// AsyncLoggerConfig holds configuration for the async audit logger.
type AsyncLoggerConfig struct {
	// BufferSize is the capacity of the pending entry channel.
	BufferSize int
	// NumWorkers is the number of goroutines writing entries to storage.
	NumWorkers int
	// WriteTimeout bounds each storage write.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger buffers audit entries and writes them through a fixed worker
// pool, so a slow logs collection cannot spawn unbounded goroutines or
// block request handling.
type AsyncLogger struct {
	logs         service.LoggingService
	entryCh      chan *model.LogEntry
	stopCh       chan struct{}
	writeTimeout time.Duration
	wg           sync.WaitGroup

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncLogger starts the worker pool. Returns nil when no logging
// service is configured so callers can treat audit logging as optional.
func NewAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if logs == nil {
		return nil
	}

	al := &AsyncLogger{
		logs:         logs,
		entryCh:      make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}

	al.wg.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry, ok := <-al.entryCh:
			if !ok {
				return
			}
			al.store(entry)
		case <-al.stopCh:
			al.drain()
			return
		}
	}
}

// drain flushes whatever is still buffered at shutdown.
func (al *AsyncLogger) drain() {
	for {
		select {
		case entry := <-al.entryCh:
			al.store(entry)
		default:
			return
		}
	}
}

func (al *AsyncLogger) store(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.logs.CreateLog(ctx, entry); err != nil {
		al.errors.Add(1)
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to write async log entry")
		return
	}
	al.written.Add(1)
}

// Log enqueues an entry without blocking. Returns false when the buffer is
// full and the entry was dropped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop shuts the pool down after flushing pending entries.
func (al *AsyncLogger) Stop() {
	close(al.stopCh)
	al.wg.Wait()
	close(al.entryCh)
}

// Stats returns the counters accumulated since startup.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, errors int64) {
	return al.enqueued.Load(), al.dropped.Load(), al.written.Load(), al.errors.Load()
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger replaces the global async logger, stopping any previous
// instance first. Called once during application startup.
func InitAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(logs, cfg)
}

// GetAsyncLogger returns the global async logger, or nil when audit
// logging is disabled.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and clears the global async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
