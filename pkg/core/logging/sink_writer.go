// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     logging
// Description: SinkWriter batches log entries and hands them to a pluggable
//              Transport, generalized from a single hard-coded log shipper
//              into the observer-interface pattern the engine uses for all
//              telemetry egress.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// SinkLogEntry represents a single structured log entry ready for shipping.
type SinkLogEntry struct {
	Timestamp     string                 `json:"timestamp"`
	Level         string                 `json:"level"`
	Message       string                 `json:"message"`
	Logger        string                 `json:"logger"`
	RequestID     string                 `json:"request_id,omitempty"`
	UserID        string                 `json:"user_id,omitempty"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	Error         string                 `json:"error,omitempty"`
	Caller        string                 `json:"caller,omitempty"`
	Fields        map[string]interface{} `json:"fields,omitempty"`
}

// Transport accepts a batch of log entries. Implementations are external
// collaborators (a SIEM shipper, an audit sink, a test double) — the core
// only classifies and batches, it never assumes a specific transport.
type Transport interface {
	Send(ctx context.Context, entries []SinkLogEntry) (accepted int, err error)
}

// SinkWriter implements io.Writer, batches parsed entries, and flushes them
// to a Transport on a timer or when the batch fills up.
type SinkWriter struct {
	serviceName string
	batchSize   int
	flushPeriod time.Duration

	transport   Transport
	transportMu sync.RWMutex

	buffer   []SinkLogEntry
	bufferMu sync.Mutex
	flushCh  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}

	fallback io.Writer
}

// SinkWriterConfig holds configuration for a SinkWriter.
type SinkWriterConfig struct {
	ServiceName string        // Name of the service sending logs
	BatchSize   int           // Number of entries to batch (default: 100)
	FlushPeriod time.Duration // How often to flush (default: 5s)
	Fallback    io.Writer     // Fallback writer, always written to (default: os.Stdout)
	Transport   Transport     // Optional; nil means entries are only kept locally
}

// DefaultSinkWriterConfig returns default configuration.
func DefaultSinkWriterConfig() SinkWriterConfig {
	return SinkWriterConfig{
		BatchSize:   100,
		FlushPeriod: 5 * time.Second,
		Fallback:    os.Stdout,
	}
}

// NewSinkWriter creates a new SinkWriter.
func NewSinkWriter(cfg SinkWriterConfig) (*SinkWriter, error) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushPeriod <= 0 {
		cfg.FlushPeriod = 5 * time.Second
	}
	if cfg.Fallback == nil {
		cfg.Fallback = os.Stdout
	}

	w := &SinkWriter{
		serviceName: cfg.ServiceName,
		batchSize:   cfg.BatchSize,
		flushPeriod: cfg.FlushPeriod,
		transport:   cfg.Transport,
		buffer:      make([]SinkLogEntry, 0, cfg.BatchSize),
		flushCh:     make(chan struct{}, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		fallback:    cfg.Fallback,
	}

	go w.flushWorker()

	return w, nil
}

// SetTransport installs or replaces the transport at runtime.
func (w *SinkWriter) SetTransport(t Transport) {
	w.transportMu.Lock()
	defer w.transportMu.Unlock()
	w.transport = t
}

// Write implements io.Writer.
func (w *SinkWriter) Write(p []byte) (n int, err error) {
	n, err = w.fallback.Write(p)
	if err != nil {
		return n, err
	}

	w.transportMu.RLock()
	hasTransport := w.transport != nil
	w.transportMu.RUnlock()
	if !hasTransport {
		return n, nil
	}

	var entry SinkLogEntry
	if jsonErr := json.Unmarshal(p, &entry); jsonErr != nil {
		// Not a structured entry (e.g. a text-formatted line); skip shipping.
		return n, nil
	}

	if w.serviceName != "" {
		entry.Logger = w.serviceName
	}

	w.bufferMu.Lock()
	w.buffer = append(w.buffer, entry)
	shouldFlush := len(w.buffer) >= w.batchSize
	w.bufferMu.Unlock()

	if shouldFlush {
		select {
		case w.flushCh <- struct{}{}:
		default:
		}
	}

	return n, nil
}

func (w *SinkWriter) flushWorker() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.flushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			w.flush()
			return
		case <-w.flushCh:
			w.flush()
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *SinkWriter) flush() {
	w.transportMu.RLock()
	transport := w.transport
	w.transportMu.RUnlock()
	if transport == nil {
		return
	}

	w.bufferMu.Lock()
	if len(w.buffer) == 0 {
		w.bufferMu.Unlock()
		return
	}
	entries := make([]SinkLogEntry, len(w.buffer))
	copy(entries, w.buffer)
	w.buffer = w.buffer[:0]
	w.bufferMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shipping failures are not surfaced: entries already reached the
	// fallback writer, and telemetry delivery is best-effort by design.
	_, _ = transport.Send(ctx, entries)
}

// Close gracefully shuts down the SinkWriter, flushing any buffered entries.
func (w *SinkWriter) Close() error {
	close(w.stopCh)
	<-w.doneCh
	return nil
}

// MultiWriter creates an io.Writer that writes to multiple destinations.
func MultiWriter(writers ...io.Writer) io.Writer {
	return io.MultiWriter(writers...)
}
