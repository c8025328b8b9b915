// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/cookbook/internal/core/ports"
)

// layer is satisfied by zerr errors: a message and metadata without the chain.
type layer interface {
	Message() string
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput changes the destination and keeps the current format.
// A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild must be called with mu held for writing.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. JSON output carries the structured chain; pretty output
// prints one line per wrapped message.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}
	l.logger.Error(formatErrorChain(err))
}

// formatErrorChain renders the first message on its own line and every cause
// below it. Layers without a message fold their metadata into the next line.
func formatErrorChain(err error) string {
	var (
		lines   []string
		pending []string
	)

	for current := err; current != nil; current = errors.Unwrap(current) {
		l, ok := current.(layer)
		if !ok {
			lines = append(lines, joinLine(current.Error(), pending))
			pending = nil
			break
		}

		pending = append(pending, formatMetadata(l.Metadata())...)
		if l.Message() == "" {
			continue
		}
		lines = append(lines, joinLine(l.Message(), pending))
		pending = nil
	}

	for i := 1; i < len(lines); i++ {
		lines[i] = "  caused by: " + lines[i]
	}
	return strings.Join(lines, "\n")
}

func joinLine(msg string, attrs []string) string {
	if len(attrs) == 0 {
		return msg
	}
	return msg + " " + strings.Join(attrs, " ")
}

func formatMetadata(meta map[string]any) []string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return parts
}
