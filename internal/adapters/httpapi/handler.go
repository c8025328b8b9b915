// Package httpapi exposes the cookbook over HTTP with JSON bodies.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
)

// Cookbook is the application surface served over HTTP.
type Cookbook interface {
	CreateEntry(in domain.EntryInput) error
	Entry(name string) (domain.Entry, bool)
	Entries() []domain.Entry
	EntryCount() int
	Summarize(ctx context.Context, name string) (*domain.Summary, error)
	ParseName(input string) (string, error)
}

// Options configures the HTTP handler.
type Options struct {
	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string
}

// ServiceName is reported by the health endpoint.
const ServiceName = "cookbook"

const msgInvalidBody = "invalid request body"

// Handler routes cookbook requests.
type Handler struct {
	cookbook Cookbook
	logger   ports.Logger
	started  time.Time
	handler  http.Handler
}

// New creates the HTTP handler with its middleware chain.
func New(cookbook Cookbook, logger ports.Logger, opts Options) *Handler {
	h := &Handler{
		cookbook: cookbook,
		logger:   logger,
		started:  time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /entry", h.createEntry)
	mux.HandleFunc("GET /entry", h.getEntry)
	mux.HandleFunc("GET /entries", h.listEntries)
	mux.HandleFunc("GET /summary", h.summary)
	mux.HandleFunc("POST /parse", h.parse)
	mux.HandleFunc("GET /health", h.health)

	h.handler = RequestID(Logging(logger, CORS(opts.AllowedOrigin, mux)))
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	var in domain.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgInvalidBody})
		return
	}

	if err := h.cookbook.CreateEntry(in); err != nil {
		if msg, ok := domain.EntryErrorMessage(err); ok {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: msg})
			return
		}
		h.logger.Error(err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.cookbook.Entry(r.URL.Query().Get("name"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, domain.ViewOf(entry))
}

type entriesResponse struct {
	Entries []domain.EntryView `json:"entries"`
}

func (h *Handler) listEntries(w http.ResponseWriter, _ *http.Request) {
	entries := h.cookbook.Entries()
	resp := entriesResponse{Entries: make([]domain.EntryView, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, domain.ViewOf(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// summary answers every resolution failure with the same empty 400. The
// cause is only logged.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	summary, err := h.cookbook.Summarize(r.Context(), name)
	if err != nil {
		h.logger.Warn(fmt.Sprintf("summary of %q rejected: %s request_id=%s",
			name, describeError(err), RequestIDFromContext(r.Context())))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	body, err := json.Marshal(summary)
	if err != nil {
		h.logger.Error(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

type parseRequest struct {
	Input string `json:"input"`
}

type parseResponse struct {
	Msg string `json:"msg"`
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgInvalidBody})
		return
	}

	name, err := h.cookbook.ParseName(req.Input)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(domain.ErrInvalidRecipeName.Error()))
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Msg: name})
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Entries int    `json:"entries"`
	Uptime  string `json:"uptime"`
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Entries: h.cookbook.EntryCount(),
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}

// metadataError is satisfied by zerr errors.
type metadataError interface {
	Metadata() map[string]any
}

// describeError renders err followed by the sorted metadata of every layer.
func describeError(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	for current := err; current != nil; current = errors.Unwrap(current) {
		layer, ok := current.(metadataError)
		if !ok {
			continue
		}
		meta := layer.Metadata()
		for _, key := range slices.Sorted(maps.Keys(meta)) {
			fmt.Fprintf(&b, " %s=%v", key, meta[key])
		}
	}
	return b.String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
