// Package server exposes the local diagnostics HTTP endpoint: cache usage,
// pending queue contents and a liveness probe. The endpoint binds to a
// loopback address and is disabled when no address is configured.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/internal/store"
)

type Handler struct {
	store store.LocalStore

	logger *logger.Logger
}

func NewHandler(localStore store.LocalStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("diagnostics handler created")
	return &Handler{
		store:  localStore,
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/healthz", h.healthz)
	router.Get("/debug/storage", h.storageSummary)
	router.Get("/debug/queue", h.pendingQueue)

	return router
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// storageSummary reports per-collection record counts, queue depth and the
// sync bookkeeping row.
func (h *Handler) storageSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.store.UsageSummary(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	meta, err := h.store.Metadata(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, map[string]any{
		"usage":    summary,
		"metadata": meta,
	})
}

func (h *Handler) pendingQueue(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListQueue(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, map[string]any{
		"depth":   len(entries),
		"entries": entries,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode diagnostics response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("diagnostics request failed")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
