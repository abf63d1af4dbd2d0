// Package httphandler is the JSON API driving adapter.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jatinnirwann/portfolio/internal/application"
	"github.com/jatinnirwann/portfolio/internal/domain/model"
)

// maxContactBody caps the contact form payload.
const maxContactBody = 64 << 10

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	repoSvc    *application.RepoService
	contactSvc *application.ContactService
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	repoSvc *application.RepoService,
	contactSvc *application.ContactService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		repoSvc:    repoSvc,
		contactSvc: contactSvc,
		logger:     logger,
	}
}

// RegisterAPIRoutes registers the JSON API and the metrics endpoint on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/github-repos", h.ListRepos)
	mux.HandleFunc("POST /api/refresh-repos", h.RefreshRepos)
	mux.HandleFunc("POST /api/contact", h.Contact)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
}

// ApplyMiddleware wraps handler with recovery, metrics and logging middleware.
func ApplyMiddleware(handler http.Handler, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before metrics and logging.
	wrapped := recoveryMiddleware(logger, handler)
	wrapped = metricsMiddleware(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)
	return wrapped
}

// NewServeMux creates an http.Handler with the API routes registered and
// wrapped with middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// ListRepos returns the portfolio's repositories and where they came from.
func (h *Handler) ListRepos(w http.ResponseWriter, r *http.Request) {
	listing, err := h.repoSvc.List(r.Context())
	if errors.Is(err, application.ErrNoRepos) {
		writeError(w, http.StatusInternalServerError, "Failed to fetch repositories")
		return
	}
	if err != nil {
		h.logger.Error("failed to list repositories", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ReposResponse{
		Success: true,
		Repos:   nonNil(listing.Repos),
		Source:  string(listing.Source),
	})
}

// RefreshRepos re-aggregates from GitHub and overwrites the cache.
func (h *Handler) RefreshRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.repoSvc.Refresh(r.Context())
	if errors.Is(err, application.ErrNoRepos) {
		h.logger.Warn("refresh produced no repositories", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch repositories")
		return
	}
	if err != nil {
		h.logger.Error("failed to refresh repositories", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{
		Success: true,
		Repos:   repos,
		Message: "Repositories refreshed successfully",
	})
}

// Contact relays a contact-form submission by mail, or logs it when mail
// is not configured.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	var req ContactRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	mode, err := h.contactSvc.Submit(r.Context(), model.ContactMessage{
		Name:    fieldText(req.Name),
		Email:   fieldText(req.Email),
		Message: fieldText(req.Message),
	})
	switch {
	case errors.Is(err, model.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to transmit signal",
			Details: err.Error(),
		})
		return
	}

	message := "Signal transmitted successfully"
	if mode == model.DeliveryLogged {
		message = "Message received (logged mode)"
	}
	writeJSON(w, http.StatusOK, ContactResponse{Success: true, Message: message})
}

// fieldText converts a decoded contact field to text. Empty values (null,
// false, zero, "", [] and {}) become "" and so count as missing; other
// non-string values are written as their JSON text, with true as "True".
func fieldText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "True"
		}
		return ""
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return ""
		}
		return t.String()
	case []any:
		if len(t) == 0 {
			return ""
		}
	case map[string]any:
		if len(t) == 0 {
			return ""
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Health reports that the process is serving requests.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
