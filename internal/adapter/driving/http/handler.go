package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ericfisherdev/formfill/internal/application"
	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
)

// maxBodyBytes bounds request bodies; field trees are small.
const maxBodyBytes = 1 << 20

// Handler is the HTTP driving adapter that serves the autofill API.
type Handler struct {
	autofillSvc *application.AutofillService
	detector    *application.FormDetector
	profiles    *application.ProfileProvider
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	autofillSvc *application.AutofillService,
	detector *application.FormDetector,
	profiles *application.ProfileProvider,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		autofillSvc: autofillSvc,
		detector:    detector,
		profiles:    profiles,
		logger:      logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with request id, logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/autofill/suggestions", h.Suggest)
	mux.HandleFunc("GET /api/v1/autofill/login-form", h.DetectLoginForm)
	mux.HandleFunc("GET /api/v1/credentials", h.ListCredentials)
	mux.HandleFunc("POST /api/v1/credentials", h.SaveCredentials)
	mux.HandleFunc("GET /api/v1/profile", h.GetProfile)
	mux.HandleFunc("PUT /api/v1/profile", h.ReplaceProfile)
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Recovery innermost so panics are caught before logging; request id outermost.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// Suggest classifies the submitted field windows and returns suggestions.
// An empty result is reported as 204 No Content.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestionsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	windows := make([]model.FieldNode, 0, len(req.Windows))
	for _, win := range req.Windows {
		if win != nil {
			windows = append(windows, win)
		}
	}

	set := h.autofillSvc.Suggest(r.Context(), req.PageURL, windows...)
	if set.IsEmpty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionsResponse(set))
}

// DetectLoginForm fetches the page named by the url query parameter and
// reports whether it resembles a login form. Pages that are not HTML report
// false; fetch failures return 502.
func (h *Handler) DetectLoginForm(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	if !isFetchableURL(pageURL) {
		writeError(w, http.StatusBadRequest, "invalid url: expected absolute http(s) url")
		return
	}

	hasForm, err := h.detector.ContainsLoginForm(r.Context(), pageURL)
	switch {
	case errors.Is(err, application.ErrNotHTML):
		hasForm = false
	case errors.Is(err, driven.ErrFetch):
		writeError(w, http.StatusBadGateway, "could not fetch document")
		return
	case err != nil:
		h.logger.Error("failed to detect login form", "url", pageURL, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, LoginFormResponse{URL: pageURL, HasLoginForm: hasForm})
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// isFetchableURL accepts absolute http and https URLs with a host.
func isFetchableURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
