package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/origin"
)

// ListCredentials returns the logins saved for the origin of the url query
// parameter. Passwords are never returned.
func (h *Handler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	key, err := origin.Normalize(pageURL)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid url")
		return
	}

	creds, err := h.autofillSvc.Credentials(r.Context(), pageURL)
	if err != nil {
		h.logger.Error("failed to list credentials", "origin", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := CredentialsResponse{Origin: key, Credentials: make([]CredentialResponse, 0, len(creds))}
	for _, c := range creds {
		resp.Credentials = append(resp.Credentials, toCredentialResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// SaveCredentials records a submitted login. Empty credentials are accepted
// and ignored with 204.
func (h *Handler) SaveCredentials(w http.ResponseWriter, r *http.Request) {
	var req SaveCredentialsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if (model.Credential{Username: req.Username, Password: req.Password}).IsEmpty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.autofillSvc.SaveCredentials(r.Context(), req.URL, req.Username, req.Password); err != nil {
		if errors.Is(err, origin.ErrInvalidURL) {
			writeError(w, http.StatusBadRequest, "invalid url")
			return
		}
		h.logger.Error("failed to save credentials", "url", req.URL, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	key, _ := origin.Normalize(req.URL)
	writeJSON(w, http.StatusCreated, SavedCredentialResponse{Origin: key, Username: req.Username})
}
