package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// GetProfile returns the current autofill profile with card details masked.
func (h *Handler) GetProfile(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toProfileResponse(h.profiles.Get()))
}

// ReplaceProfile swaps the autofill profile. The new values apply to the
// next suggestion request.
func (h *Handler) ReplaceProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.Profile
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.profiles.Replace(profile)
	h.logger.Info("autofill profile replaced")

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}
