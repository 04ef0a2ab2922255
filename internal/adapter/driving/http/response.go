package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// SuggestionsRequest is the JSON body for the suggestions endpoint. Each
// window is the root of one field tree.
type SuggestionsRequest struct {
	PageURL string         `json:"page_url"`
	Windows []*model.Field `json:"windows"`
}

// SuggestionResponse is one candidate value for a field.
type SuggestionResponse struct {
	FieldID string `json:"field_id"`
	Value   string `json:"value"`
	Label   string `json:"label"`
}

// SuggestionsResponse groups suggestions by field kind and also lists them
// flattened in delivery order.
type SuggestionsResponse struct {
	Suggestions map[string][]SuggestionResponse `json:"suggestions"`
	Entries     []SuggestionResponse            `json:"entries"`
}

// LoginFormResponse is the JSON representation of a login form check.
type LoginFormResponse struct {
	URL          string `json:"url"`
	HasLoginForm bool   `json:"has_login_form"`
}

// SaveCredentialsRequest is the JSON body for the save credentials endpoint.
type SaveCredentialsRequest struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SavedCredentialResponse acknowledges a stored login.
type SavedCredentialResponse struct {
	Origin   string `json:"origin"`
	Username string `json:"username"`
}

// CredentialResponse is a saved login without its password.
type CredentialResponse struct {
	Username    string `json:"username"`
	HasPassword bool   `json:"has_password"`
}

// CredentialsResponse lists the logins saved for an origin.
type CredentialsResponse struct {
	Origin      string               `json:"origin"`
	Credentials []CredentialResponse `json:"credentials"`
}

// ProfileResponse is the autofill profile with the card number masked and
// the security code withheld.
type ProfileResponse struct {
	FullName      string `json:"full_name"`
	WorkPhone     string `json:"work_phone"`
	WorkEmail     string `json:"work_email"`
	PersonalEmail string `json:"personal_email"`
	CardLast4     string `json:"card_last4"`
	CardExpiry    string `json:"card_expiry"`
	HasCardCode   bool   `json:"has_card_security_code"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toSuggestionsResponse converts a domain SuggestionSet to its JSON
// representation.
func toSuggestionsResponse(set model.SuggestionSet) SuggestionsResponse {
	resp := SuggestionsResponse{
		Suggestions: make(map[string][]SuggestionResponse, len(set)),
		Entries:     []SuggestionResponse{},
	}
	for kind, entries := range set {
		if len(entries) == 0 {
			continue
		}
		out := make([]SuggestionResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, toSuggestionResponse(e))
		}
		resp.Suggestions[string(kind)] = out
	}
	for _, e := range set.Entries() {
		resp.Entries = append(resp.Entries, toSuggestionResponse(e))
	}
	return resp
}

func toSuggestionResponse(e model.SuggestionEntry) SuggestionResponse {
	return SuggestionResponse{
		FieldID: string(e.Field),
		Value:   e.Value,
		Label:   e.Label,
	}
}

// toCredentialResponse drops the password from a saved login.
func toCredentialResponse(c model.Credential) CredentialResponse {
	return CredentialResponse{
		Username:    c.Username,
		HasPassword: c.Password != "",
	}
}

// toProfileResponse converts a domain Profile to its masked JSON representation.
func toProfileResponse(p model.Profile) ProfileResponse {
	last4 := p.Card.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return ProfileResponse{
		FullName:      p.FullName,
		WorkPhone:     p.WorkPhone,
		WorkEmail:     p.WorkEmail,
		PersonalEmail: p.PersonalEmail,
		CardLast4:     last4,
		CardExpiry:    p.Card.Expiry,
		HasCardCode:   p.Card.SecurityCode != "",
	}
}
