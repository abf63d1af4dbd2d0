package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON failure response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// errorResponse is the standard failure body. Message and Details carry
// diagnostic text for unexpected and delivery failures respectively.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// ReposResponse is the body of the repository listing endpoint.
type ReposResponse struct {
	Success bool               `json:"success"`
	Repos   []model.Repository `json:"repos"`
	Source  string             `json:"source"`
}

// RefreshResponse is the body of the refresh endpoint.
type RefreshResponse struct {
	Success bool               `json:"success"`
	Repos   []model.Repository `json:"repos"`
	Message string             `json:"message"`
}

// ContactRequest is the JSON body accepted by the contact endpoint. Fields
// accept any JSON value; see fieldText for how they become strings.
type ContactRequest struct {
	Name    any `json:"name"`
	Email   any `json:"email"`
	Message any `json:"message"`
}

// ContactResponse is the success body of the contact endpoint.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil(repos []model.Repository) []model.Repository {
	if repos == nil {
		return []model.Repository{}
	}
	return repos
}
