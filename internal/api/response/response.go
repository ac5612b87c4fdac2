package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edvin/cdhplugin/internal/validation"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// PaginatedResponse wraps a list with pagination metadata.
type PaginatedResponse struct {
	Items      any    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// WritePaginated writes a paginated JSON response.
func WritePaginated(w http.ResponseWriter, status int, items any, nextCursor string, hasMore bool) {
	WriteJSON(w, status, PaginatedResponse{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	})
}

// ValidationErrorResponse is the body of a rejected topology.
type ValidationErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	RunID   string `json:"run_id,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteValidationError writes a 422 carrying the code and fields of a typed
// validation failure.
func WriteValidationError(w http.ResponseWriter, runID string, err error) {
	body := ValidationErrorResponse{
		Error: err.Error(),
		RunID: runID,
	}
	var verr validation.Error
	if errors.As(err, &verr) {
		body.Code = verr.Code()
		body.Details = verr
	}
	WriteJSON(w, http.StatusUnprocessableEntity, body)
}
