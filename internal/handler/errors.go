package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorDetail is the machine-readable payload inside every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON serializes v as the response body with the given status code.
// Encoding failures are logged but not surfaced — the status line has
// already been written by then.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "response encode failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}
}

// notFound writes a 404 with an ErrorResponse. The caller supplies the
// human-readable message (e.g. "coordinate with id 7 not found") because
// the handler is the layer that knows what was being looked up.
func notFound(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusNotFound,
		ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}})
}

// unprocessable writes a 422 with an ErrorResponse for a validation failure,
// whether it was rejected at the request boundary or by the service layer.
func unprocessable(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusUnprocessableEntity,
		ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}})
}

// internalError logs the underlying failure and writes a generic 500 body.
// Backend errors never leak driver details to the client.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "internal error",
		"method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, r, http.StatusInternalServerError,
		ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.CoordinateService.Create: validation error: name is required"
// → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.CoordinateService.Create: validation error: ",
		"validation error: ",
	} {
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
