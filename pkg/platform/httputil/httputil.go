// Package httputil writes JSON responses and maps domain errors onto HTTP
// status codes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "menagerie/pkg/domain-errors"
	"menagerie/pkg/platform/sentinel"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into a status and an ErrorResponse. Internal
// failures never leak their message to the client.
func WriteError(w http.ResponseWriter, err error) {
	code := codeFor(err)
	resp := ErrorResponse{Error: string(code)}
	if code != dErrors.CodeInternal {
		resp.ErrorDescription = descriptionFor(err)
	}
	WriteJSON(w, StatusFor(code), resp)
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func codeFor(err error) dErrors.Code {
	if code, ok := dErrors.CodeOf(err); ok {
		// A malformed dataset is a server-side fault, not the caller's.
		if code == dErrors.CodeInvariantViolation {
			return dErrors.CodeInternal
		}
		return code
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.CodeNotFound
	}
	return dErrors.CodeInternal
}

func descriptionFor(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
