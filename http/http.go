// Package http serves the documentation site: rendered pages, the JSON
// endpoints used by the in-page search, copy and outline features, and a
// static fetcher for reading pages back from a deployed site.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/docsite"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	docsite.EINVALID:   http.StatusBadRequest,
	docsite.ENOTFOUND:  http.StatusNotFound,
	docsite.EINTERNAL:  http.StatusInternalServerError,
	docsite.ECLIPBOARD: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of a failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as JSON with the status matching its code. Internal
// errors are logged and their message is hidden from the client.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code, message := docsite.ErrorCode(err), docsite.ErrorMessage(err)
	if code == docsite.EINTERNAL && logger != nil {
		logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
