package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"certpoints/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusOf maps service errors to HTTP status codes
var statusOf = map[error]int{
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrInvalidToken:         http.StatusUnauthorized,
	service.ErrEmailTaken:           http.StatusConflict,
	service.ErrInvalidAccount:       http.StatusBadRequest,
	service.ErrDuplicateCertificate: http.StatusConflict,
	service.ErrNameMismatch:         http.StatusUnprocessableEntity,
	service.ErrCertificateNotFound:  http.StatusNotFound,
	service.ErrNotOwner:             http.StatusForbidden,
	service.ErrInvalidStatus:        http.StatusBadRequest,
	service.ErrRuleNotFound:         http.StatusNotFound,
	service.ErrFileTooLarge:         http.StatusRequestEntityTooLarge,
}

// writeServiceError renders err with the status its cause calls for.
// Unknown causes are logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  vErr.Error(),
			"fields": vErr.Fields,
		})
		return
	}

	cause := errors.Cause(err)
	if status, ok := statusOf[cause]; ok {
		writeError(w, status, cause.Error())
		return
	}

	log.Printf("Request failed: %+v", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
