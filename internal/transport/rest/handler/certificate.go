package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"certpoints/internal/model"
	"certpoints/internal/service"
	"certpoints/internal/transport/rest/middleware"
)

// multipart overhead allowed on top of the file limit
const formOverhead = 1 << 20

// CertificateHandler handles upload, review and leaderboard endpoints
type CertificateHandler struct {
	certSvc  *service.CertificateService
	maxBytes int64
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(certSvc *service.CertificateService, maxBytes int64) *CertificateHandler {
	return &CertificateHandler{
		certSvc:  certSvc,
		maxBytes: maxBytes,
	}
}

// Upload handles POST /v1/certificates (multipart field "certificate")
func (h *CertificateHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+formOverhead)
	file, header, err := r.FormFile("certificate")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, service.ErrFileTooLarge.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	who := service.Uploader{ID: claims.UserID, Name: claims.Name, Class: claims.Class}
	cert, err := h.certSvc.Upload(r.Context(), who, header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, cert)
}

// List handles GET /v1/certificates
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	certs, err := h.certSvc.List(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, certs)
}

// Summary handles GET /v1/certificates/summary
func (h *CertificateHandler) Summary(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	summary, err := h.certSvc.Summary(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// ListByClass handles GET /v1/certificates/class/{className}
func (h *CertificateHandler) ListByClass(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certSvc.ListByClass(r.Context(), mux.Vars(r)["className"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, certs)
}

// ReviewRequest is the request body for reviewing a certificate
type ReviewRequest struct {
	Status        model.CertificateStatus `json:"status"`
	PointsAwarded *int                    `json:"pointsAwarded,omitempty"`
}

// Review handles PUT /v1/certificates/{id}
func (h *CertificateHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cert, err := h.certSvc.Review(r.Context(), mux.Vars(r)["id"], req.Status, req.PointsAwarded)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cert)
}

// Delete handles DELETE /v1/certificates/{id}
func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	if err := h.certSvc.Delete(r.Context(), claims.UserID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "certificate deleted"})
}

// Leaderboard handles GET /v1/classes/{className}/leaderboard?top=N
func (h *CertificateHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	top := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "top must be a positive number")
			return
		}
		top = n
	}

	entries, err := h.certSvc.Leaderboard(r.Context(), mux.Vars(r)["className"], top)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Preview handles POST /v1/score/preview
func (h *CertificateHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req model.ExtractedRecord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.certSvc.Preview(r.Context(), req))
}
