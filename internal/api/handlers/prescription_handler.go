package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

// PrescriptionGenerator defines the handler dependency for generation
type PrescriptionGenerator interface {
	Generate(ctx context.Context, req *entities.GenerationRequest) (*entities.GenerationResult, error)
}

// PrescriptionHandler handles prescription generation requests
type PrescriptionHandler struct {
	service PrescriptionGenerator
	repo    repositories.PrescriptionRepository
}

// NewPrescriptionHandler creates a new prescription handler
func NewPrescriptionHandler(service PrescriptionGenerator, repo repositories.PrescriptionRepository) *PrescriptionHandler {
	return &PrescriptionHandler{
		service: service,
		repo:    repo,
	}
}

// GeneratePrescription handles POST /api/prescriptions/generate
func (h *PrescriptionHandler) GeneratePrescription(w http.ResponseWriter, r *http.Request) {
	var req entities.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			switch appErr.Type {
			case apperrors.ErrorTypeNotFound:
				respondWithError(w, http.StatusNotFound, appErr.Message)
				return
			default:
				respondWithError(w, http.StatusInternalServerError, "failed to generate prescription")
				return
			}
		}
		respondWithError(w, http.StatusInternalServerError, "failed to generate prescription")
		return
	}

	// A rejected request still carries a well-formed result body so the
	// caller can surface the reasons.
	if result.Prescription == nil {
		respondWithJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetPrescription handles GET /api/prescriptions/{id}
func (h *PrescriptionHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondWithError(w, http.StatusServiceUnavailable, "prescription storage is not configured")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "prescription ID is required")
		return
	}

	prescription, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			respondWithError(w, http.StatusNotFound, "prescription not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to get prescription")
		return
	}

	respondWithJSON(w, http.StatusOK, prescription)
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
