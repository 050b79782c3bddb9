package handlers

import (
	"net/http"

	"github.com/nutristack/advisor/backend/internal/application/services"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

// CatalogHandler handles catalog and protocol read requests
type CatalogHandler struct {
	supplementRepo repositories.SupplementRepository
	protocolRepo   repositories.ProtocolRepository
	goals          *services.GoalService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(supplementRepo repositories.SupplementRepository, protocolRepo repositories.ProtocolRepository, goals *services.GoalService) *CatalogHandler {
	return &CatalogHandler{
		supplementRepo: supplementRepo,
		protocolRepo:   protocolRepo,
		goals:          goals,
	}
}

// ListSupplements handles GET /api/supplements
func (h *CatalogHandler) ListSupplements(w http.ResponseWriter, r *http.Request) {
	supplements, err := h.supplementRepo.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list supplements")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"supplements": supplements,
		"count":       len(supplements),
	})
}

// ListGoals handles GET /api/goals
func (h *CatalogHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"goals": h.goals.SupportedGoals(),
	})
}

// GetProtocol handles GET /api/protocols/{goal}
func (h *CatalogHandler) GetProtocol(w http.ResponseWriter, r *http.Request) {
	goal := r.PathValue("goal")
	if goal == "" {
		respondWithError(w, http.StatusBadRequest, "goal is required")
		return
	}

	if _, err := h.goals.Resolve(goal); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	protocol, err := h.protocolRepo.GetByGoal(r.Context(), goal)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			respondWithError(w, http.StatusNotFound, "protocol not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to get protocol")
		return
	}

	respondWithJSON(w, http.StatusOK, protocol)
}
