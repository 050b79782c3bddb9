package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutristack/advisor/backend/internal/api/handlers"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

type stubGenerator struct {
	result  *entities.GenerationResult
	err     error
	lastReq *entities.GenerationRequest
}

func (s *stubGenerator) Generate(ctx context.Context, req *entities.GenerationRequest) (*entities.GenerationResult, error) {
	s.lastReq = req
	return s.result, s.err
}

type stubPrescriptionStore struct {
	prescriptions map[string]*entities.Prescription
}

func (s *stubPrescriptionStore) Save(ctx context.Context, prescription *entities.Prescription, request *entities.GenerationRequest) (string, error) {
	return prescription.ID, nil
}

func (s *stubPrescriptionStore) GetByID(ctx context.Context, id string) (*entities.Prescription, error) {
	if p, ok := s.prescriptions[id]; ok {
		return p, nil
	}
	return nil, apperrors.NewNotFoundError("prescription not found")
}

func generateBody() string {
	return `{
		"patient_profile": {"age": 34, "sex": "FEMALE", "weight_kg": 62, "height_cm": 168, "menopause_status": "PREMENOPAUSAL"},
		"goal": "STRESS_SLEEP",
		"budget_tier": "ESSENTIAL"
	}`
}

func TestPrescriptionHandler_Generate_Success(t *testing.T) {
	service := &stubGenerator{
		result: &entities.GenerationResult{
			Prescription: &entities.Prescription{ID: "rx-1", CreatedAt: time.Now()},
			Safety:       entities.SafetySummary{IsSafe: true},
		},
	}
	handler := handlers.NewPrescriptionHandler(service, nil)

	req := httptest.NewRequest("POST", "/api/prescriptions/generate", strings.NewReader(generateBody()))
	w := httptest.NewRecorder()

	handler.GeneratePrescription(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, service.lastReq)
	assert.Equal(t, "STRESS_SLEEP", service.lastReq.Goal)

	var response entities.GenerationResult
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	require.NotNil(t, response.Prescription)
	assert.Equal(t, "rx-1", response.Prescription.ID)
}

func TestPrescriptionHandler_Generate_RejectedRequest(t *testing.T) {
	service := &stubGenerator{
		result: &entities.GenerationResult{
			Errors: []string{"Generation blocked: anticoagulant therapy detected"},
			Safety: entities.SafetySummary{IsSafe: false},
		},
	}
	handler := handlers.NewPrescriptionHandler(service, nil)

	req := httptest.NewRequest("POST", "/api/prescriptions/generate", strings.NewReader(generateBody()))
	w := httptest.NewRecorder()

	handler.GeneratePrescription(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response entities.GenerationResult
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Nil(t, response.Prescription)
	assert.NotEmpty(t, response.Errors)
}

func TestPrescriptionHandler_Generate_InvalidPayload(t *testing.T) {
	handler := handlers.NewPrescriptionHandler(&stubGenerator{}, nil)

	req := httptest.NewRequest("POST", "/api/prescriptions/generate", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.GeneratePrescription(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrescriptionHandler_Generate_InternalError(t *testing.T) {
	service := &stubGenerator{
		err: apperrors.NewInternalError("failed to load catalog", nil),
	}
	handler := handlers.NewPrescriptionHandler(service, nil)

	req := httptest.NewRequest("POST", "/api/prescriptions/generate", strings.NewReader(generateBody()))
	w := httptest.NewRecorder()

	handler.GeneratePrescription(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPrescriptionHandler_Get_Found(t *testing.T) {
	store := &stubPrescriptionStore{
		prescriptions: map[string]*entities.Prescription{
			"rx-7": {ID: "rx-7"},
		},
	}
	handler := handlers.NewPrescriptionHandler(&stubGenerator{}, store)

	req := httptest.NewRequest("GET", "/api/prescriptions/rx-7", nil)
	req.SetPathValue("id", "rx-7")
	w := httptest.NewRecorder()

	handler.GetPrescription(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entities.Prescription
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "rx-7", response.ID)
}

func TestPrescriptionHandler_Get_NotFound(t *testing.T) {
	store := &stubPrescriptionStore{prescriptions: map[string]*entities.Prescription{}}
	handler := handlers.NewPrescriptionHandler(&stubGenerator{}, store)

	req := httptest.NewRequest("GET", "/api/prescriptions/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetPrescription(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrescriptionHandler_Get_StorageNotConfigured(t *testing.T) {
	handler := handlers.NewPrescriptionHandler(&stubGenerator{}, nil)

	req := httptest.NewRequest("GET", "/api/prescriptions/rx-1", nil)
	req.SetPathValue("id", "rx-1")
	w := httptest.NewRecorder()

	handler.GetPrescription(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
