package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutristack/advisor/backend/internal/api/handlers"
	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/application/services"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

type stubCatalog struct {
	supplements []*entities.Supplement
}

func (s *stubCatalog) GetByID(ctx context.Context, id string) (*entities.Supplement, error) {
	for _, sup := range s.supplements {
		if sup.ID == id {
			return sup, nil
		}
	}
	return nil, apperrors.NewNotFoundError("supplement not found")
}

func (s *stubCatalog) GetByIDs(ctx context.Context, ids []string) ([]*entities.Supplement, error) {
	return s.supplements, nil
}

func (s *stubCatalog) List(ctx context.Context) ([]*entities.Supplement, error) {
	return s.supplements, nil
}

type stubProtocols struct {
	protocols map[string]*entities.Protocol
}

func (s *stubProtocols) GetByGoal(ctx context.Context, goal string) (*entities.Protocol, error) {
	if p, ok := s.protocols[goal]; ok {
		return p, nil
	}
	return nil, apperrors.NewNotFoundError("protocol not found")
}

func (s *stubProtocols) List(ctx context.Context) ([]*entities.Protocol, error) {
	out := make([]*entities.Protocol, 0, len(s.protocols))
	for _, p := range s.protocols {
		out = append(out, p)
	}
	return out, nil
}

func TestCatalogHandler_ListSupplements(t *testing.T) {
	catalog := &stubCatalog{supplements: rules.DefaultSupplements()}
	handler := handlers.NewCatalogHandler(catalog, &stubProtocols{}, services.NewGoalService())

	req := httptest.NewRequest("GET", "/api/supplements", nil)
	w := httptest.NewRecorder()

	handler.ListSupplements(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, float64(len(catalog.supplements)), response["count"])
}

func TestCatalogHandler_ListGoals(t *testing.T) {
	handler := handlers.NewCatalogHandler(&stubCatalog{}, &stubProtocols{}, services.NewGoalService())

	req := httptest.NewRequest("GET", "/api/goals", nil)
	w := httptest.NewRecorder()

	handler.ListGoals(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string][]string
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Contains(t, response["goals"], "STRESS_SLEEP")
	assert.Contains(t, response["goals"], "ATHLETIC_PERFORMANCE")
}

func TestCatalogHandler_GetProtocol(t *testing.T) {
	protocols := &stubProtocols{protocols: map[string]*entities.Protocol{
		"STRESS_SLEEP": {ID: "proto-stress-sleep", Goal: "STRESS_SLEEP", Label: "Stress & Sleep"},
	}}
	handler := handlers.NewCatalogHandler(&stubCatalog{}, protocols, services.NewGoalService())

	req := httptest.NewRequest("GET", "/api/protocols/STRESS_SLEEP", nil)
	req.SetPathValue("goal", "STRESS_SLEEP")
	w := httptest.NewRecorder()

	handler.GetProtocol(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entities.Protocol
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "proto-stress-sleep", response.ID)
}

func TestCatalogHandler_GetProtocol_UnknownGoal(t *testing.T) {
	handler := handlers.NewCatalogHandler(&stubCatalog{}, &stubProtocols{}, services.NewGoalService())

	req := httptest.NewRequest("GET", "/api/protocols/BULKING", nil)
	req.SetPathValue("goal", "BULKING")
	w := httptest.NewRecorder()

	handler.GetProtocol(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
