package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
	"github.com/nutristack/advisor/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

// PrescriptionAdapter implements PrescriptionRepository. Generated
// prescriptions are stored as write-once document snapshots together with
// the request that produced them.
type PrescriptionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPrescriptionAdapter creates a new prescription adapter
func NewPrescriptionAdapter(client *postgres.Client) *PrescriptionAdapter {
	return &PrescriptionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var _ repositories.PrescriptionRepository = (*PrescriptionAdapter)(nil)

// Save stores a generated prescription snapshot with its request metadata
// and returns the stored-record id.
func (a *PrescriptionAdapter) Save(ctx context.Context, prescription *entities.Prescription, request *entities.GenerationRequest) (string, error) {
	if prescription.ID == "" {
		prescription.ID = uuid.NewString()
	}

	document, err := json.Marshal(prescription)
	if err != nil {
		return "", apperrors.NewInternalError("failed to marshal prescription", err)
	}
	requestData, err := json.Marshal(request)
	if err != nil {
		return "", apperrors.NewInternalError("failed to marshal generation request", err)
	}

	record := goqu.Record{
		"id":          prescription.ID,
		"goal":        request.Goal,
		"budget_tier": string(request.BudgetTier),
		"request":     requestData,
		"document":    document,
		"created_at":  time.Now(),
	}

	query, args, err := a.db.Insert("prescriptions").Rows(record).ToSQL()
	if err != nil {
		return "", apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return "", apperrors.NewInternalError("failed to save prescription", err)
	}

	return prescription.ID, nil
}

// GetByID retrieves a stored prescription snapshot
func (a *PrescriptionAdapter) GetByID(ctx context.Context, id string) (*entities.Prescription, error) {
	query, args, err := a.db.Select("document").
		From("prescriptions").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	var document []byte
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("prescription with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get prescription", err)
	}

	prescription := &entities.Prescription{}
	if err := json.Unmarshal(document, prescription); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal prescription", err)
	}

	return prescription, nil
}
