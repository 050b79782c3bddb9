package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
	"github.com/nutristack/advisor/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

var supplementColumns = []interface{}{
	"id", "name", "dose_min", "dose_typical", "dose_max", "dose_unit",
	"gender_modifiers", "age_modifiers", "base_priority", "evidence",
	"tier", "tags", "cost_per_unit", "is_active", "created_at", "updated_at",
}

// SupplementAdapter implements SupplementRepository
type SupplementAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSupplementAdapter creates a new supplement adapter
func NewSupplementAdapter(client *postgres.Client) *SupplementAdapter {
	return &SupplementAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var _ repositories.SupplementRepository = (*SupplementAdapter)(nil)

// GetByID retrieves a supplement by catalog id
func (a *SupplementAdapter) GetByID(ctx context.Context, id string) (*entities.Supplement, error) {
	query, args, err := a.db.Select(supplementColumns...).
		From("supplements").
		Where(goqu.Ex{"id": id, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	supplement, err := scanSupplement(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("supplement with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get supplement", err)
	}

	return supplement, nil
}

// GetByIDs retrieves multiple supplements by their catalog ids
func (a *SupplementAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Supplement, error) {
	if len(ids) == 0 {
		return []*entities.Supplement{}, nil
	}

	query, args, err := a.db.Select(supplementColumns...).
		From("supplements").
		Where(goqu.Ex{"id": ids, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.querySupplements(ctx, query, args...)
}

// List retrieves all active catalog entries
func (a *SupplementAdapter) List(ctx context.Context) ([]*entities.Supplement, error) {
	query, args, err := a.db.Select(supplementColumns...).
		From("supplements").
		Where(goqu.Ex{"is_active": true}).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	return a.querySupplements(ctx, query, args...)
}

// Create inserts a catalog entry; used by the seed script, not the engine.
func (a *SupplementAdapter) Create(ctx context.Context, supplement *entities.Supplement) error {
	genderModifiers, err := json.Marshal(supplement.GenderModifiers)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal gender modifiers", err)
	}
	ageModifiers, err := json.Marshal(supplement.AgeModifiers)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal age modifiers", err)
	}

	now := time.Now()
	record := goqu.Record{
		"id":               supplement.ID,
		"name":             supplement.Name,
		"dose_min":         supplement.Dose.Min,
		"dose_typical":     supplement.Dose.Typical,
		"dose_max":         supplement.Dose.Max,
		"dose_unit":        supplement.Dose.Unit,
		"gender_modifiers": genderModifiers,
		"age_modifiers":    ageModifiers,
		"base_priority":    supplement.BasePriority,
		"evidence":         string(supplement.Evidence),
		"tier":             string(supplement.Tier),
		"tags":             pq.Array(supplement.Tags),
		"cost_per_unit":    supplement.CostPerUnit,
		"is_active":        supplement.IsActive,
		"created_at":       now,
		"updated_at":       now,
	}

	query, args, err := a.db.Insert("supplements").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create supplement", err)
	}

	return nil
}

func (a *SupplementAdapter) querySupplements(ctx context.Context, query string, args ...interface{}) ([]*entities.Supplement, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query supplements", err)
	}
	defer rows.Close()

	var supplements []*entities.Supplement
	for rows.Next() {
		supplement, err := scanSupplement(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan supplement", err)
		}
		supplements = append(supplements, supplement)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating supplements", err)
	}

	return supplements, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSupplement(row rowScanner) (*entities.Supplement, error) {
	supplement := &entities.Supplement{}
	var genderModifiers, ageModifiers []byte
	var evidence, tier string

	err := row.Scan(
		&supplement.ID,
		&supplement.Name,
		&supplement.Dose.Min,
		&supplement.Dose.Typical,
		&supplement.Dose.Max,
		&supplement.Dose.Unit,
		&genderModifiers,
		&ageModifiers,
		&supplement.BasePriority,
		&evidence,
		&tier,
		pq.Array(&supplement.Tags),
		&supplement.CostPerUnit,
		&supplement.IsActive,
		&supplement.CreatedAt,
		&supplement.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(genderModifiers) > 0 {
		if err := json.Unmarshal(genderModifiers, &supplement.GenderModifiers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal gender modifiers: %w", err)
		}
	}
	if len(ageModifiers) > 0 {
		if err := json.Unmarshal(ageModifiers, &supplement.AgeModifiers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal age modifiers: %w", err)
		}
	}
	supplement.Evidence = entities.EvidenceLevel(evidence)
	supplement.Tier = entities.BudgetTier(tier)

	return supplement, nil
}
