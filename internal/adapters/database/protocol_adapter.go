package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
	"github.com/nutristack/advisor/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

var protocolColumns = []interface{}{
	"id", "goal", "label", "pathway_focus", "core_ids", "optional_ids",
	"created_at", "updated_at",
}

// ProtocolAdapter implements ProtocolRepository
type ProtocolAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProtocolAdapter creates a new protocol adapter
func NewProtocolAdapter(client *postgres.Client) *ProtocolAdapter {
	return &ProtocolAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var _ repositories.ProtocolRepository = (*ProtocolAdapter)(nil)

// GetByGoal retrieves the protocol definition for a goal
func (a *ProtocolAdapter) GetByGoal(ctx context.Context, goal string) (*entities.Protocol, error) {
	query, args, err := a.db.Select(protocolColumns...).
		From("protocols").
		Where(goqu.Ex{"goal": goal}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	protocol, err := scanProtocol(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("protocol for goal %s not found", goal))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get protocol", err)
	}

	return protocol, nil
}

// List retrieves all protocol definitions
func (a *ProtocolAdapter) List(ctx context.Context) ([]*entities.Protocol, error) {
	query, args, err := a.db.Select(protocolColumns...).
		From("protocols").
		Order(goqu.I("goal").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list protocols", err)
	}
	defer rows.Close()

	var protocols []*entities.Protocol
	for rows.Next() {
		protocol, err := scanProtocol(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan protocol", err)
		}
		protocols = append(protocols, protocol)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating protocols", err)
	}

	return protocols, nil
}

// Create inserts a protocol definition; used by the seed script.
func (a *ProtocolAdapter) Create(ctx context.Context, protocol *entities.Protocol) error {
	now := time.Now()
	record := goqu.Record{
		"id":            protocol.ID,
		"goal":          protocol.Goal,
		"label":         protocol.Label,
		"pathway_focus": pq.Array(protocol.PathwayFocus),
		"core_ids":      pq.Array(protocol.CoreIDs),
		"optional_ids":  pq.Array(protocol.OptionalIDs),
		"created_at":    now,
		"updated_at":    now,
	}

	query, args, err := a.db.Insert("protocols").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create protocol", err)
	}

	return nil
}

func scanProtocol(row rowScanner) (*entities.Protocol, error) {
	protocol := &entities.Protocol{}
	err := row.Scan(
		&protocol.ID,
		&protocol.Goal,
		&protocol.Label,
		pq.Array(&protocol.PathwayFocus),
		pq.Array(&protocol.CoreIDs),
		pq.Array(&protocol.OptionalIDs),
		&protocol.CreatedAt,
		&protocol.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return protocol, nil
}
