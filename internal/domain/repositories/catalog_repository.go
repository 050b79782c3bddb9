package repositories

import (
	"context"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
)

// SupplementRepository defines the interface for supplement catalog reads
type SupplementRepository interface {
	// GetByID retrieves a supplement by catalog id
	GetByID(ctx context.Context, id string) (*entities.Supplement, error)

	// GetByIDs retrieves multiple supplements by their catalog ids
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Supplement, error)

	// List retrieves all active catalog entries
	List(ctx context.Context) ([]*entities.Supplement, error)
}

// ProtocolRepository defines the interface for protocol lookups
type ProtocolRepository interface {
	// GetByGoal retrieves the protocol definition for a goal
	GetByGoal(ctx context.Context, goal string) (*entities.Protocol, error)

	// List retrieves all protocol definitions
	List(ctx context.Context) ([]*entities.Protocol, error)
}
