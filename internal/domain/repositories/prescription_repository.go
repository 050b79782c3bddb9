package repositories

import (
	"context"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
)

// PrescriptionRepository defines the interface for prescription snapshot
// persistence. Snapshots are write-once.
type PrescriptionRepository interface {
	// Save stores a generated prescription snapshot with its request
	// metadata and returns the stored-record id.
	Save(ctx context.Context, prescription *entities.Prescription, request *entities.GenerationRequest) (string, error)

	// GetByID retrieves a stored prescription snapshot
	GetByID(ctx context.Context, id string) (*entities.Prescription, error)
}
