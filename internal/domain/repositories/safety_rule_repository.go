package repositories

import (
	"context"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
)

// SafetyRuleRepository defines the interface for safety-rule storage.
// Deployments may override the in-code default rule set from the database.
type SafetyRuleRepository interface {
	// List retrieves all active safety rules
	List(ctx context.Context) ([]*entities.SafetyRule, error)

	// Create inserts a new safety rule
	Create(ctx context.Context, rule *entities.SafetyRule) error
}
