package services

import (
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/pkg/config"
)

// BudgetAllocation holds the trimmed candidate lists for a tier
type BudgetAllocation struct {
	// KeptIDs is the capacity-bounded candidate list, core first, order
	// preserved.
	KeptIDs []string

	// RemovedIDs are candidates that did not fit the tier capacity. They are
	// always surfaced in a warning, never silently dropped.
	RemovedIDs []string
}

// BudgetService trims core/optional candidate lists to the tier capacity
type BudgetService struct {
	capacities map[string]int
}

// NewBudgetService creates a budget service from engine configuration
func NewBudgetService(cfg config.EngineConfig) *BudgetService {
	return &BudgetService{capacities: cfg.TierCapacities}
}

// Capacity returns the stack capacity for a tier, or 0 for unknown tiers.
func (s *BudgetService) Capacity(tier entities.BudgetTier) int {
	return s.capacities[string(tier)]
}

// Allocate keeps as many core ids as fit, then fills remaining capacity from
// optional ids in order. Input order is preserved throughout.
func (s *BudgetService) Allocate(coreIDs, optionalIDs []string, tier entities.BudgetTier) BudgetAllocation {
	capacity := s.Capacity(tier)
	var alloc BudgetAllocation

	for _, id := range coreIDs {
		if len(alloc.KeptIDs) < capacity {
			alloc.KeptIDs = append(alloc.KeptIDs, id)
		} else {
			alloc.RemovedIDs = append(alloc.RemovedIDs, id)
		}
	}
	for _, id := range optionalIDs {
		if len(alloc.KeptIDs) < capacity {
			alloc.KeptIDs = append(alloc.KeptIDs, id)
		} else {
			alloc.RemovedIDs = append(alloc.RemovedIDs, id)
		}
	}

	return alloc
}
