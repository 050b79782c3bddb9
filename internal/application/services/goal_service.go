package services

import (
	"sort"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

// ResolvedGoal is the output of goal resolution
type ResolvedGoal struct {
	Goal         string
	ProtocolID   string
	Label        string
	PathwayFocus []string
}

// GoalService validates goal tokens and maps them onto protocol identities
type GoalService struct{}

// NewGoalService creates a new goal service
func NewGoalService() *GoalService {
	return &GoalService{}
}

// Resolve validates the goal token against the fixed enumeration. An
// unrecognized token fails before any other pipeline stage runs.
func (s *GoalService) Resolve(goal string) (*ResolvedGoal, error) {
	def, ok := rules.Goals[goal]
	if !ok {
		return nil, apperrors.NewInvalidGoalError(goal)
	}
	return &ResolvedGoal{
		Goal:         goal,
		ProtocolID:   def.ProtocolID,
		Label:        def.Label,
		PathwayFocus: def.PathwayFocus,
	}, nil
}

// SupportedGoals returns the goal enumeration in sorted order.
func (s *GoalService) SupportedGoals() []string {
	goals := make([]string, 0, len(rules.Goals))
	for g := range rules.Goals {
		goals = append(goals, g)
	}
	sort.Strings(goals)
	return goals
}
