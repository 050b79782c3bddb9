package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

func TestResolve_KnownGoal(t *testing.T) {
	svc := NewGoalService()

	resolved, err := svc.Resolve("STRESS_SLEEP")

	require.NoError(t, err)
	assert.Equal(t, "protocol-stress-sleep", resolved.ProtocolID)
	assert.Equal(t, "Stress & Sleep Support", resolved.Label)
	assert.NotEmpty(t, resolved.PathwayFocus)
}

func TestResolve_UnknownGoal(t *testing.T) {
	svc := NewGoalService()

	resolved, err := svc.Resolve("GET_SWOLE")

	assert.Nil(t, resolved)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidGoal))
}

func TestSupportedGoals_SortedAndComplete(t *testing.T) {
	svc := NewGoalService()

	goals := svc.SupportedGoals()

	assert.Equal(t, []string{
		"ATHLETIC_PERFORMANCE",
		"ENERGY_FOCUS",
		"HORMONAL_BALANCE",
		"IMMUNE_SUPPORT",
		"LONGEVITY",
		"STRESS_SLEEP",
	}, goals)
}
