package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/pkg/config"
)

func dosedWithTiming(id, timing string) DosedSupplement {
	return DosedSupplement{
		Supplement: &entities.Supplement{ID: id, Name: id},
		Timing:     timing,
	}
}

func TestSchedule_PlacesByTimingKeyword(t *testing.T) {
	svc := NewScheduleService(config.DefaultEngineConfig())

	stacks := svc.Schedule([]DosedSupplement{
		dosedWithTiming("rhodiola-rosea", "Morning, on an empty stomach"),
		dosedWithTiming("berberine", "Afternoon, before the largest meal"),
		dosedWithTiming("magnesium-glycinate", "Evening, 1-2 hours before bed"),
		dosedWithTiming("melatonin", "30-60 minutes before bed"),
	})

	require.Len(t, stacks.Morning, 1)
	require.Len(t, stacks.Afternoon, 1)
	require.Len(t, stacks.Evening, 2)
	assert.Equal(t, "rhodiola-rosea", stacks.Morning[0].Supplement.ID)
	assert.Equal(t, "berberine", stacks.Afternoon[0].Supplement.ID)
}

func TestSchedule_UnmatchedDrainToMorningThenAfternoon(t *testing.T) {
	svc := NewScheduleService(config.DefaultEngineConfig())

	var dosed []DosedSupplement
	for i := 0; i < 7; i++ {
		dosed = append(dosed, dosedWithTiming(fmt.Sprintf("supp-%d", i), "With meals"))
	}

	stacks := svc.Schedule(dosed)

	// Overflow cap is 5: first five fill the morning, the rest spill over.
	require.Len(t, stacks.Morning, 5)
	require.Len(t, stacks.Afternoon, 2)
	assert.Empty(t, stacks.Evening)
	assert.Equal(t, "supp-0", stacks.Morning[0].Supplement.ID)
	assert.Equal(t, "supp-5", stacks.Afternoon[0].Supplement.ID)
}

func TestSchedule_ExplicitPlacementsCountTowardCap(t *testing.T) {
	svc := NewScheduleService(config.DefaultEngineConfig())

	stacks := svc.Schedule([]DosedSupplement{
		dosedWithTiming("a", "Morning, with breakfast"),
		dosedWithTiming("b", "Morning, with food"),
		dosedWithTiming("c", "Morning, with food"),
		dosedWithTiming("d", "Morning, with food"),
		dosedWithTiming("e", "Morning, with food"),
		dosedWithTiming("f", "With meals"),
	})

	assert.Len(t, stacks.Morning, 5)
	require.Len(t, stacks.Afternoon, 1)
	assert.Equal(t, "f", stacks.Afternoon[0].Supplement.ID)
}

func TestSchedule_OrderPreservedWithinStacks(t *testing.T) {
	svc := NewScheduleService(config.DefaultEngineConfig())

	stacks := svc.Schedule([]DosedSupplement{
		dosedWithTiming("first", "Evening, with food"),
		dosedWithTiming("second", "Evening, before bed"),
		dosedWithTiming("third", "Evening, with food"),
	})

	require.Len(t, stacks.Evening, 3)
	assert.Equal(t, "first", stacks.Evening[0].Supplement.ID)
	assert.Equal(t, "second", stacks.Evening[1].Supplement.ID)
	assert.Equal(t, "third", stacks.Evening[2].Supplement.ID)
}

func TestSchedule_Empty(t *testing.T) {
	svc := NewScheduleService(config.DefaultEngineConfig())

	stacks := svc.Schedule(nil)

	assert.Empty(t, stacks.Morning)
	assert.Empty(t, stacks.Afternoon)
	assert.Empty(t, stacks.Evening)
}
