package services

import (
	"strings"

	"github.com/nutristack/advisor/backend/pkg/config"
)

// ScheduledStacks buckets dosed supplements by time of day
type ScheduledStacks struct {
	Morning   []DosedSupplement
	Afternoon []DosedSupplement
	Evening   []DosedSupplement
}

// ScheduleService assigns each dosed supplement to a time-of-day stack.
// Placement is deterministic, order-preserving, greedy; no optimization.
type ScheduleService struct {
	morningCap int
}

// NewScheduleService creates a schedule service from engine configuration
func NewScheduleService(cfg config.EngineConfig) *ScheduleService {
	return &ScheduleService{morningCap: cfg.MorningOverflowCap}
}

// Schedule buckets supplements by substring match against their timing
// strings. Supplements with no time-of-day keyword are drained into the
// morning stack up to the overflow cap, then into the afternoon.
func (s *ScheduleService) Schedule(dosed []DosedSupplement) ScheduledStacks {
	var stacks ScheduledStacks
	var unplaced []DosedSupplement

	for _, d := range dosed {
		switch timeOfDay(d.Timing) {
		case "morning":
			stacks.Morning = append(stacks.Morning, d)
		case "afternoon":
			stacks.Afternoon = append(stacks.Afternoon, d)
		case "evening":
			stacks.Evening = append(stacks.Evening, d)
		default:
			unplaced = append(unplaced, d)
		}
	}

	for _, d := range unplaced {
		if len(stacks.Morning) < s.morningCap {
			stacks.Morning = append(stacks.Morning, d)
		} else {
			stacks.Afternoon = append(stacks.Afternoon, d)
		}
	}

	return stacks
}

func timeOfDay(timing string) string {
	lower := strings.ToLower(timing)
	switch {
	case strings.Contains(lower, "morning") || strings.Contains(timing, "AM"):
		return "morning"
	case strings.Contains(lower, "afternoon") || strings.Contains(lower, "midday"):
		return "afternoon"
	case strings.Contains(lower, "evening") || strings.Contains(lower, "before bed") || strings.Contains(timing, "PM"):
		return "evening"
	default:
		return ""
	}
}
