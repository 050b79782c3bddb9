package providers

import (
	"context"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// prescription lifecycle events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.PrescriptionEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.PrescriptionEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants for prescription events
const (
	// EventChannelPrescriptions is the channel for all prescription events
	EventChannelPrescriptions = "prescription:events"

	// EventChannelGoalPrefix is the prefix for goal-specific channels
	EventChannelGoalPrefix = "prescription:goal:"
)

// GetGoalChannel returns the channel name for a specific goal
func GetGoalChannel(goal string) string {
	return EventChannelGoalPrefix + goal
}
