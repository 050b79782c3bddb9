package entities

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionEventType represents the type of prescription lifecycle event
type PrescriptionEventType string

const (
	PrescriptionEventGenerated PrescriptionEventType = "prescription_generated"
	PrescriptionEventBlocked   PrescriptionEventType = "prescription_blocked"
)

// PrescriptionEvent represents a prescription lifecycle event published to
// downstream consumers (notifications, analytics).
type PrescriptionEvent struct {
	ID             string                 `json:"id"`
	PrescriptionID string                 `json:"prescription_id,omitempty"`
	EventType      PrescriptionEventType  `json:"event_type"`
	Goal           string                 `json:"goal"`
	Timestamp      time.Time              `json:"timestamp"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// NewPrescriptionEvent creates a new prescription event
func NewPrescriptionEvent(prescriptionID string, eventType PrescriptionEventType, goal string, details map[string]interface{}) *PrescriptionEvent {
	return &PrescriptionEvent{
		ID:             uuid.NewString(),
		PrescriptionID: prescriptionID,
		EventType:      eventType,
		Goal:           goal,
		Timestamp:      time.Now(),
		Details:        details,
	}
}
