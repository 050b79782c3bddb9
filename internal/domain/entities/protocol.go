package entities

import "time"

// Protocol represents the supplement bundle associated with a goal. Supplied
// by the catalog collaborator; the engine only reads it.
type Protocol struct {
	ID           string    `json:"id" db:"id"`
	Goal         string    `json:"goal" db:"goal"`
	Label        string    `json:"label" db:"label"`
	PathwayFocus []string  `json:"pathway_focus,omitempty" db:"-"`
	CoreIDs      []string  `json:"core_supplement_ids" db:"-"`
	OptionalIDs  []string  `json:"optional_supplement_ids" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
