package entities

import "time"

// DoseType tags which dose strategy produced a scheduled dose
type DoseType string

const (
	DoseOptimal          DoseType = "OPTIMAL"
	DoseMinimumEffective DoseType = "MINIMUM_EFFECTIVE"
	DoseUpperLimit       DoseType = "SAFE_UPPER_LIMIT"
)

// ScheduledSupplement is one dosed, scheduled entry in a prescription stack
type ScheduledSupplement struct {
	SupplementID         string   `json:"supplement_id"`
	Name                 string   `json:"name"`
	Dose                 float64  `json:"dose"`
	MinimumEffectiveDose float64  `json:"minimum_effective_dose"`
	SafeUpperLimit       float64  `json:"safe_upper_limit"`
	Unit                 string   `json:"unit"`
	Timing               string   `json:"timing"`
	Cycling              string   `json:"cycling,omitempty"`
	DoseType             DoseType `json:"dose_type"`
	Score                int      `json:"score"`
	Reasoning            string   `json:"reasoning,omitempty"`
	Warnings             []string `json:"warnings,omitempty"`
}

// Stacks holds the per-time-of-day supplement groups
type Stacks struct {
	Morning   []ScheduledSupplement `json:"morning"`
	Afternoon []ScheduledSupplement `json:"afternoon"`
	Evening   []ScheduledSupplement `json:"evening"`
}

// All returns every scheduled supplement across the three stacks.
func (s *Stacks) All() []ScheduledSupplement {
	out := make([]ScheduledSupplement, 0, len(s.Morning)+len(s.Afternoon)+len(s.Evening))
	out = append(out, s.Morning...)
	out = append(out, s.Afternoon...)
	out = append(out, s.Evening...)
	return out
}

// Summary holds the prescription headline data
type Summary struct {
	GoalLabel     string    `json:"goal_label"`
	TopPriorities []string  `json:"top_priorities"`
	PathwayFocus  []string  `json:"pathway_focus,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Lifestyle holds the static recommendation lists per category
type Lifestyle struct {
	Sleep    []string `json:"sleep"`
	Diet     []string `json:"diet"`
	Training []string `json:"training"`
	Stress   []string `json:"stress"`
}

// RedFlag is a severity-tagged message surfaced alongside the prescription
type RedFlag struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ShoppingItem is a 30-day supply estimate for one supplement
type ShoppingItem struct {
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// Prescription is the final generated output. It is produced once per
// generation request and immutable thereafter (persisted as a snapshot).
type Prescription struct {
	ID           string         `json:"id" db:"id"`
	Summary      Summary        `json:"summary" db:"-"`
	Stacks       Stacks         `json:"stacks" db:"-"`
	Lifestyle    Lifestyle      `json:"lifestyle" db:"-"`
	RedFlags     []RedFlag      `json:"red_flags,omitempty" db:"-"`
	ShoppingList []ShoppingItem `json:"shopping_list,omitempty" db:"-"`
	Warnings     []string       `json:"warnings,omitempty" db:"-"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

// GenerationRequest is the core input contract.
type GenerationRequest struct {
	Profile        PatientProfile `json:"patient_profile"`
	Goal           string         `json:"goal"`
	Flags          *ClinicalFlags `json:"clinical_flags,omitempty"`
	BudgetTier     BudgetTier     `json:"budget_tier"`
	SymptomsRating *float64       `json:"symptoms_rating,omitempty"`
}

// SafetySummary reports the overall safety outcome of a generation
type SafetySummary struct {
	IsSafe bool     `json:"is_safe"`
	Issues []string `json:"issues,omitempty"`
}

// GenerationResult is the core output contract. Prescription is nil if and
// only if Errors is non-empty.
type GenerationResult struct {
	Prescription *Prescription `json:"prescription"`
	Errors       []string      `json:"errors,omitempty"`
	Warnings     []string      `json:"warnings,omitempty"`
	Safety       SafetySummary `json:"safety"`
}
