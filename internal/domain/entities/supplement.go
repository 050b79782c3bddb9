package entities

import "time"

// EvidenceLevel represents the strength of evidence behind a supplement
type EvidenceLevel string

const (
	EvidenceStrong   EvidenceLevel = "STRONG"
	EvidenceModerate EvidenceLevel = "MODERATE"
	EvidenceEmerging EvidenceLevel = "EMERGING"
)

// Score maps the evidence level onto [0,1] for priority scoring.
func (e EvidenceLevel) Score() float64 {
	switch e {
	case EvidenceStrong:
		return 1.0
	case EvidenceModerate:
		return 0.75
	case EvidenceEmerging:
		return 0.5
	default:
		return 0.5
	}
}

// BudgetTier represents a capacity/cost class bounding stack size and dose
type BudgetTier string

const (
	TierEssential     BudgetTier = "ESSENTIAL"
	TierComprehensive BudgetTier = "COMPREHENSIVE"
	TierPremium       BudgetTier = "PREMIUM"
)

// Valid reports whether the tier is a known budget tier.
func (t BudgetTier) Valid() bool {
	switch t {
	case TierEssential, TierComprehensive, TierPremium:
		return true
	}
	return false
}

// DoseRange holds the catalog dose bounds for a supplement
type DoseRange struct {
	Min     float64 `json:"min" db:"dose_min"`
	Typical float64 `json:"typical" db:"dose_typical"`
	Max     float64 `json:"max" db:"dose_max"`
	Unit    string  `json:"unit" db:"dose_unit"`
}

// Supplement property tags consumed by safety and scheduling rules.
// Rules reference tags and catalog ids, never display names.
const (
	TagHerb        = "herb"
	TagAdaptogen   = "adaptogen"
	TagStimulant   = "stimulant"
	TagAntioxidant = "antioxidant"
	TagMagnesium   = "magnesium-source"
	TagSerotonin   = "serotonergic"
	TagMineral     = "mineral"
	TagOmega       = "omega-fatty-acid"
)

// Supplement represents a read-only catalog entry. The engine never creates
// or deletes entries.
type Supplement struct {
	ID              string             `json:"id" db:"id"`
	Name            string             `json:"name" db:"name"`
	Dose            DoseRange          `json:"dose" db:"-"`
	GenderModifiers map[string]float64 `json:"gender_modifiers,omitempty" db:"-"`
	AgeModifiers    map[string]float64 `json:"age_modifiers,omitempty" db:"-"`
	BasePriority    int                `json:"base_priority" db:"base_priority"`
	Evidence        EvidenceLevel      `json:"evidence" db:"evidence"`
	Tier            BudgetTier         `json:"tier" db:"tier"`
	Tags            []string           `json:"tags,omitempty" db:"-"`
	CostPerUnit     float64            `json:"cost_per_unit" db:"cost_per_unit"`
	IsActive        bool               `json:"is_active" db:"is_active"`
	CreatedAt       time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" db:"updated_at"`
}

// HasTag reports whether the supplement carries the given property tag.
func (s *Supplement) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// GenderModifier returns the dose modifier for the given gender bracket,
// defaulting to 1.0 when the bracket is absent.
func (s *Supplement) GenderModifier(bracket string) float64 {
	if m, ok := s.GenderModifiers[bracket]; ok {
		return m
	}
	return 1.0
}

// AgeModifier returns the dose modifier for the given age bracket,
// defaulting to 1.0 when the bracket is absent.
func (s *Supplement) AgeModifier(bracket string) float64 {
	if m, ok := s.AgeModifiers[bracket]; ok {
		return m
	}
	return 1.0
}
