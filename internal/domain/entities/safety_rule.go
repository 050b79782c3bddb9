package entities

// TriggerType identifies what kind of request data a safety rule matches
type TriggerType string

const (
	TriggerMedication TriggerType = "MEDICATION"
	TriggerCondition  TriggerType = "CONDITION"
	TriggerSymptom    TriggerType = "SYMPTOM"
	TriggerPregnancy  TriggerType = "PREGNANCY"
	TriggerStack      TriggerType = "STACK"
)

// Severity represents how serious a triggered rule is
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// RuleAction represents what a triggered rule does to the affected supplements
type RuleAction string

const (
	ActionHardBlock  RuleAction = "HARD_BLOCK"
	ActionSoftWarn   RuleAction = "SOFT_WARN"
	ActionAdjustDose RuleAction = "ADJUST_DOSE"
	ActionRemove     RuleAction = "REMOVE"
	ActionAutoAdd    RuleAction = "AUTO_ADD"
)

// SafetyRule is a first-class rule record. A single generic matcher evaluates
// the whole rule set, so adding a rule is a data insertion, not a code change.
//
// A rule affects supplements either by catalog id (SupplementIDs) or by
// property tag (SupplementTag); exactly one of the two should be set.
// Keyword is matched against flag text case-insensitively by substring.
type SafetyRule struct {
	ID             string      `json:"id" db:"id"`
	Trigger        TriggerType `json:"trigger" db:"trigger_type"`
	Keyword        string      `json:"keyword" db:"keyword"`
	SupplementIDs  []string    `json:"supplement_ids,omitempty" db:"-"`
	SupplementTag  string      `json:"supplement_tag,omitempty" db:"supplement_tag"`
	Severity       Severity    `json:"severity" db:"severity"`
	Action         RuleAction  `json:"action" db:"action"`
	DoseMultiplier float64     `json:"dose_multiplier,omitempty" db:"dose_multiplier"`
	Message        string      `json:"message" db:"message"`
}

// Affects reports whether the rule applies to the given supplement.
func (r *SafetyRule) Affects(s *Supplement) bool {
	if r.SupplementTag != "" && s.HasTag(r.SupplementTag) {
		return true
	}
	for _, id := range r.SupplementIDs {
		if id == s.ID {
			return true
		}
	}
	return false
}

// StackRule is a stack-level safety rule evaluated against the assembled
// stack as a whole, independent of any single supplement. PairIDs triggers
// when every listed catalog id is present; Tag with MinCount triggers when
// at least MinCount supplements in the stack carry the tag.
type StackRule struct {
	ID       string   `json:"id"`
	PairIDs  []string `json:"pair_ids,omitempty"`
	Tag      string   `json:"tag,omitempty"`
	MinCount int      `json:"min_count,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}
