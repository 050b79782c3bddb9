package services

import (
	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
)

// SafetyIssue is one triggered safety finding for a supplement
type SafetyIssue struct {
	SupplementID   string
	SupplementName string
	Severity       entities.Severity
	Action         entities.RuleAction
	DoseMultiplier float64
	Message        string
}

// SafetyReport partitions the assembled stack by safety outcome.
// IsSafeToGenerate is false if and only if at least one hard block exists
// anywhere in the stack.
type SafetyReport struct {
	SafeIDs          []string
	Blocked          []SafetyIssue
	Adjusted         []SafetyIssue
	Warned           []SafetyIssue
	StackWarnings    []string
	IsSafeToGenerate bool
}

// BlockedNames returns the display names of all hard-blocked supplements.
func (r *SafetyReport) BlockedNames() []string {
	names := make([]string, 0, len(r.Blocked))
	for _, issue := range r.Blocked {
		names = append(names, issue.SupplementName)
	}
	return names
}

// SafetyService re-evaluates the assembled stack against the safety rule
// set. This is intentionally redundant with clinical-flag processing: the
// two stages use different rule sets (selection annotations vs. assembled
// interaction/contraindication checks).
type SafetyService struct {
	ruleSet    []*entities.SafetyRule
	stackRules []*entities.StackRule
}

// NewSafetyService creates a safety service with the default rule sets
func NewSafetyService() *SafetyService {
	return &SafetyService{
		ruleSet:    rules.DefaultSafetyRules(),
		stackRules: rules.DefaultStackRules(),
	}
}

// NewSafetyServiceWithRules creates a safety service with explicit rule sets
func NewSafetyServiceWithRules(ruleSet []*entities.SafetyRule, stackRules []*entities.StackRule) *SafetyService {
	return &SafetyService{ruleSet: ruleSet, stackRules: stackRules}
}

// Validate checks every supplement in the assembled stack and then the stack
// as a whole. Each supplement yields at most one outcome; when multiple
// rules match, the strongest action wins (block > adjust > warn).
func (s *SafetyService) Validate(stack []DosedSupplement, profile *entities.PatientProfile, flags *entities.ClinicalFlags) SafetyReport {
	report := SafetyReport{IsSafeToGenerate: true}

	for _, dosed := range stack {
		issue, matched := s.checkSupplement(dosed.Supplement, profile, flags)
		if !matched {
			report.SafeIDs = append(report.SafeIDs, dosed.Supplement.ID)
			continue
		}
		switch issue.Action {
		case entities.ActionHardBlock:
			report.Blocked = append(report.Blocked, issue)
			report.IsSafeToGenerate = false
		case entities.ActionAdjustDose:
			report.Adjusted = append(report.Adjusted, issue)
		default:
			report.Warned = append(report.Warned, issue)
		}
	}

	report.StackWarnings = s.checkStack(stack)

	return report
}

func (s *SafetyService) checkSupplement(supp *entities.Supplement, profile *entities.PatientProfile, flags *entities.ClinicalFlags) (SafetyIssue, bool) {
	var best SafetyIssue
	matched := false

	for _, rule := range s.ruleSet {
		if !rule.Affects(supp) {
			continue
		}
		if !s.triggered(rule, profile, flags) {
			continue
		}
		issue := SafetyIssue{
			SupplementID:   supp.ID,
			SupplementName: supp.Name,
			Severity:       rule.Severity,
			Action:         rule.Action,
			DoseMultiplier: rule.DoseMultiplier,
			Message:        rule.Message,
		}
		if !matched || actionRank(issue.Action) > actionRank(best.Action) {
			best = issue
			matched = true
		}
	}

	return best, matched
}

func (s *SafetyService) triggered(rule *entities.SafetyRule, profile *entities.PatientProfile, flags *entities.ClinicalFlags) bool {
	switch rule.Trigger {
	case entities.TriggerPregnancy:
		return profile.PregnancyPossible()
	case entities.TriggerMedication:
		return flags != nil && matchesAnyText(flags.Medications, rule.Keyword)
	case entities.TriggerCondition:
		return flags != nil && matchesAnyText(flags.Conditions, rule.Keyword)
	case entities.TriggerSymptom:
		return flags != nil && matchesAnyText(flags.SymptomClusters, rule.Keyword)
	default:
		return false
	}
}

func (s *SafetyService) checkStack(stack []DosedSupplement) []string {
	present := make(map[string]bool, len(stack))
	tagCounts := make(map[string]int)
	for _, dosed := range stack {
		present[dosed.Supplement.ID] = true
		for _, tag := range dosed.Supplement.Tags {
			tagCounts[tag]++
		}
	}

	var warnings []string
	for _, rule := range s.stackRules {
		if len(rule.PairIDs) > 0 {
			all := true
			for _, id := range rule.PairIDs {
				if !present[id] {
					all = false
					break
				}
			}
			if all {
				warnings = append(warnings, rule.Message)
			}
			continue
		}
		if rule.Tag != "" && tagCounts[rule.Tag] >= rule.MinCount {
			warnings = append(warnings, rule.Message)
		}
	}
	return warnings
}

func matchesAnyText(texts []string, keyword string) bool {
	for _, text := range texts {
		if rules.MatchesKeyword(text, keyword) {
			return true
		}
	}
	return false
}

func actionRank(action entities.RuleAction) int {
	switch action {
	case entities.ActionHardBlock:
		return 3
	case entities.ActionAdjustDose:
		return 2
	case entities.ActionSoftWarn:
		return 1
	default:
		return 0
	}
}
