package services

import (
	"context"
	"sync"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ClinicalAnnotations is the accumulated output of clinical-flag processing.
// It annotates the request for later stages; nothing is removed from the
// catalog here.
type ClinicalAnnotations struct {
	// AutoAddIDs are catalog ids to add to the candidate pool, in rule order.
	AutoAddIDs []string

	// BlockedIDs are catalog ids excluded from selection, in rule order.
	BlockedIDs []string

	// DoseAdjustments maps catalog id to the product of all matched
	// per-supplement multipliers.
	DoseAdjustments map[string]float64

	// TagAdjustments maps a property tag to the product of all matched
	// tag-level multipliers.
	TagAdjustments map[string]float64

	Warnings []string
}

// IsBlocked reports whether the catalog id was blocked by a matched rule.
func (a *ClinicalAnnotations) IsBlocked(id string) bool {
	for _, blocked := range a.BlockedIDs {
		if blocked == id {
			return true
		}
	}
	return false
}

// MultiplierFor returns the combined clinical dose multiplier for a supplement.
func (a *ClinicalAnnotations) MultiplierFor(s *entities.Supplement) float64 {
	m := 1.0
	if adj, ok := a.DoseAdjustments[s.ID]; ok {
		m *= adj
	}
	for tag, adj := range a.TagAdjustments {
		if s.HasTag(tag) {
			m *= adj
		}
	}
	return m
}

var (
	unmatchedFlagCounterOnce sync.Once
	unmatchedFlagCounter     metric.Int64Counter
)

// ClinicalFlagService derives auto-add/block lists, dose multipliers and
// warnings from free-text clinical flags using the rule-record set.
type ClinicalFlagService struct {
	rules []rules.ClinicalRule
}

// NewClinicalFlagService creates a service with the default clinical rules
func NewClinicalFlagService() *ClinicalFlagService {
	return &ClinicalFlagService{rules: rules.DefaultClinicalRules()}
}

// NewClinicalFlagServiceWithRules creates a service with an explicit rule set
func NewClinicalFlagServiceWithRules(ruleSet []rules.ClinicalRule) *ClinicalFlagService {
	return &ClinicalFlagService{rules: ruleSet}
}

// Process evaluates every rule against every flag entry. Rules are additive;
// duplicate auto-add/block ids and repeated warnings are deduplicated. Flag
// entries matching no rule at all are counted for rule-coverage monitoring.
func (s *ClinicalFlagService) Process(ctx context.Context, flags *entities.ClinicalFlags) *ClinicalAnnotations {
	ann := &ClinicalAnnotations{
		DoseAdjustments: make(map[string]float64),
		TagAdjustments:  make(map[string]float64),
	}
	if flags == nil {
		return ann
	}

	addedIDs := make(map[string]struct{})
	blockedIDs := make(map[string]struct{})
	seenWarnings := make(map[string]struct{})
	matchedRules := make(map[string]struct{})

	for _, entry := range flags.All() {
		entryMatched := false
		for _, rule := range s.rules {
			if rule.Category != entry.Category {
				continue
			}
			if !rules.MatchesAny(entry.Text, rule.Keywords) {
				continue
			}
			entryMatched = true

			// A rule matching multiple flag entries applies once.
			if _, done := matchedRules[rule.ID]; done {
				continue
			}
			matchedRules[rule.ID] = struct{}{}

			for _, id := range rule.AutoAddIDs {
				if _, ok := addedIDs[id]; !ok {
					addedIDs[id] = struct{}{}
					ann.AutoAddIDs = append(ann.AutoAddIDs, id)
				}
			}
			for _, id := range rule.BlockIDs {
				if _, ok := blockedIDs[id]; !ok {
					blockedIDs[id] = struct{}{}
					ann.BlockedIDs = append(ann.BlockedIDs, id)
				}
			}
			for id, mult := range rule.DoseAdjustments {
				if existing, ok := ann.DoseAdjustments[id]; ok {
					ann.DoseAdjustments[id] = existing * mult
				} else {
					ann.DoseAdjustments[id] = mult
				}
			}
			if rule.DoseAdjustTag != "" {
				if existing, ok := ann.TagAdjustments[rule.DoseAdjustTag]; ok {
					ann.TagAdjustments[rule.DoseAdjustTag] = existing * rule.TagMultiplier
				} else {
					ann.TagAdjustments[rule.DoseAdjustTag] = rule.TagMultiplier
				}
			}
			if rule.Warning != "" {
				if _, ok := seenWarnings[rule.Warning]; !ok {
					seenWarnings[rule.Warning] = struct{}{}
					ann.Warnings = append(ann.Warnings, rule.Warning)
				}
			}
		}

		if !entryMatched {
			recordUnmatchedFlag(ctx, entry)
		}
	}

	return ann
}

func initUnmatchedFlagCounter() {
	meter := otel.Meter("github.com/nutristack/advisor/backend/clinical_flags")
	counter, err := meter.Int64Counter(
		"clinical.flag.unmatched.count",
		metric.WithDescription("Count of clinical flag entries matching no rule"),
	)
	if err == nil {
		unmatchedFlagCounter = counter
	}
}

func recordUnmatchedFlag(ctx context.Context, entry entities.FlagEntry) {
	unmatchedFlagCounterOnce.Do(initUnmatchedFlagCounter)
	if unmatchedFlagCounter == nil {
		return
	}
	unmatchedFlagCounter.Add(
		ctx,
		1,
		metric.WithAttributes(attribute.String("flag.category", string(entry.Category))),
	)
}
