package services

import (
	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
)

// ScreeningResult reports whether an absolute contraindication was found
type ScreeningResult struct {
	IsHardStop bool
	Reason     string
}

// ScreeningService is the pre-selection hard-stop gate. It short-circuits
// the whole pipeline; it is not a per-supplement filter.
type ScreeningService struct {
	hardStops []rules.HardStopRule
}

// NewScreeningService creates a screening service with the default rule set
func NewScreeningService() *ScreeningService {
	return &ScreeningService{hardStops: rules.DefaultHardStopRules()}
}

// Screen scans clinical flags and the pregnancy status for absolute
// contraindications. The first match wins; generation aborts with its reason.
func (s *ScreeningService) Screen(profile *entities.PatientProfile, flags *entities.ClinicalFlags, protocol *entities.Protocol, catalog map[string]*entities.Supplement) ScreeningResult {
	if profile.PregnancyPossible() && protocolHasHerbs(protocol, catalog) {
		return ScreeningResult{IsHardStop: true, Reason: rules.PregnancyHardStopReason}
	}

	for _, entry := range flags.All() {
		for _, rule := range s.hardStops {
			if rule.Category != entry.Category {
				continue
			}
			if rules.MatchesAny(entry.Text, rule.Keywords) {
				return ScreeningResult{IsHardStop: true, Reason: rule.Reason}
			}
		}
	}

	return ScreeningResult{}
}

func protocolHasHerbs(protocol *entities.Protocol, catalog map[string]*entities.Supplement) bool {
	for _, id := range protocol.CoreIDs {
		if s, ok := catalog[id]; ok && s.HasTag(entities.TagHerb) {
			return true
		}
	}
	return false
}
