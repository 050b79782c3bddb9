package rules

import "github.com/nutristack/advisor/backend/internal/domain/entities"

// DefaultSafetyRules returns the authoritative post-assembly safety rule set.
// These intentionally overlap with the clinical-flag rules: the validator
// re-checks the assembled stack with an independent rule set covering
// contraindications and medication/compound interactions.
func DefaultSafetyRules() []*entities.SafetyRule {
	return []*entities.SafetyRule{
		{
			ID:            "pregnancy-herbs",
			Trigger:       entities.TriggerPregnancy,
			SupplementTag: entities.TagHerb,
			Severity:      entities.SeverityCritical,
			Action:        entities.ActionHardBlock,
			Message:       "Herb-class supplement is not established as safe in pregnancy.",
		},
		{
			ID:            "anticoagulant-bleeding",
			Trigger:       entities.TriggerMedication,
			Keyword:       "warfarin",
			SupplementIDs: []string{IDOmega3, IDTurmeric, IDGinkgo},
			Severity:      entities.SeverityCritical,
			Action:        entities.ActionHardBlock,
			Message:       "Interacts with anticoagulant therapy: additive bleeding risk.",
		},
		{
			ID:            "anticoagulant-bleeding-generic",
			Trigger:       entities.TriggerMedication,
			Keyword:       "anticoagulant",
			SupplementIDs: []string{IDOmega3, IDTurmeric, IDGinkgo},
			Severity:      entities.SeverityCritical,
			Action:        entities.ActionHardBlock,
			Message:       "Interacts with anticoagulant therapy: additive bleeding risk.",
		},
		{
			ID:            "ssri-serotonergic",
			Trigger:       entities.TriggerMedication,
			Keyword:       "ssri",
			SupplementTag: entities.TagSerotonin,
			Severity:      entities.SeverityCritical,
			Action:        entities.ActionHardBlock,
			Message:       "Serotonergic supplement combined with SSRI: serotonin syndrome risk.",
		},
		{
			ID:            "kidney-clearance",
			Trigger:       entities.TriggerCondition,
			Keyword:       "kidney",
			SupplementIDs: []string{IDMagnesium, IDMagnesiumCit, IDCreatine},
			Severity:      entities.SeverityHigh,
			Action:        entities.ActionHardBlock,
			Message:       "Contraindicated in kidney disease: renally cleared.",
		},
		{
			ID:            "liver-metabolism",
			Trigger:       entities.TriggerCondition,
			Keyword:       "liver",
			SupplementIDs: []string{IDBerberine, IDResveratrol},
			Severity:      entities.SeverityHigh,
			Action:        entities.ActionHardBlock,
			Message:       "Contraindicated in liver disease: hepatically metabolized.",
		},
		{
			ID:            "autoimmune-ashwagandha",
			Trigger:       entities.TriggerCondition,
			Keyword:       "autoimmune",
			SupplementIDs: []string{IDAshwagandha},
			Severity:      entities.SeverityMedium,
			Action:        entities.ActionSoftWarn,
			Message:       "Ashwagandha can stimulate immune activity; review with the treating clinician.",
		},
		{
			ID:             "hypotension-adaptogens",
			Trigger:        entities.TriggerCondition,
			Keyword:        "hypotension",
			SupplementTag:  entities.TagAdaptogen,
			Severity:       entities.SeverityMedium,
			Action:         entities.ActionAdjustDose,
			DoseMultiplier: 0.8,
			Message:        "Adaptogen dose reduced: can lower blood pressure further.",
		},
		{
			ID:            "insomnia-stimulant-timing",
			Trigger:       entities.TriggerSymptom,
			Keyword:       "insomnia",
			SupplementTag: entities.TagStimulant,
			Severity:      entities.SeverityLow,
			Action:        entities.ActionSoftWarn,
			Message:       "Stimulating supplement with reported insomnia: take before noon only.",
		},
		{
			ID:            "antibiotic-mineral-absorption",
			Trigger:       entities.TriggerMedication,
			Keyword:       "antibiotic",
			SupplementTag: entities.TagMineral,
			Severity:      entities.SeverityLow,
			Action:        entities.ActionSoftWarn,
			Message:       "Minerals chelate many antibiotics; separate doses by at least 2 hours.",
		},
		{
			ID:            "doxycycline-mineral-absorption",
			Trigger:       entities.TriggerMedication,
			Keyword:       "doxycycline",
			SupplementTag: entities.TagMineral,
			Severity:      entities.SeverityLow,
			Action:        entities.ActionSoftWarn,
			Message:       "Minerals chelate tetracyclines; separate doses by at least 2 hours.",
		},
	}
}

// DefaultStackRules returns the stack-level combination rules.
func DefaultStackRules() []*entities.StackRule {
	return []*entities.StackRule{
		{
			ID:       "adaptogen-pair",
			PairIDs:  []string{IDAshwagandha, IDRhodiola},
			Severity: entities.SeverityMedium,
			Message:  "Ashwagandha and rhodiola together can be overly sedating or destabilizing; monitor response.",
		},
		{
			ID:       "bleeding-pair",
			PairIDs:  []string{IDTurmeric, IDOmega3},
			Severity: entities.SeverityMedium,
			Message:  "Turmeric and omega-3 both mildly thin blood; avoid before surgery.",
		},
		{
			ID:       "magnesium-stacking",
			Tag:      entities.TagMagnesium,
			MinCount: 2,
			Severity: entities.SeverityLow,
			Message:  "Multiple magnesium sources in stack; total elemental magnesium may exceed tolerable intake.",
		},
		{
			ID:       "antioxidant-stacking",
			Tag:      entities.TagAntioxidant,
			MinCount: 3,
			Severity: entities.SeverityLow,
			Message:  "Three or more antioxidant sources; high antioxidant load can blunt training adaptation.",
		},
	}
}
