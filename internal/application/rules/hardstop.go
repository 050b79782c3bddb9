package rules

import "github.com/nutristack/advisor/backend/internal/domain/entities"

// HardStopRule is an absolute contraindication checked before any supplement
// selection. A match aborts the whole generation with Reason.
type HardStopRule struct {
	Category entities.FlagCategory
	Keywords []string
	Reason   string
}

// DefaultHardStopRules returns the authoritative pre-selection hard-stop set.
// Pregnancy is handled separately because it depends on the requested
// protocol containing herb-class actives, not on flag text.
func DefaultHardStopRules() []HardStopRule {
	return []HardStopRule{
		{
			Category: entities.FlagMedication,
			Keywords: []string{"warfarin", "heparin", "apixaban", "rivaroxaban", "clopidogrel", "anticoagulant", "blood thinner"},
			Reason:   "Anticoagulant medication detected: supplement protocols carry unacceptable bleeding-interaction risk and require specialist supervision.",
		},
		{
			Category: entities.FlagMedication,
			Keywords: []string{"valproate", "carbamazepine", "lamotrigine", "phenytoin", "levetiracetam", "antiepileptic"},
			Reason:   "Antiepileptic medication detected: herb and micronutrient interactions can alter seizure-medication levels.",
		},
		{
			Category: entities.FlagCondition,
			Keywords: []string{"cirrhosis", "hepatitis", "liver failure"},
			Reason:   "Active hepatic disease detected: hepatically metabolized supplements are contraindicated.",
		},
		{
			Category: entities.FlagCondition,
			Keywords: []string{"renal failure", "dialysis", "kidney failure"},
			Reason:   "Severe renal failure detected: renally cleared supplements are contraindicated.",
		},
		{
			Category: entities.FlagLab,
			Keywords: []string{"egfr"},
			Reason:   "Abnormal kidney function labs detected: generation requires clinician review.",
		},
	}
}

// PregnancyHardStopReason is the abort reason when pregnancy is confirmed,
// intended, or unsure and the requested protocol includes herb-class actives.
const PregnancyHardStopReason = "Pregnancy (confirmed, intended, or unsure) combined with herb-class supplements: herbal actives are not established as safe in pregnancy."
