package rules

import "github.com/nutristack/advisor/backend/internal/domain/entities"

// ClinicalRule derives pipeline annotations from one matched clinical flag.
// Rules are independent and additive: multiple matches can contribute to the
// same supplement, and duplicate auto-add/block entries are deduplicated by
// the processor. A rule never removes anything from the catalog; it only
// annotates the request for later stages.
type ClinicalRule struct {
	ID       string
	Category entities.FlagCategory
	Keywords []string

	// AutoAddIDs are catalog ids to add to the candidate pool.
	AutoAddIDs []string

	// BlockIDs are catalog ids excluded from selection.
	BlockIDs []string

	// DoseAdjustments maps catalog id to a dose multiplier.
	DoseAdjustments map[string]float64

	// DoseAdjustTag applies TagMultiplier to every supplement carrying the tag.
	DoseAdjustTag string
	TagMultiplier float64

	Warning string
}

// DefaultClinicalRules returns the authoritative clinical-flag rule set.
func DefaultClinicalRules() []ClinicalRule {
	return []ClinicalRule{
		{
			ID:         "statin-coq10",
			Category:   entities.FlagMedication,
			Keywords:   []string{"statin", "atorvastatin", "rosuvastatin", "simvastatin"},
			AutoAddIDs: []string{IDCoQ10},
			Warning:    "Statins deplete CoQ10; coenzyme Q10 added to offset myopathy risk.",
		},
		{
			ID:       "ssri-rhodiola",
			Category: entities.FlagMedication,
			Keywords: []string{"ssri", "snri", "sertraline", "fluoxetine", "escitalopram", "venlafaxine", "duloxetine"},
			BlockIDs: []string{IDRhodiola},
			Warning:  "Serotonergic antidepressant detected; rhodiola excluded to avoid additive serotonergic load.",
		},
		{
			ID:         "ppi-absorption",
			Category:   entities.FlagMedication,
			Keywords:   []string{"ppi", "omeprazole", "esomeprazole", "pantoprazole"},
			AutoAddIDs: []string{IDMagnesium, IDB12},
			Warning:    "Proton-pump inhibitors impair magnesium and B12 absorption; both added.",
		},
		{
			ID:         "metformin-b12",
			Category:   entities.FlagMedication,
			Keywords:   []string{"metformin"},
			AutoAddIDs: []string{IDB12},
			Warning:    "Metformin depletes vitamin B12; B12 added.",
		},
		{
			ID:       "levothyroxine-spacing",
			Category: entities.FlagMedication,
			Keywords: []string{"levothyroxine", "thyroxine"},
			Warning:  "Take iron, calcium and magnesium at least 4 hours away from levothyroxine.",
		},
		{
			ID:         "beta-blocker-coq10",
			Category:   entities.FlagMedication,
			Keywords:   []string{"beta blocker", "metoprolol", "atenolol", "bisoprolol"},
			AutoAddIDs: []string{IDCoQ10},
			Warning:    "Beta blockers can lower CoQ10 levels; coenzyme Q10 added.",
		},
		{
			ID:       "kidney-clearance",
			Category: entities.FlagCondition,
			Keywords: []string{"kidney", "renal", "nephropathy"},
			BlockIDs: []string{IDMagnesium, IDMagnesiumCit, IDCreatine},
			Warning:  "Kidney disease detected; magnesium and creatine excluded (renal clearance).",
		},
		{
			ID:       "liver-metabolism",
			Category: entities.FlagCondition,
			Keywords: []string{"liver", "fatty liver", "nafld"},
			BlockIDs: []string{IDBerberine, IDResveratrol},
			Warning:  "Liver condition detected; berberine and resveratrol excluded (hepatic metabolism).",
		},
		{
			ID:       "gerd-turmeric",
			Category: entities.FlagCondition,
			Keywords: []string{"gerd", "reflux", "gastritis"},
			DoseAdjustments: map[string]float64{
				IDTurmeric: 0.5,
			},
			Warning: "Reflux condition detected; turmeric dose halved to limit gastric irritation.",
		},
		{
			ID:       "autoimmune-ashwagandha",
			Category: entities.FlagCondition,
			Keywords: []string{"autoimmune", "hashimoto", "lupus", "rheumatoid", "multiple sclerosis"},
			DoseAdjustments: map[string]float64{
				IDAshwagandha: 0.7,
			},
			Warning: "Autoimmune condition detected; ashwagandha dose reduced and immune-stimulating herbs need clinician review.",
		},
		{
			ID:            "hypotension-adaptogens",
			Category:      entities.FlagCondition,
			Keywords:      []string{"hypotension", "low blood pressure"},
			DoseAdjustTag: entities.TagAdaptogen,
			TagMultiplier: 0.8,
			Warning:       "Low blood pressure detected; adaptogen doses reduced.",
		},
		{
			ID:       "insomnia-stimulants",
			Category: entities.FlagSymptom,
			Keywords: []string{"insomnia", "poor sleep", "sleep disturbance"},
			Warning:  "Sleep disturbance reported; keep stimulating supplements to the morning.",
		},
	}
}
