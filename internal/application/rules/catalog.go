package rules

import "github.com/nutristack/advisor/backend/internal/domain/entities"

// DefaultSupplements returns the reference catalog used by the seed script
// and the engine tests. Production deployments load the catalog from the
// database; ids must match the constants in ids.go.
func DefaultSupplements() []*entities.Supplement {
	return []*entities.Supplement{
		{
			ID:   IDAshwagandha,
			Name: "Ashwagandha",
			Dose: entities.DoseRange{Min: 300, Typical: 600, Max: 1200, Unit: "mg"},
			GenderModifiers: map[string]float64{
				"FEMALE_PREMENOPAUSAL":  1.1,
				"FEMALE_POSTMENOPAUSAL": 1.0,
				"MALE":                  1.0,
			},
			AgeModifiers: map[string]float64{"UNDER_30": 1.0, "30_TO_50": 1.0, "OVER_50": 0.9},
			BasePriority: 85,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierEssential,
			Tags:         []string{entities.TagHerb, entities.TagAdaptogen},
			CostPerUnit:  0.35,
			IsActive:     true,
		},
		{
			ID:           IDMagnesium,
			Name:         "Magnesium Glycinate",
			Dose:         entities.DoseRange{Min: 200, Typical: 400, Max: 600, Unit: "mg"},
			AgeModifiers: map[string]float64{"OVER_50": 1.1},
			BasePriority: 90,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierEssential,
			Tags:         []string{entities.TagMineral, entities.TagMagnesium},
			CostPerUnit:  0.2,
			IsActive:     true,
		},
		{
			ID:           IDMagnesiumCit,
			Name:         "Magnesium Citrate",
			Dose:         entities.DoseRange{Min: 150, Typical: 300, Max: 500, Unit: "mg"},
			BasePriority: 70,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierComprehensive,
			Tags:         []string{entities.TagMineral, entities.TagMagnesium},
			CostPerUnit:  0.15,
			IsActive:     true,
		},
		{
			ID:           IDLTheanine,
			Name:         "L-Theanine",
			Dose:         entities.DoseRange{Min: 100, Typical: 200, Max: 400, Unit: "mg"},
			BasePriority: 75,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierEssential,
			CostPerUnit:  0.25,
			IsActive:     true,
		},
		{
			ID:           IDMelatonin,
			Name:         "Melatonin",
			Dose:         entities.DoseRange{Min: 0.5, Typical: 1, Max: 5, Unit: "mg"},
			AgeModifiers: map[string]float64{"OVER_50": 1.2},
			BasePriority: 60,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierComprehensive,
			CostPerUnit:  0.1,
			IsActive:     true,
		},
		{
			ID:   IDRhodiola,
			Name: "Rhodiola Rosea",
			Dose: entities.DoseRange{Min: 200, Typical: 400, Max: 600, Unit: "mg"},
			GenderModifiers: map[string]float64{
				"FEMALE_PREMENOPAUSAL": 1.05,
			},
			BasePriority: 72,
			Evidence:     entities.EvidenceModerate,
			Tier:         entities.TierComprehensive,
			Tags:         []string{entities.TagHerb, entities.TagAdaptogen, entities.TagStimulant, entities.TagSerotonin},
			CostPerUnit:  0.3,
			IsActive:     true,
		},
		{
			ID:           IDBComplex,
			Name:         "B-Complex",
			Dose:         entities.DoseRange{Min: 0.5, Typical: 1, Max: 2, Unit: "capsule"},
			BasePriority: 68,
			Evidence:     entities.EvidenceModerate,
			Tier:         entities.TierEssential,
			Tags:         []string{entities.TagStimulant},
			CostPerUnit:  0.18,
			IsActive:     true,
		},
		{
			ID:           IDB12,
			Name:         "Vitamin B12",
			Dose:         entities.DoseRange{Min: 250, Typical: 1000, Max: 2000, Unit: "mcg"},
			AgeModifiers: map[string]float64{"OVER_50": 1.2},
			BasePriority: 65,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierEssential,
			CostPerUnit:  0.08,
			IsActive:     true,
		},
		{
			ID:           IDCoQ10,
			Name:         "Coenzyme Q10",
			Dose:         entities.DoseRange{Min: 100, Typical: 200, Max: 400, Unit: "mg"},
			AgeModifiers: map[string]float64{"UNDER_30": 0.8, "OVER_50": 1.2},
			BasePriority: 78,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierComprehensive,
			Tags:         []string{entities.TagAntioxidant},
			CostPerUnit:  0.45,
			IsActive:     true,
		},
		{
			ID:   IDCreatine,
			Name: "Creatine Monohydrate",
			Dose: entities.DoseRange{Min: 3, Typical: 5, Max: 10, Unit: "g"},
			GenderModifiers: map[string]float64{
				"FEMALE_PREMENOPAUSAL":  0.9,
				"FEMALE_POSTMENOPAUSAL": 1.0,
			},
			BasePriority: 88,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierEssential,
			CostPerUnit:  0.12,
			IsActive:     true,
		},
		{
			ID:           IDGinkgo,
			Name:         "Ginkgo Biloba",
			Dose:         entities.DoseRange{Min: 120, Typical: 240, Max: 360, Unit: "mg"},
			AgeModifiers: map[string]float64{"OVER_50": 1.1},
			BasePriority: 55,
			Evidence:     entities.EvidenceEmerging,
			Tier:         entities.TierPremium,
			Tags:         []string{entities.TagHerb, entities.TagAntioxidant},
			CostPerUnit:  0.28,
			IsActive:     true,
		},
		{
			ID:   IDIron,
			Name: "Iron Bisglycinate",
			Dose: entities.DoseRange{Min: 18, Typical: 25, Max: 45, Unit: "mg"},
			GenderModifiers: map[string]float64{
				"FEMALE_PREMENOPAUSAL":  1.3,
				"FEMALE_POSTMENOPAUSAL": 0.7,
				"MALE":                  0.7,
			},
			BasePriority: 62,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierComprehensive,
			Tags:         []string{entities.TagMineral},
			CostPerUnit:  0.14,
			IsActive:     true,
		},
		{
			ID:           IDOmega3,
			Name:         "Omega-3 (EPA/DHA)",
			Dose:         entities.DoseRange{Min: 1, Typical: 2, Max: 4, Unit: "g"},
			BasePriority: 92,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierEssential,
			Tags:         []string{entities.TagOmega},
			CostPerUnit:  0.4,
			IsActive:     true,
		},
		{
			ID:           IDVitaminD3,
			Name:         "Vitamin D3",
			Dose:         entities.DoseRange{Min: 1000, Typical: 2000, Max: 5000, Unit: "IU"},
			AgeModifiers: map[string]float64{"OVER_50": 1.2},
			BasePriority: 95,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierEssential,
			CostPerUnit:  0.06,
			IsActive:     true,
		},
		{
			ID:           IDVitaminC,
			Name:         "Vitamin C",
			Dose:         entities.DoseRange{Min: 250, Typical: 500, Max: 1000, Unit: "mg"},
			BasePriority: 70,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierEssential,
			Tags:         []string{entities.TagAntioxidant},
			CostPerUnit:  0.07,
			IsActive:     true,
		},
		{
			ID:           IDZinc,
			Name:         "Zinc Picolinate",
			Dose:         entities.DoseRange{Min: 15, Typical: 25, Max: 40, Unit: "mg"},
			BasePriority: 74,
			Evidence:     entities.EvidenceStrong,
			Tier:         entities.TierComprehensive,
			Tags:         []string{entities.TagMineral},
			CostPerUnit:  0.09,
			IsActive:     true,
		},
		{
			ID:           IDTurmeric,
			Name:         "Turmeric Curcumin",
			Dose:         entities.DoseRange{Min: 500, Typical: 1000, Max: 2000, Unit: "mg"},
			BasePriority: 76,
			Evidence:     entities.EvidenceModerate,
			Tier:         entities.TierComprehensive,
			Tags:         []string{entities.TagHerb, entities.TagAntioxidant},
			CostPerUnit:  0.22,
			IsActive:     true,
		},
		{
			ID:           IDBerberine,
			Name:         "Berberine",
			Dose:         entities.DoseRange{Min: 500, Typical: 1000, Max: 1500, Unit: "mg"},
			AgeModifiers: map[string]float64{"UNDER_30": 0.8},
			BasePriority: 66,
			Evidence:     entities.EvidenceModerate,
			Tier:         entities.TierPremium,
			Tags:         []string{entities.TagHerb},
			CostPerUnit:  0.32,
			IsActive:     true,
		},
		{
			ID:           IDResveratrol,
			Name:         "Resveratrol",
			Dose:         entities.DoseRange{Min: 150, Typical: 500, Max: 1000, Unit: "mg"},
			AgeModifiers: map[string]float64{"UNDER_30": 0.7, "OVER_50": 1.1},
			BasePriority: 58,
			Evidence:     entities.EvidenceEmerging,
			Tier:         entities.TierPremium,
			Tags:         []string{entities.TagAntioxidant},
			CostPerUnit:  0.38,
			IsActive:     true,
		},
		{
			ID:           IDNAC,
			Name:         "N-Acetyl Cysteine",
			Dose:         entities.DoseRange{Min: 600, Typical: 1200, Max: 1800, Unit: "mg"},
			BasePriority: 64,
			Evidence:     entities.EvidenceModerate,
			Tier:         entities.TierPremium,
			Tags:         []string{entities.TagAntioxidant},
			CostPerUnit:  0.26,
			IsActive:     true,
		},
	}
}
