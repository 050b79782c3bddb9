package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/pkg/config"
)

func ashwagandhaCandidate(t *testing.T) ScoredSupplement {
	t.Helper()
	for _, supp := range rules.DefaultSupplements() {
		if supp.ID == rules.IDAshwagandha {
			return ScoredSupplement{Supplement: supp, Score: 90}
		}
	}
	t.Fatal("ashwagandha missing from catalog")
	return ScoredSupplement{}
}

func turmericCandidate(t *testing.T) ScoredSupplement {
	t.Helper()
	for _, supp := range rules.DefaultSupplements() {
		if supp.ID == rules.IDTurmeric {
			return ScoredSupplement{Supplement: supp, Score: 70}
		}
	}
	t.Fatal("turmeric missing from catalog")
	return ScoredSupplement{}
}

func TestDose_NeutralProfileIsTypicalDose(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	// BMI 21.3, no training, no symptoms rating, comprehensive tier: every
	// factor multiplies to 1.0.
	profile := &entities.PatientProfile{
		Age:             45,
		Sex:             entities.SexFemale,
		MenopauseStatus: entities.MenopausePost,
		WeightKg:        60,
		HeightCm:        168,
	}

	dosed := svc.Dose(ashwagandhaCandidate(t), profile, entities.TierComprehensive, nil, nil)

	assert.InDelta(t, 1.0, dosed.Multiplier, 1e-9)
	assert.InDelta(t, 600, dosed.OptimalDose, 1e-9)
	assert.InDelta(t, 300, dosed.MinimumEffectiveDose, 1e-9)
	assert.InDelta(t, 1200, dosed.SafeUpperLimit, 1e-9)
	assert.Equal(t, "mg", dosed.Unit)
}

func TestDose_PremenopausalModifierApplies(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	pre := &entities.PatientProfile{
		Age: 45, Sex: entities.SexFemale, MenopauseStatus: entities.MenopausePre,
		WeightKg: 60, HeightCm: 168,
	}
	post := &entities.PatientProfile{
		Age: 45, Sex: entities.SexFemale, MenopauseStatus: entities.MenopausePost,
		WeightKg: 60, HeightCm: 168,
	}

	preDosed := svc.Dose(ashwagandhaCandidate(t), pre, entities.TierComprehensive, nil, nil)
	postDosed := svc.Dose(ashwagandhaCandidate(t), post, entities.TierComprehensive, nil, nil)

	assert.InDelta(t, 1.1, preDosed.Multiplier, 1e-9)
	assert.InDelta(t, 660, preDosed.OptimalDose, 1e-9)
	assert.InDelta(t, 1.0, postDosed.Multiplier, 1e-9)
}

func TestDose_CompositeClampedToUpperBound(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	// Obese athlete on premium tier with maximal symptoms: raw product is
	// 1.2 x 1.15 x 1.1 x 1.2 = 1.82, well past the clamp.
	rating := 10.0
	profile := &entities.PatientProfile{
		Age: 30, Sex: entities.SexMale,
		WeightKg: 110, HeightCm: 175,
		TrainingFrequency: entities.TrainingAthlete,
	}

	dosed := svc.Dose(ashwagandhaCandidate(t), profile, entities.TierPremium, &rating, nil)

	assert.InDelta(t, 1.5, dosed.Multiplier, 1e-9)
}

func TestDose_CompositeClampedToLowerBound(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	// Underweight, zero symptom rating, essential tier: 0.9 x 0.9 x 0.8 = 0.648.
	rating := 0.0
	profile := &entities.PatientProfile{
		Age: 25, Sex: entities.SexMale,
		WeightKg: 50, HeightCm: 180,
	}

	dosed := svc.Dose(ashwagandhaCandidate(t), profile, entities.TierEssential, &rating, nil)

	assert.InDelta(t, 0.7, dosed.Multiplier, 1e-9)
}

func TestDose_ClinicalAdjustmentAppliesAfterClamp(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	rating := 0.0
	profile := &entities.PatientProfile{
		Age: 25, Sex: entities.SexMale,
		WeightKg: 50, HeightCm: 180,
	}
	ann := &ClinicalAnnotations{
		DoseAdjustments: map[string]float64{rules.IDTurmeric: 0.5},
		TagAdjustments:  map[string]float64{},
	}

	dosed := svc.Dose(turmericCandidate(t), profile, entities.TierEssential, &rating, ann)

	// The safety-driven reduction lands on the clamped composite, so the
	// effective multiplier can go below the clamp floor.
	assert.InDelta(t, 0.35, dosed.Multiplier, 1e-9)
	assert.InDelta(t, 350, dosed.OptimalDose, 1e-9)
}

func TestDose_MissingSymptomRatingIsNeutral(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	profile := &entities.PatientProfile{
		Age: 45, Sex: entities.SexFemale, MenopauseStatus: entities.MenopausePost,
		WeightKg: 60, HeightCm: 168,
	}
	midRating := 5.0

	withoutRating := svc.Dose(ashwagandhaCandidate(t), profile, entities.TierComprehensive, nil, nil)
	withMidRating := svc.Dose(ashwagandhaCandidate(t), profile, entities.TierComprehensive, &midRating, nil)

	assert.InDelta(t, 1.0, withoutRating.Multiplier, 1e-9)
	// Rating 5 gives 0.9 + 0.5*0.3 = 1.05, distinct from the nil case.
	assert.InDelta(t, 1.05, withMidRating.Multiplier, 1e-9)
}

func TestDose_BoundsOrderingHolds(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	profiles := []*entities.PatientProfile{
		{Age: 25, Sex: entities.SexMale, WeightKg: 50, HeightCm: 180},
		{Age: 70, Sex: entities.SexFemale, MenopauseStatus: entities.MenopausePost, WeightKg: 95, HeightCm: 160, TrainingFrequency: entities.TrainingModerate},
	}

	for _, supp := range rules.DefaultSupplements() {
		for _, profile := range profiles {
			candidate := ScoredSupplement{Supplement: supp}
			dosed := svc.Dose(candidate, profile, entities.TierEssential, nil, nil)
			assert.LessOrEqual(t, dosed.MinimumEffectiveDose, dosed.OptimalDose, supp.ID)
			assert.LessOrEqual(t, dosed.OptimalDose, dosed.SafeUpperLimit, supp.ID)
		}
	}
}

func TestDose_TimingLookupWithFallback(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	profile := &entities.PatientProfile{Age: 40, Sex: entities.SexMale, WeightKg: 75, HeightCm: 180}
	unknown := ScoredSupplement{Supplement: &entities.Supplement{
		ID:   "colostrum",
		Name: "Colostrum",
		Dose: entities.DoseRange{Min: 1, Typical: 2, Max: 4, Unit: "g"},
	}}

	dosed := svc.Dose(unknown, profile, entities.TierComprehensive, nil, nil)

	assert.Equal(t, "With meals", dosed.Timing)
	assert.Equal(t, "No cycling recommended", dosed.Cycling)
}

func TestDose_ReasoningNamesContributingFactors(t *testing.T) {
	svc := NewDosingService(config.DefaultEngineConfig())
	rating := 8.0
	profile := &entities.PatientProfile{
		Age: 62, Sex: entities.SexFemale, MenopauseStatus: entities.MenopausePost,
		WeightKg: 70, HeightCm: 165,
		TrainingFrequency: entities.TrainingHeavy,
	}

	dosed := svc.Dose(ashwagandhaCandidate(t), profile, entities.TierComprehensive, &rating, nil)

	assert.Contains(t, dosed.Reasoning, "age bracket OVER_50")
	assert.Contains(t, dosed.Reasoning, "heavy training load")
	assert.Contains(t, dosed.Reasoning, "elevated symptom burden")
}
