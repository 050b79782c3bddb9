package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/pkg/config"
)

// DosedSupplement is a scored candidate with its personalized doses and
// intake guidance.
type DosedSupplement struct {
	Supplement           *entities.Supplement
	Score                int
	OptimalDose          float64
	MinimumEffectiveDose float64
	SafeUpperLimit       float64
	Unit                 string
	Timing               string
	Cycling              string
	Multiplier           float64
	Reasoning            string
}

// DosingService computes personalized doses from demographic and contextual
// factors.
type DosingService struct {
	cfg config.EngineConfig
}

// NewDosingService creates a dosing service from engine configuration
func NewDosingService(cfg config.EngineConfig) *DosingService {
	return &DosingService{cfg: cfg}
}

// DoseAll doses every ranked candidate.
func (s *DosingService) DoseAll(ranked []ScoredSupplement, profile *entities.PatientProfile, tier entities.BudgetTier, symptomsRating *float64, ann *ClinicalAnnotations) []DosedSupplement {
	dosed := make([]DosedSupplement, 0, len(ranked))
	for _, candidate := range ranked {
		dosed = append(dosed, s.Dose(candidate, profile, tier, symptomsRating, ann))
	}
	return dosed
}

// Dose computes the personalized dose for one candidate. The composite
// multiplier is the product of demographic and contextual factors, clamped
// to the configured bounds; clinical-flag adjustments apply after clamping
// so a safety-driven reduction is never clamped away.
func (s *DosingService) Dose(candidate ScoredSupplement, profile *entities.PatientProfile, tier entities.BudgetTier, symptomsRating *float64, ann *ClinicalAnnotations) DosedSupplement {
	supp := candidate.Supplement

	genderMod := supp.GenderModifier(profile.GenderBracket())
	ageMod := supp.AgeModifier(profile.AgeBracket())
	weightMod := weightMultiplier(profile.BMI())
	trainingMod := trainingLoadMultiplier(profile.TrainingFrequency)
	symptomMod := symptomMultiplier(symptomsRating)
	budgetMod := s.cfg.TierDoseMultipliers[string(tier)]
	if budgetMod == 0 {
		budgetMod = 1.0
	}

	composite := genderMod * ageMod * weightMod * trainingMod * symptomMod * budgetMod
	composite = clamp(composite, s.cfg.DoseMultiplierMin, s.cfg.DoseMultiplierMax)

	effective := composite
	if ann != nil {
		effective *= ann.MultiplierFor(supp)
	}

	minDose := roundDose(supp.Dose.Min * effective)
	maxDose := roundDose(supp.Dose.Max * effective)
	optimal := roundDose(clamp(supp.Dose.Typical*effective, supp.Dose.Min*effective, supp.Dose.Max*effective))

	timing := rules.TimingFor(supp.ID)

	return DosedSupplement{
		Supplement:           supp,
		Score:                candidate.Score,
		OptimalDose:          optimal,
		MinimumEffectiveDose: minDose,
		SafeUpperLimit:       maxDose,
		Unit:                 supp.Dose.Unit,
		Timing:               timing.Timing,
		Cycling:              timing.Cycling,
		Multiplier:           effective,
		Reasoning:            buildReasoning(profile, symptomsRating, genderMod, ageMod, trainingMod),
	}
}

func weightMultiplier(bmi float64) float64 {
	switch {
	case bmi <= 0:
		return 1.0
	case bmi < 18.5:
		return 0.9
	case bmi < 25:
		return 1.0
	case bmi < 30:
		return 1.1
	default:
		return 1.2
	}
}

func trainingLoadMultiplier(freq entities.TrainingFrequency) float64 {
	switch freq {
	case entities.TrainingModerate:
		return 1.05
	case entities.TrainingHeavy:
		return 1.1
	case entities.TrainingAthlete:
		return 1.15
	default:
		return 1.0
	}
}

func symptomMultiplier(rating *float64) float64 {
	if rating == nil {
		return 1.0
	}
	return 0.9 + *rating/10*0.3
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundDose(v float64) float64 {
	return math.Round(v*10) / 10
}

func buildReasoning(profile *entities.PatientProfile, symptomsRating *float64, genderMod, ageMod, trainingMod float64) string {
	var factors []string
	if ageMod != 1.0 {
		factors = append(factors, fmt.Sprintf("age bracket %s", profile.AgeBracket()))
	}
	if trainingMod != 1.0 {
		factors = append(factors, fmt.Sprintf("%s training load", strings.ToLower(string(profile.TrainingFrequency))))
	}
	if genderMod != 1.0 && profile.MenopauseStatus != "" {
		factors = append(factors, strings.ToLower(string(profile.MenopauseStatus))+" status")
	}
	if symptomsRating != nil && *symptomsRating >= 7 {
		factors = append(factors, "elevated symptom burden")
	}
	if len(factors) == 0 {
		return "Standard dose for profile"
	}
	return "Dose adjusted for " + strings.Join(factors, ", ")
}
