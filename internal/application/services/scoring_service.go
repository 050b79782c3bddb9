package services

import (
	"math"
	"sort"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/pkg/config"
)

// ScoredSupplement pairs a candidate with its priority score and the
// per-factor breakdown that produced it.
type ScoredSupplement struct {
	Supplement     *entities.Supplement
	Score          int
	ScoreBreakdown map[string]float64
}

// ScoringService computes the multi-factor priority score per candidate.
// Weights are injected so population-specific tuning needs no code change.
type ScoringService struct {
	weights config.ScoringWeights
}

// NewScoringService creates a scoring service with the given weights
func NewScoringService(weights config.ScoringWeights) *ScoringService {
	return &ScoringService{weights: weights}
}

// Rank scores every candidate and returns them sorted by descending score.
// The sort is stable: equal scores preserve catalog input order.
func (s *ScoringService) Rank(candidates []*entities.Supplement, goal string, profile *entities.PatientProfile) []ScoredSupplement {
	if len(candidates) == 0 {
		return nil
	}

	scored := make([]ScoredSupplement, len(candidates))
	for i, candidate := range candidates {
		score, breakdown := s.calculateScore(candidate, goal, profile)
		scored[i] = ScoredSupplement{
			Supplement:     candidate,
			Score:          score,
			ScoreBreakdown: breakdown,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

func (s *ScoringService) calculateScore(c *entities.Supplement, goal string, profile *entities.PatientProfile) (int, map[string]float64) {
	breakdown := make(map[string]float64)

	// 1. Goal alignment
	goalScore := rules.GoalAlignmentScore(goal, c.ID)
	breakdown["goal"] = goalScore * s.weights.GoalAlignment

	// 2. Demographic fit: blend of gender-bracket and age-bracket modifiers
	demoScore := (c.GenderModifier(profile.GenderBracket()) + c.AgeModifier(profile.AgeBracket())) / 2
	if demoScore > 1.0 {
		demoScore = 1.0
	}
	breakdown["demographic"] = demoScore * s.weights.DemographicFit

	// 3. Evidence strength
	breakdown["evidence"] = c.Evidence.Score() * s.weights.Evidence

	// 4. Base priority
	breakdown["priority"] = float64(c.BasePriority) / 100 * s.weights.BasePriority

	// 5. Training alignment
	breakdown["training"] = rules.TrainingAlignmentScore(c.ID, profile.TrainingFrequency) * s.weights.TrainingFit

	// 6. Age appropriateness
	breakdown["age"] = rules.AgeFitScore(c.ID, profile.Age) * s.weights.AgeFit

	total := 0.0
	for _, v := range breakdown {
		total += v
	}

	return int(math.Round(total * 100)), breakdown
}
