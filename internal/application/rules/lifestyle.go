package rules

import "github.com/nutristack/advisor/backend/internal/domain/entities"

// DefaultLifestyle returns the static lifestyle recommendation lists included
// with every prescription. These are general-population advice blocks and are
// independent of the supplement pipeline.
func DefaultLifestyle() entities.Lifestyle {
	return entities.Lifestyle{
		Sleep: []string{
			"Keep a consistent sleep and wake time, including weekends",
			"Avoid screens for 60 minutes before bed",
			"Keep the bedroom cool (18-19C) and fully dark",
			"Avoid caffeine after 2pm",
		},
		Diet: []string{
			"Prioritize protein at every meal (1.6-2.2g per kg bodyweight)",
			"Eat 2-3 servings of fatty fish per week",
			"Fill half your plate with vegetables at lunch and dinner",
			"Limit ultra-processed foods and added sugar",
		},
		Training: []string{
			"Resistance train 2-4 times per week",
			"Accumulate 150+ minutes of moderate cardio weekly",
			"Take at least one full rest day per week",
			"Walk 8,000-10,000 steps daily",
		},
		Stress: []string{
			"Practice 10 minutes of breathwork or meditation daily",
			"Get morning sunlight within an hour of waking",
			"Schedule regular time fully away from work",
			"Maintain social connection; isolation amplifies stress load",
		},
	}
}
