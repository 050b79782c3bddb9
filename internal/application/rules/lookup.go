package rules

import "github.com/nutristack/advisor/backend/internal/domain/entities"

// GoalDefinition maps a goal token onto its protocol identity and labels.
type GoalDefinition struct {
	ProtocolID   string
	Label        string
	PathwayFocus []string
}

// Goals is the fixed enumeration of supported goal tokens.
var Goals = map[string]GoalDefinition{
	"STRESS_SLEEP": {
		ProtocolID:   "protocol-stress-sleep",
		Label:        "Stress & Sleep Support",
		PathwayFocus: []string{"HPA axis regulation", "GABAergic tone", "Sleep architecture"},
	},
	"ENERGY_FOCUS": {
		ProtocolID:   "protocol-energy-focus",
		Label:        "Energy & Focus",
		PathwayFocus: []string{"Mitochondrial output", "Catecholamine balance", "Cholinergic signaling"},
	},
	"ATHLETIC_PERFORMANCE": {
		ProtocolID:   "protocol-athletic-performance",
		Label:        "Athletic Performance",
		PathwayFocus: []string{"ATP regeneration", "Muscle protein synthesis", "Recovery"},
	},
	"LONGEVITY": {
		ProtocolID:   "protocol-longevity",
		Label:        "Longevity & Healthspan",
		PathwayFocus: []string{"mTOR/AMPK balance", "Oxidative stress", "Metabolic flexibility"},
	},
	"IMMUNE_SUPPORT": {
		ProtocolID:   "protocol-immune-support",
		Label:        "Immune Support",
		PathwayFocus: []string{"Innate immune readiness", "Mucosal barrier", "Inflammation resolution"},
	},
	"HORMONAL_BALANCE": {
		ProtocolID:   "protocol-hormonal-balance",
		Label:        "Hormonal Balance",
		PathwayFocus: []string{"Cortisol rhythm", "Thyroid support", "Sex hormone balance"},
	},
}

// DefaultProtocols returns the in-code protocol definitions, one per goal.
func DefaultProtocols() []*entities.Protocol {
	return []*entities.Protocol{
		{
			ID:           "protocol-stress-sleep",
			Goal:         "STRESS_SLEEP",
			Label:        "Stress & Sleep Support",
			PathwayFocus: Goals["STRESS_SLEEP"].PathwayFocus,
			CoreIDs:      []string{IDAshwagandha, IDMagnesium, IDLTheanine},
			OptionalIDs:  []string{IDMelatonin, IDRhodiola, IDOmega3, IDVitaminD3},
		},
		{
			ID:           "protocol-energy-focus",
			Goal:         "ENERGY_FOCUS",
			Label:        "Energy & Focus",
			PathwayFocus: Goals["ENERGY_FOCUS"].PathwayFocus,
			CoreIDs:      []string{IDRhodiola, IDBComplex, IDCoQ10},
			OptionalIDs:  []string{IDLTheanine, IDGinkgo, IDIron, IDVitaminD3},
		},
		{
			ID:           "protocol-athletic-performance",
			Goal:         "ATHLETIC_PERFORMANCE",
			Label:        "Athletic Performance",
			PathwayFocus: Goals["ATHLETIC_PERFORMANCE"].PathwayFocus,
			CoreIDs:      []string{IDCreatine, IDMagnesium, IDOmega3},
			OptionalIDs:  []string{IDAshwagandha, IDZinc, IDVitaminD3, IDCoQ10, IDTurmeric},
		},
		{
			ID:           "protocol-longevity",
			Goal:         "LONGEVITY",
			Label:        "Longevity & Healthspan",
			PathwayFocus: Goals["LONGEVITY"].PathwayFocus,
			CoreIDs:      []string{IDOmega3, IDVitaminD3, IDResveratrol},
			OptionalIDs:  []string{IDBerberine, IDCoQ10, IDTurmeric, IDNAC, IDMagnesium},
		},
		{
			ID:           "protocol-immune-support",
			Goal:         "IMMUNE_SUPPORT",
			Label:        "Immune Support",
			PathwayFocus: Goals["IMMUNE_SUPPORT"].PathwayFocus,
			CoreIDs:      []string{IDVitaminD3, IDZinc, IDVitaminC},
			OptionalIDs:  []string{IDNAC, IDOmega3, IDB12},
		},
		{
			ID:           "protocol-hormonal-balance",
			Goal:         "HORMONAL_BALANCE",
			Label:        "Hormonal Balance",
			PathwayFocus: Goals["HORMONAL_BALANCE"].PathwayFocus,
			CoreIDs:      []string{IDAshwagandha, IDVitaminD3, IDMagnesium},
			OptionalIDs:  []string{IDZinc, IDOmega3, IDBComplex, IDIron},
		},
	}
}

// GoalAlignment scores how well a supplement fits a goal, keyed by goal then
// catalog id. Missing entries default to 0.5.
var GoalAlignment = map[string]map[string]float64{
	"STRESS_SLEEP": {
		IDAshwagandha: 1.0,
		IDMagnesium:   0.95,
		IDLTheanine:   0.95,
		IDMelatonin:   0.85,
		IDRhodiola:    0.7,
		IDOmega3:      0.6,
		IDVitaminD3:   0.55,
	},
	"ENERGY_FOCUS": {
		IDRhodiola:  1.0,
		IDBComplex:  0.9,
		IDCoQ10:     0.85,
		IDLTheanine: 0.75,
		IDGinkgo:    0.7,
		IDIron:      0.65,
	},
	"ATHLETIC_PERFORMANCE": {
		IDCreatine:    1.0,
		IDMagnesium:   0.85,
		IDOmega3:      0.8,
		IDAshwagandha: 0.75,
		IDZinc:        0.65,
		IDVitaminD3:   0.65,
		IDTurmeric:    0.6,
	},
	"LONGEVITY": {
		IDOmega3:      1.0,
		IDVitaminD3:   0.9,
		IDResveratrol: 0.85,
		IDBerberine:   0.8,
		IDCoQ10:       0.75,
		IDNAC:         0.7,
		IDTurmeric:    0.7,
	},
	"IMMUNE_SUPPORT": {
		IDVitaminD3: 1.0,
		IDZinc:      0.95,
		IDVitaminC:  0.9,
		IDNAC:       0.75,
		IDOmega3:    0.6,
	},
	"HORMONAL_BALANCE": {
		IDAshwagandha: 0.95,
		IDVitaminD3:   0.85,
		IDMagnesium:   0.8,
		IDZinc:        0.75,
		IDOmega3:      0.65,
	},
}

// GoalAlignmentScore returns the goal-fit component for a supplement.
func GoalAlignmentScore(goal, supplementID string) float64 {
	if byID, ok := GoalAlignment[goal]; ok {
		if score, ok := byID[supplementID]; ok {
			return score
		}
	}
	return 0.5
}

// trainingAlignment scores supplements against training frequency. Missing
// entries default to 0.5.
var trainingAlignment = map[string]map[entities.TrainingFrequency]float64{
	IDCreatine: {
		entities.TrainingNone:     0.3,
		entities.TrainingLight:    0.5,
		entities.TrainingModerate: 0.8,
		entities.TrainingHeavy:    1.0,
		entities.TrainingAthlete:  1.0,
	},
	IDMagnesium: {
		entities.TrainingModerate: 0.7,
		entities.TrainingHeavy:    0.85,
		entities.TrainingAthlete:  0.9,
	},
	IDOmega3: {
		entities.TrainingHeavy:   0.7,
		entities.TrainingAthlete: 0.8,
	},
	IDAshwagandha: {
		entities.TrainingHeavy:   0.7,
		entities.TrainingAthlete: 0.75,
	},
	IDCoQ10: {
		entities.TrainingHeavy:   0.65,
		entities.TrainingAthlete: 0.7,
	},
	IDTurmeric: {
		entities.TrainingHeavy:   0.7,
		entities.TrainingAthlete: 0.75,
	},
}

// TrainingAlignmentScore returns the training-fit component for a supplement.
func TrainingAlignmentScore(supplementID string, freq entities.TrainingFrequency) float64 {
	if byFreq, ok := trainingAlignment[supplementID]; ok {
		if score, ok := byFreq[freq]; ok {
			return score
		}
	}
	return 0.5
}

// AgeFitScore returns the age-appropriateness component for a supplement.
// Supplements without a specific curve default to 0.8.
func AgeFitScore(supplementID string, age int) float64 {
	switch supplementID {
	case IDCoQ10, IDResveratrol, IDBerberine:
		// Mitochondrial/metabolic support gains relevance with age.
		switch {
		case age < 30:
			return 0.5
		case age <= 50:
			return 0.8
		default:
			return 1.0
		}
	case IDCreatine:
		// Useful young for performance and older for sarcopenia.
		switch {
		case age < 30:
			return 0.9
		case age <= 50:
			return 0.75
		default:
			return 0.9
		}
	case IDMelatonin:
		switch {
		case age < 30:
			return 0.6
		case age <= 50:
			return 0.75
		default:
			return 0.9
		}
	case IDIron:
		// Iron needs drop sharply post-menopause and in older men.
		if age > 50 {
			return 0.5
		}
		return 0.8
	default:
		return 0.8
	}
}

// TimingInfo holds the fixed intake guidance for a supplement.
type TimingInfo struct {
	Timing  string
	Cycling string
}

// defaultTiming is the fallback guidance for catalog entries without a
// specific timing rule.
var defaultTiming = TimingInfo{
	Timing:  "With meals",
	Cycling: "No cycling recommended",
}

// timingTable is keyed by catalog id; exact match only.
var timingTable = map[string]TimingInfo{
	IDAshwagandha:  {Timing: "Evening, with food", Cycling: "8 weeks on, 2 weeks off"},
	IDMagnesium:    {Timing: "Evening, 1-2 hours before bed", Cycling: "No cycling recommended"},
	IDMagnesiumCit: {Timing: "Evening, with food", Cycling: "No cycling recommended"},
	IDLTheanine:    {Timing: "Evening, or with caffeine in the morning", Cycling: "No cycling recommended"},
	IDMelatonin:    {Timing: "Evening, 30-60 minutes before bed", Cycling: "Use lowest effective dose; reassess monthly"},
	IDRhodiola:     {Timing: "Morning, on an empty stomach", Cycling: "6 weeks on, 2 weeks off"},
	IDBComplex:     {Timing: "Morning, with breakfast", Cycling: "No cycling recommended"},
	IDCoQ10:        {Timing: "Morning, with a fat-containing meal", Cycling: "No cycling recommended"},
	IDGinkgo:       {Timing: "Morning, with food", Cycling: "12 weeks on, 4 weeks off"},
	IDIron:         {Timing: "Morning, away from coffee and dairy", Cycling: "Retest ferritin after 3 months"},
	IDCreatine:     {Timing: "Any time, daily consistency matters most", Cycling: "No cycling recommended"},
	IDOmega3:       {Timing: "With meals", Cycling: "No cycling recommended"},
	IDVitaminD3:    {Timing: "Morning, with a fat-containing meal", Cycling: "Retest 25(OH)D after 3 months"},
	IDVitaminC:     {Timing: "Morning, with food", Cycling: "No cycling recommended"},
	IDZinc:         {Timing: "Evening, away from other minerals", Cycling: "8 weeks on, 2 weeks off"},
	IDTurmeric:     {Timing: "With meals, alongside black pepper or fat", Cycling: "No cycling recommended"},
	IDBerberine:    {Timing: "Afternoon, before the largest meal", Cycling: "8 weeks on, 4 weeks off"},
	IDResveratrol:  {Timing: "Morning, with a fat-containing meal", Cycling: "No cycling recommended"},
	IDNAC:          {Timing: "Afternoon, away from meals", Cycling: "No cycling recommended"},
	IDB12:          {Timing: "Morning, sublingual or with food", Cycling: "No cycling recommended"},
}

// TimingFor returns the intake guidance for a supplement id, falling back to
// the generic defaults for unknown ids.
func TimingFor(supplementID string) TimingInfo {
	if info, ok := timingTable[supplementID]; ok {
		return info
	}
	return defaultTiming
}
