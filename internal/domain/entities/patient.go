package entities

// Sex represents a patient's biological sex category
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
	SexOther  Sex = "OTHER"
)

// MenopauseStatus represents a female patient's menopause status
type MenopauseStatus string

const (
	MenopausePre  MenopauseStatus = "PREMENOPAUSAL"
	MenopausePeri MenopauseStatus = "PERIMENOPAUSAL"
	MenopausePost MenopauseStatus = "POSTMENOPAUSAL"
)

// PregnancyIntention represents whether the patient is pregnant or intends to be
type PregnancyIntention string

const (
	PregnancyIntentionYes    PregnancyIntention = "YES"
	PregnancyIntentionNo     PregnancyIntention = "NO"
	PregnancyIntentionUnsure PregnancyIntention = "UNSURE"
)

// DietPreference represents a patient's dietary pattern
type DietPreference string

const (
	DietOmnivore   DietPreference = "OMNIVORE"
	DietVegetarian DietPreference = "VEGETARIAN"
	DietVegan      DietPreference = "VEGAN"
	DietKeto       DietPreference = "KETO"
)

// AlcoholUse represents a patient's alcohol consumption category
type AlcoholUse string

const (
	AlcoholNone     AlcoholUse = "NONE"
	AlcoholModerate AlcoholUse = "MODERATE"
	AlcoholFrequent AlcoholUse = "FREQUENT"
)

// TrainingFrequency represents a patient's training load category
type TrainingFrequency string

const (
	TrainingNone     TrainingFrequency = "NONE"
	TrainingLight    TrainingFrequency = "LIGHT"
	TrainingModerate TrainingFrequency = "MODERATE"
	TrainingHeavy    TrainingFrequency = "HEAVY"
	TrainingAthlete  TrainingFrequency = "ATHLETE"
)

// PatientProfile represents the demographic and lifestyle input for a
// generation request. It is never mutated by the pipeline.
type PatientProfile struct {
	Age                int                `json:"age"`
	Sex                Sex                `json:"sex"`
	WeightKg           float64            `json:"weight_kg"`
	HeightCm           float64            `json:"height_cm"`
	MenopauseStatus    MenopauseStatus    `json:"menopause_status,omitempty"`
	MenstruationActive *bool              `json:"menstruation_active,omitempty"`
	PregnancyIntention PregnancyIntention `json:"pregnancy_intention,omitempty"`
	DietPreference     DietPreference     `json:"diet_preference,omitempty"`
	AlcoholUse         AlcoholUse         `json:"alcohol_use,omitempty"`
	TrainingFrequency  TrainingFrequency  `json:"training_frequency,omitempty"`
}

// BMI returns the body mass index, or 0 when height is missing.
func (p *PatientProfile) BMI() float64 {
	if p.HeightCm <= 0 {
		return 0
	}
	heightM := p.HeightCm / 100
	return p.WeightKg / (heightM * heightM)
}

// PregnancyPossible returns true when the patient is pregnant, intends
// pregnancy, or is unsure.
func (p *PatientProfile) PregnancyPossible() bool {
	return p.PregnancyIntention == PregnancyIntentionYes || p.PregnancyIntention == PregnancyIntentionUnsure
}

// GenderBracket returns the catalog modifier key for this profile.
func (p *PatientProfile) GenderBracket() string {
	if p.Sex == SexFemale && p.MenopauseStatus != "" {
		return string(p.Sex) + "_" + string(p.MenopauseStatus)
	}
	return string(p.Sex)
}

// AgeBracket returns the catalog age modifier key for this profile.
func (p *PatientProfile) AgeBracket() string {
	switch {
	case p.Age < 30:
		return "UNDER_30"
	case p.Age <= 50:
		return "30_TO_50"
	default:
		return "OVER_50"
	}
}

// ClinicalFlags represents free-text clinical context for a generation
// request. Entries are matched case-insensitively by substring against
// known trigger keywords.
type ClinicalFlags struct {
	Medications      []string `json:"medications,omitempty"`
	Conditions       []string `json:"conditions,omitempty"`
	LabAbnormalities []string `json:"lab_abnormalities,omitempty"`
	SymptomClusters  []string `json:"symptom_clusters,omitempty"`
}

// All returns every flag entry as (category, text) pairs in a stable order.
func (f *ClinicalFlags) All() []FlagEntry {
	if f == nil {
		return nil
	}
	entries := make([]FlagEntry, 0, len(f.Medications)+len(f.Conditions)+len(f.LabAbnormalities)+len(f.SymptomClusters))
	for _, m := range f.Medications {
		entries = append(entries, FlagEntry{Category: FlagMedication, Text: m})
	}
	for _, c := range f.Conditions {
		entries = append(entries, FlagEntry{Category: FlagCondition, Text: c})
	}
	for _, l := range f.LabAbnormalities {
		entries = append(entries, FlagEntry{Category: FlagLab, Text: l})
	}
	for _, s := range f.SymptomClusters {
		entries = append(entries, FlagEntry{Category: FlagSymptom, Text: s})
	}
	return entries
}

// FlagCategory identifies which clinical-flag list an entry came from
type FlagCategory string

const (
	FlagMedication FlagCategory = "MEDICATION"
	FlagCondition  FlagCategory = "CONDITION"
	FlagLab        FlagCategory = "LAB"
	FlagSymptom    FlagCategory = "SYMPTOM"
)

// FlagEntry pairs a clinical-flag text with its source category
type FlagEntry struct {
	Category FlagCategory
	Text     string
}
