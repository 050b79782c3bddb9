package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
)

func screeningFixtures(t *testing.T, goal string) (*entities.Protocol, map[string]*entities.Supplement) {
	t.Helper()
	catalog := make(map[string]*entities.Supplement)
	for _, supp := range rules.DefaultSupplements() {
		catalog[supp.ID] = supp
	}
	for _, protocol := range rules.DefaultProtocols() {
		if protocol.Goal == goal {
			return protocol, catalog
		}
	}
	t.Fatalf("no protocol for goal %s", goal)
	return nil, nil
}

func TestScreen_AnticoagulantMedication(t *testing.T) {
	svc := NewScreeningService()
	protocol, catalog := screeningFixtures(t, "ATHLETIC_PERFORMANCE")
	profile := &entities.PatientProfile{Age: 40, Sex: entities.SexMale}
	flags := &entities.ClinicalFlags{Medications: []string{"Warfarin 5mg daily"}}

	result := svc.Screen(profile, flags, protocol, catalog)

	assert.True(t, result.IsHardStop)
	assert.Contains(t, result.Reason, "Anticoagulant")
}

func TestScreen_AntiepilepticMedication(t *testing.T) {
	svc := NewScreeningService()
	protocol, catalog := screeningFixtures(t, "ENERGY_FOCUS")
	profile := &entities.PatientProfile{Age: 30, Sex: entities.SexFemale}
	flags := &entities.ClinicalFlags{Medications: []string{"lamotrigine"}}

	result := svc.Screen(profile, flags, protocol, catalog)

	assert.True(t, result.IsHardStop)
	assert.Contains(t, result.Reason, "Antiepileptic")
}

func TestScreen_ActiveLiverDisease(t *testing.T) {
	svc := NewScreeningService()
	protocol, catalog := screeningFixtures(t, "LONGEVITY")
	profile := &entities.PatientProfile{Age: 55, Sex: entities.SexMale}
	flags := &entities.ClinicalFlags{Conditions: []string{"compensated cirrhosis"}}

	result := svc.Screen(profile, flags, protocol, catalog)

	assert.True(t, result.IsHardStop)
	assert.Contains(t, result.Reason, "hepatic")
}

func TestScreen_PregnancyWithHerbProtocol(t *testing.T) {
	svc := NewScreeningService()
	protocol, catalog := screeningFixtures(t, "STRESS_SLEEP")
	profile := &entities.PatientProfile{
		Age:                32,
		Sex:                entities.SexFemale,
		PregnancyIntention: entities.PregnancyIntentionUnsure,
	}

	result := svc.Screen(profile, &entities.ClinicalFlags{}, protocol, catalog)

	assert.True(t, result.IsHardStop)
	assert.Equal(t, rules.PregnancyHardStopReason, result.Reason)
}

func TestScreen_PregnancyWithoutHerbProtocol(t *testing.T) {
	svc := NewScreeningService()
	// Immune support core is vitamin D3, zinc, vitamin C; no herbs.
	protocol, catalog := screeningFixtures(t, "IMMUNE_SUPPORT")
	profile := &entities.PatientProfile{
		Age:                32,
		Sex:                entities.SexFemale,
		PregnancyIntention: entities.PregnancyIntentionYes,
	}

	result := svc.Screen(profile, &entities.ClinicalFlags{}, protocol, catalog)

	assert.False(t, result.IsHardStop)
}

func TestScreen_CleanProfile(t *testing.T) {
	svc := NewScreeningService()
	protocol, catalog := screeningFixtures(t, "STRESS_SLEEP")
	profile := &entities.PatientProfile{Age: 40, Sex: entities.SexMale}
	flags := &entities.ClinicalFlags{
		Medications: []string{"lisinopril"},
		Conditions:  []string{"hypertension"},
	}

	result := svc.Screen(profile, flags, protocol, catalog)

	assert.False(t, result.IsHardStop)
	assert.Empty(t, result.Reason)
}

func TestScreen_MatchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := NewScreeningService()
	protocol, catalog := screeningFixtures(t, "STRESS_SLEEP")
	profile := &entities.PatientProfile{Age: 40, Sex: entities.SexMale}
	flags := &entities.ClinicalFlags{Medications: []string{"on a BLOOD THINNER since 2021"}}

	result := svc.Screen(profile, flags, protocol, catalog)

	assert.True(t, result.IsHardStop)
}
