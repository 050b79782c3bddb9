package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
)

func TestProcess_NilFlags(t *testing.T) {
	svc := NewClinicalFlagService()

	ann := svc.Process(context.Background(), nil)

	assert.Empty(t, ann.AutoAddIDs)
	assert.Empty(t, ann.BlockedIDs)
	assert.Empty(t, ann.Warnings)
}

func TestProcess_StatinAddsCoQ10(t *testing.T) {
	svc := NewClinicalFlagService()
	flags := &entities.ClinicalFlags{Medications: []string{"Atorvastatin 20mg"}}

	ann := svc.Process(context.Background(), flags)

	assert.Contains(t, ann.AutoAddIDs, rules.IDCoQ10)
	assert.Len(t, ann.Warnings, 1)
}

func TestProcess_SSRIBlocksRhodiola(t *testing.T) {
	svc := NewClinicalFlagService()
	flags := &entities.ClinicalFlags{Medications: []string{"sertraline"}}

	ann := svc.Process(context.Background(), flags)

	assert.True(t, ann.IsBlocked(rules.IDRhodiola))
	assert.False(t, ann.IsBlocked(rules.IDAshwagandha))
}

func TestProcess_KidneyBlocksRenallyCleared(t *testing.T) {
	svc := NewClinicalFlagService()
	flags := &entities.ClinicalFlags{Conditions: []string{"chronic kidney disease stage 3"}}

	ann := svc.Process(context.Background(), flags)

	assert.True(t, ann.IsBlocked(rules.IDMagnesium))
	assert.True(t, ann.IsBlocked(rules.IDCreatine))
}

func TestProcess_GERDHalvesTurmeric(t *testing.T) {
	svc := NewClinicalFlagService()
	flags := &entities.ClinicalFlags{Conditions: []string{"GERD"}}

	ann := svc.Process(context.Background(), flags)

	turmeric := &entities.Supplement{ID: rules.IDTurmeric}
	assert.InDelta(t, 0.5, ann.MultiplierFor(turmeric), 1e-9)
}

func TestProcess_HypotensionAdjustsAdaptogenTag(t *testing.T) {
	svc := NewClinicalFlagService()
	flags := &entities.ClinicalFlags{Conditions: []string{"orthostatic hypotension"}}

	ann := svc.Process(context.Background(), flags)

	adaptogen := &entities.Supplement{ID: rules.IDRhodiola, Tags: []string{entities.TagAdaptogen}}
	plain := &entities.Supplement{ID: rules.IDOmega3}
	assert.InDelta(t, 0.8, ann.MultiplierFor(adaptogen), 1e-9)
	assert.InDelta(t, 1.0, ann.MultiplierFor(plain), 1e-9)
}

func TestProcess_RuleAppliesOncePerRequest(t *testing.T) {
	svc := NewClinicalFlagService()
	// Two statin entries must not add CoQ10 twice or double the warning.
	flags := &entities.ClinicalFlags{Medications: []string{"atorvastatin", "simvastatin"}}

	ann := svc.Process(context.Background(), flags)

	assert.Equal(t, []string{rules.IDCoQ10}, ann.AutoAddIDs)
	assert.Len(t, ann.Warnings, 1)
}

func TestProcess_RulesAreAdditive(t *testing.T) {
	svc := NewClinicalFlagService()
	flags := &entities.ClinicalFlags{
		Medications: []string{"metformin", "omeprazole"},
		Conditions:  []string{"autoimmune thyroiditis"},
	}

	ann := svc.Process(context.Background(), flags)

	// PPI adds magnesium and B12; metformin's B12 deduplicates.
	assert.ElementsMatch(t, []string{rules.IDB12, rules.IDMagnesium}, ann.AutoAddIDs)
	ashwagandha := &entities.Supplement{ID: rules.IDAshwagandha}
	assert.InDelta(t, 0.7, ann.MultiplierFor(ashwagandha), 1e-9)
	assert.Len(t, ann.Warnings, 3)
}
