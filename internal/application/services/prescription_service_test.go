package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/pkg/config"
)

type stubSupplementRepo struct {
	supplements []*entities.Supplement
}

func (s *stubSupplementRepo) GetByID(_ context.Context, id string) (*entities.Supplement, error) {
	for _, supp := range s.supplements {
		if supp.ID == id {
			return supp, nil
		}
	}
	return nil, fmt.Errorf("supplement not found: %s", id)
}

func (s *stubSupplementRepo) GetByIDs(_ context.Context, ids []string) ([]*entities.Supplement, error) {
	var out []*entities.Supplement
	for _, supp := range s.supplements {
		for _, id := range ids {
			if supp.ID == id {
				out = append(out, supp)
			}
		}
	}
	return out, nil
}

func (s *stubSupplementRepo) List(_ context.Context) ([]*entities.Supplement, error) {
	return s.supplements, nil
}

type stubProtocolRepo struct {
	protocols []*entities.Protocol
}

func (s *stubProtocolRepo) GetByGoal(_ context.Context, goal string) (*entities.Protocol, error) {
	for _, protocol := range s.protocols {
		if protocol.Goal == goal {
			return protocol, nil
		}
	}
	return nil, fmt.Errorf("protocol not found for goal: %s", goal)
}

func (s *stubProtocolRepo) List(_ context.Context) ([]*entities.Protocol, error) {
	return s.protocols, nil
}

type stubPrescriptionRepo struct {
	saved []*entities.Prescription
}

func (s *stubPrescriptionRepo) Save(_ context.Context, prescription *entities.Prescription, _ *entities.GenerationRequest) (string, error) {
	s.saved = append(s.saved, prescription)
	return prescription.ID, nil
}

func (s *stubPrescriptionRepo) GetByID(_ context.Context, id string) (*entities.Prescription, error) {
	for _, p := range s.saved {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("prescription not found: %s", id)
}

type stubEventBus struct {
	published []*entities.PrescriptionEvent
}

func (s *stubEventBus) Publish(_ context.Context, _ string, event *entities.PrescriptionEvent) error {
	s.published = append(s.published, event)
	return nil
}

func (s *stubEventBus) Subscribe(_ context.Context, _ string) (<-chan *entities.PrescriptionEvent, error) {
	return nil, nil
}

func (s *stubEventBus) Unsubscribe(_ context.Context, _ string) error { return nil }

func (s *stubEventBus) Close() error { return nil }

type generationFixture struct {
	service          *PrescriptionService
	prescriptionRepo *stubPrescriptionRepo
	eventBus         *stubEventBus
}

func newGenerationFixture() *generationFixture {
	prescriptionRepo := &stubPrescriptionRepo{}
	eventBus := &stubEventBus{}
	service := NewPrescriptionService(
		&stubSupplementRepo{supplements: rules.DefaultSupplements()},
		&stubProtocolRepo{protocols: rules.DefaultProtocols()},
		prescriptionRepo,
		eventBus,
		nil,
		config.DefaultEngineConfig(),
	)
	return &generationFixture{service: service, prescriptionRepo: prescriptionRepo, eventBus: eventBus}
}

func postmenopausalRequest() *entities.GenerationRequest {
	return &entities.GenerationRequest{
		Profile: entities.PatientProfile{
			Age:                45,
			Sex:                entities.SexFemale,
			MenopauseStatus:    entities.MenopausePost,
			PregnancyIntention: entities.PregnancyIntentionNo,
			WeightKg:           60,
			HeightCm:           168,
		},
		Goal:       "STRESS_SLEEP",
		BudgetTier: entities.TierEssential,
	}
}

func stackIDs(p *entities.Prescription) []string {
	var ids []string
	for _, entry := range p.Stacks.All() {
		ids = append(ids, entry.SupplementID)
	}
	return ids
}

func TestGenerate_StressSleepEssential(t *testing.T) {
	fx := newGenerationFixture()

	result, err := fx.service.Generate(context.Background(), postmenopausalRequest())

	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.NotNil(t, result.Prescription)
	assert.True(t, result.Safety.IsSafe)

	p := result.Prescription
	assert.Equal(t, "Stress & Sleep Support", p.Summary.GoalLabel)
	assert.Len(t, p.Summary.TopPriorities, 3)
	assert.NotEmpty(t, p.Summary.PathwayFocus)

	ids := stackIDs(p)
	assert.LessOrEqual(t, len(ids), 5)
	assert.Contains(t, ids, rules.IDAshwagandha)
	assert.Contains(t, ids, rules.IDMagnesium)
	assert.Contains(t, ids, rules.IDLTheanine)

	// Core list (3) plus four optionals overflows the essential capacity.
	var foundRemoval bool
	for _, warning := range result.Warnings {
		if len(warning) > 0 && warning[0] == 'R' {
			foundRemoval = true
		}
	}
	assert.True(t, foundRemoval, "expected a budget-removal warning, got %v", result.Warnings)

	assert.NotEmpty(t, p.Lifestyle.Sleep)
	assert.NotEmpty(t, p.Lifestyle.Diet)
	assert.NotEmpty(t, p.Lifestyle.Training)
	assert.NotEmpty(t, p.Lifestyle.Stress)
	assert.Len(t, p.ShoppingList, len(ids))
}

func TestGenerate_DeterministicForIdenticalInput(t *testing.T) {
	fx := newGenerationFixture()

	first, err := fx.service.Generate(context.Background(), postmenopausalRequest())
	require.NoError(t, err)
	second, err := fx.service.Generate(context.Background(), postmenopausalRequest())
	require.NoError(t, err)

	require.NotNil(t, first.Prescription)
	require.NotNil(t, second.Prescription)
	assert.Equal(t, stackIDs(first.Prescription), stackIDs(second.Prescription))
	assert.Equal(t, first.Prescription.Summary.TopPriorities, second.Prescription.Summary.TopPriorities)
	assert.Equal(t, first.Warnings, second.Warnings)
	for i, entry := range first.Prescription.Stacks.All() {
		assert.Equal(t, entry.Dose, second.Prescription.Stacks.All()[i].Dose)
		assert.Equal(t, entry.Score, second.Prescription.Stacks.All()[i].Score)
	}
}

func TestGenerate_InvalidGoal(t *testing.T) {
	fx := newGenerationFixture()
	req := postmenopausalRequest()
	req.Goal = "BULKING"

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, result.Prescription)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "BULKING")
	assert.False(t, result.Safety.IsSafe)
}

func TestGenerate_RequestValidation(t *testing.T) {
	fx := newGenerationFixture()
	rating := 14.0
	req := &entities.GenerationRequest{
		Profile:        entities.PatientProfile{Age: 9, Sex: "UNKNOWN", WeightKg: 0, HeightCm: 0},
		Goal:           "STRESS_SLEEP",
		BudgetTier:     entities.BudgetTier("FREE"),
		SymptomsRating: &rating,
	}

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, result.Prescription)
	assert.Len(t, result.Errors, 6)
}

func TestGenerate_AnticoagulantHardStop(t *testing.T) {
	fx := newGenerationFixture()
	req := postmenopausalRequest()
	req.Goal = "ATHLETIC_PERFORMANCE"
	req.Flags = &entities.ClinicalFlags{Medications: []string{"Warfarin"}}

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, result.Prescription)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Anticoagulant")
	assert.False(t, result.Safety.IsSafe)
	assert.Empty(t, fx.prescriptionRepo.saved)

	require.Len(t, fx.eventBus.published, 1)
	assert.Equal(t, entities.PrescriptionEventBlocked, fx.eventBus.published[0].EventType)
}

func TestGenerate_PregnancyWithHerbGoal(t *testing.T) {
	fx := newGenerationFixture()
	req := postmenopausalRequest()
	req.Profile.Age = 32
	req.Profile.MenopauseStatus = entities.MenopausePre
	req.Profile.PregnancyIntention = entities.PregnancyIntentionUnsure

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, result.Prescription)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, rules.PregnancyHardStopReason, result.Errors[0])
}

func TestGenerate_PregnancyHerbOptionalsBlockAfterAssembly(t *testing.T) {
	// The longevity core carries no herb-class supplements, so a possible
	// pregnancy passes the pre-selection screen; herbs enter through the
	// optional list and must abort the whole generation at the
	// assembled-stack check instead.
	fx := newGenerationFixture()
	req := postmenopausalRequest()
	req.Profile.Age = 36
	req.Profile.MenopauseStatus = entities.MenopausePre
	req.Profile.PregnancyIntention = entities.PregnancyIntentionYes
	req.Goal = "LONGEVITY"
	req.BudgetTier = entities.TierPremium

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, result.Prescription)
	require.NotEmpty(t, result.Errors)
	for _, msg := range result.Errors {
		assert.Contains(t, msg, "pregnancy")
	}
	// Blocked at the assembled-stack check, not the pre-selection screen
	assert.NotContains(t, result.Errors, rules.PregnancyHardStopReason)
	assert.False(t, result.Safety.IsSafe)
	assert.Equal(t, result.Errors, result.Safety.Issues)
	assert.Empty(t, fx.prescriptionRepo.saved)

	require.Len(t, fx.eventBus.published, 1)
	assert.Equal(t, entities.PrescriptionEventBlocked, fx.eventBus.published[0].EventType)
}

func TestGenerate_KidneyDiseaseExcludesRenallyClearedBeforeSelection(t *testing.T) {
	fx := newGenerationFixture()
	req := postmenopausalRequest()
	req.Goal = "ATHLETIC_PERFORMANCE"
	req.Flags = &entities.ClinicalFlags{Conditions: []string{"chronic kidney disease"}}

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result.Prescription)
	assert.True(t, result.Safety.IsSafe)

	ids := stackIDs(result.Prescription)
	assert.NotContains(t, ids, rules.IDCreatine)
	assert.NotContains(t, ids, rules.IDMagnesium)
	assert.NotContains(t, ids, rules.IDMagnesiumCit)
}

func TestGenerate_StatinAutoAddJoinsCandidatePool(t *testing.T) {
	fx := newGenerationFixture()
	req := postmenopausalRequest()
	req.BudgetTier = entities.TierPremium
	req.Flags = &entities.ClinicalFlags{Medications: []string{"rosuvastatin"}}

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result.Prescription)
	assert.Contains(t, stackIDs(result.Prescription), rules.IDCoQ10)
}

func TestGenerate_BlockedIDNeverInOutput(t *testing.T) {
	fx := newGenerationFixture()
	req := postmenopausalRequest()
	req.Goal = "ENERGY_FOCUS"
	req.BudgetTier = entities.TierPremium
	req.Flags = &entities.ClinicalFlags{Medications: []string{"sertraline"}}

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result.Prescription)
	// Rhodiola is the energy protocol's lead core item but SSRIs exclude it.
	assert.NotContains(t, stackIDs(result.Prescription), rules.IDRhodiola)
}

func TestGenerate_HighSymptomRatingAddsRedFlag(t *testing.T) {
	fx := newGenerationFixture()
	rating := 9.0
	req := postmenopausalRequest()
	req.SymptomsRating = &rating

	result, err := fx.service.Generate(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result.Prescription)
	require.Len(t, result.Prescription.RedFlags, 1)
	assert.Equal(t, entities.SeverityHigh, result.Prescription.RedFlags[0].Severity)
}

func TestGenerate_PersistsAndPublishesOnSuccess(t *testing.T) {
	fx := newGenerationFixture()

	result, err := fx.service.Generate(context.Background(), postmenopausalRequest())

	require.NoError(t, err)
	require.NotNil(t, result.Prescription)
	require.Len(t, fx.prescriptionRepo.saved, 1)
	assert.Equal(t, result.Prescription.ID, fx.prescriptionRepo.saved[0].ID)

	// One event on the shared channel, one on the goal channel.
	require.Len(t, fx.eventBus.published, 2)
	assert.Equal(t, entities.PrescriptionEventGenerated, fx.eventBus.published[0].EventType)
}

func TestGenerate_NilRepoAndBusAreOptional(t *testing.T) {
	service := NewPrescriptionService(
		&stubSupplementRepo{supplements: rules.DefaultSupplements()},
		&stubProtocolRepo{protocols: rules.DefaultProtocols()},
		nil,
		nil,
		nil,
		config.DefaultEngineConfig(),
	)

	result, err := service.Generate(context.Background(), postmenopausalRequest())

	require.NoError(t, err)
	assert.NotNil(t, result.Prescription)
}

func TestGenerate_ShoppingListQuantities(t *testing.T) {
	fx := newGenerationFixture()

	result, err := fx.service.Generate(context.Background(), postmenopausalRequest())

	require.NoError(t, err)
	require.NotNil(t, result.Prescription)
	entries := result.Prescription.Stacks.All()
	require.Equal(t, len(entries), len(result.Prescription.ShoppingList))
	for i, item := range result.Prescription.ShoppingList {
		assert.Equal(t, entries[i].Name, item.Name)
		assert.Positive(t, item.Quantity)
		assert.Positive(t, item.EstimatedCost)
	}
}
