package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/internal/domain/providers"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
	"github.com/nutristack/advisor/backend/pkg/config"
)

var (
	generationMetricsOnce sync.Once
	generationCounter     metric.Int64Counter
	generationDuration    metric.Float64Histogram
)

// PrescriptionService orchestrates the full generation pipeline. Stages run
// in strict order; any hard stop or error aborts with no partial prescription.
type PrescriptionService struct {
	supplementRepo   repositories.SupplementRepository
	protocolRepo     repositories.ProtocolRepository
	prescriptionRepo repositories.PrescriptionRepository
	eventBus         providers.EventBus

	goals     *GoalService
	screening *ScreeningService
	clinical  *ClinicalFlagService
	budget    *BudgetService
	scoring   *ScoringService
	dosing    *DosingService
	schedule  *ScheduleService
	safety    *SafetyService

	cfg config.EngineConfig
}

// NewPrescriptionService creates a prescription service. The prescription
// repository and event bus may be nil; persistence and event publishing are
// best-effort and never fail a generation.
func NewPrescriptionService(
	supplementRepo repositories.SupplementRepository,
	protocolRepo repositories.ProtocolRepository,
	prescriptionRepo repositories.PrescriptionRepository,
	eventBus providers.EventBus,
	safety *SafetyService,
	cfg config.EngineConfig,
) *PrescriptionService {
	if safety == nil {
		safety = NewSafetyService()
	}
	return &PrescriptionService{
		supplementRepo:   supplementRepo,
		protocolRepo:     protocolRepo,
		prescriptionRepo: prescriptionRepo,
		eventBus:         eventBus,
		goals:            NewGoalService(),
		screening:        NewScreeningService(),
		clinical:         NewClinicalFlagService(),
		budget:           NewBudgetService(cfg),
		scoring:          NewScoringService(cfg.Scoring),
		dosing:           NewDosingService(cfg),
		schedule:         NewScheduleService(cfg),
		safety:           safety,
		cfg:              cfg,
	}
}

// Generate runs the pipeline for one request. A non-nil error is returned
// only for infrastructure failures (catalog or protocol unavailable); all
// domain failures are reported through GenerationResult.Errors with a nil
// prescription.
func (s *PrescriptionService) Generate(ctx context.Context, req *entities.GenerationRequest) (*entities.GenerationResult, error) {
	start := time.Now()

	// 1. Validate request shape
	if errs := validateRequest(req); len(errs) > 0 {
		return failedResult(errs), nil
	}

	// 2. Resolve goal
	resolved, err := s.goals.Resolve(req.Goal)
	if err != nil {
		return failedResult([]string{err.Error()}), nil
	}

	// 3. Load catalog and protocol
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	protocol, err := s.protocolRepo.GetByGoal(ctx, req.Goal)
	if err != nil {
		return nil, fmt.Errorf("failed to load protocol for goal %s: %w", req.Goal, err)
	}

	// 4. Hard-stop screening
	screen := s.screening.Screen(&req.Profile, req.Flags, protocol, catalog)
	if screen.IsHardStop {
		s.publishBlocked(ctx, req.Goal, screen.Reason)
		s.recordGeneration(ctx, req.Goal, "hard_stop", time.Since(start))
		return failedResult([]string{screen.Reason}), nil
	}

	// 5. Clinical-flag processing
	ann := s.clinical.Process(ctx, req.Flags)
	warnings := append([]string{}, ann.Warnings...)

	// 6. Candidate pool: protocol lists minus blocked ids, auto-adds appended
	core, optional := buildCandidateLists(protocol, ann)

	// 7. Budget allocation
	alloc := s.budget.Allocate(core, optional, req.BudgetTier)
	if len(alloc.RemovedIDs) > 0 {
		warnings = append(warnings, removedWarning(alloc.RemovedIDs, catalog, req.BudgetTier))
	}

	// 8. Score, dose, schedule
	candidates := resolveCandidates(alloc.KeptIDs, catalog)
	ranked := s.scoring.Rank(candidates, req.Goal, &req.Profile)
	dosed := s.dosing.DoseAll(ranked, &req.Profile, req.BudgetTier, req.SymptomsRating, ann)
	stacks := s.schedule.Schedule(dosed)

	// 9. Safety validation of the assembled stack
	assembled := make([]DosedSupplement, 0, len(dosed))
	assembled = append(assembled, stacks.Morning...)
	assembled = append(assembled, stacks.Afternoon...)
	assembled = append(assembled, stacks.Evening...)
	report := s.safety.Validate(assembled, &req.Profile, req.Flags)
	if !report.IsSafeToGenerate {
		errs := make([]string, 0, len(report.Blocked))
		for _, issue := range report.Blocked {
			errs = append(errs, issue.Message)
		}
		s.publishBlocked(ctx, req.Goal, strings.Join(errs, "; "))
		s.recordGeneration(ctx, req.Goal, "safety_block", time.Since(start))
		result := failedResult(errs)
		result.Warnings = warnings
		result.Safety.Issues = errs
		return result, nil
	}
	warnings = append(warnings, report.StackWarnings...)

	// 10. Assemble, persist, publish
	prescription := s.assemble(resolved, ranked, stacks, &report, warnings, req, catalog)
	if s.prescriptionRepo != nil {
		if storedID, saveErr := s.prescriptionRepo.Save(ctx, prescription, req); saveErr != nil {
			log.Printf("Warning: Failed to persist prescription %s: %v", prescription.ID, saveErr)
		} else if storedID != "" {
			prescription.ID = storedID
		}
	}
	s.publishGenerated(ctx, prescription, req.Goal)
	s.recordGeneration(ctx, req.Goal, "generated", time.Since(start))

	softIssues := make([]string, 0, len(report.Adjusted)+len(report.Warned))
	for _, issue := range report.Adjusted {
		softIssues = append(softIssues, issue.Message)
	}
	for _, issue := range report.Warned {
		softIssues = append(softIssues, issue.Message)
	}

	return &entities.GenerationResult{
		Prescription: prescription,
		Warnings:     warnings,
		Safety:       entities.SafetySummary{IsSafe: true, Issues: softIssues},
	}, nil
}

func (s *PrescriptionService) loadCatalog(ctx context.Context) (map[string]*entities.Supplement, error) {
	list, err := s.supplementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplement catalog: %w", err)
	}
	catalog := make(map[string]*entities.Supplement, len(list))
	for _, supp := range list {
		catalog[supp.ID] = supp
	}
	return catalog, nil
}

func (s *PrescriptionService) assemble(resolved *ResolvedGoal, ranked []ScoredSupplement, stacks ScheduledStacks, report *SafetyReport, warnings []string, req *entities.GenerationRequest, catalog map[string]*entities.Supplement) *entities.Prescription {
	now := time.Now()

	topCount := 3
	if len(ranked) < topCount {
		topCount = len(ranked)
	}
	top := make([]string, 0, topCount)
	for _, candidate := range ranked[:topCount] {
		top = append(top, candidate.Supplement.Name)
	}

	adjustments := make(map[string]SafetyIssue, len(report.Adjusted))
	for _, issue := range report.Adjusted {
		adjustments[issue.SupplementID] = issue
	}
	entryWarnings := make(map[string][]string, len(report.Warned))
	for _, issue := range report.Warned {
		entryWarnings[issue.SupplementID] = append(entryWarnings[issue.SupplementID], issue.Message)
	}

	prescription := &entities.Prescription{
		ID: uuid.NewString(),
		Summary: entities.Summary{
			GoalLabel:     resolved.Label,
			TopPriorities: top,
			PathwayFocus:  resolved.PathwayFocus,
			GeneratedAt:   now,
		},
		Stacks: entities.Stacks{
			Morning:   s.toScheduled(stacks.Morning, adjustments, entryWarnings),
			Afternoon: s.toScheduled(stacks.Afternoon, adjustments, entryWarnings),
			Evening:   s.toScheduled(stacks.Evening, adjustments, entryWarnings),
		},
		Lifestyle: rules.DefaultLifestyle(),
		RedFlags:  buildRedFlags(req),
		Warnings:  warnings,
		CreatedAt: now,
	}
	prescription.ShoppingList = s.buildShoppingList(prescription.Stacks.All(), catalog)

	return prescription
}

func (s *PrescriptionService) toScheduled(dosed []DosedSupplement, adjustments map[string]SafetyIssue, entryWarnings map[string][]string) []entities.ScheduledSupplement {
	out := make([]entities.ScheduledSupplement, 0, len(dosed))
	for _, d := range dosed {
		entry := entities.ScheduledSupplement{
			SupplementID:         d.Supplement.ID,
			Name:                 d.Supplement.Name,
			Dose:                 d.OptimalDose,
			MinimumEffectiveDose: d.MinimumEffectiveDose,
			SafeUpperLimit:       d.SafeUpperLimit,
			Unit:                 d.Unit,
			Timing:               d.Timing,
			Cycling:              d.Cycling,
			DoseType:             entities.DoseOptimal,
			Score:                d.Score,
			Reasoning:            d.Reasoning,
			Warnings:             entryWarnings[d.Supplement.ID],
		}
		if issue, ok := adjustments[d.Supplement.ID]; ok && issue.DoseMultiplier > 0 {
			entry.Dose = roundDose(entry.Dose * issue.DoseMultiplier)
			entry.MinimumEffectiveDose = roundDose(entry.MinimumEffectiveDose * issue.DoseMultiplier)
			entry.SafeUpperLimit = roundDose(entry.SafeUpperLimit * issue.DoseMultiplier)
			entry.Warnings = append(entry.Warnings, issue.Message)
		}
		out = append(out, entry)
	}
	return out
}

func (s *PrescriptionService) buildShoppingList(entries []entities.ScheduledSupplement, catalog map[string]*entities.Supplement) []entities.ShoppingItem {
	supplyDays := s.cfg.ShoppingSupplyDays
	if supplyDays <= 0 {
		supplyDays = 30
	}

	items := make([]entities.ShoppingItem, 0, len(entries))
	for _, entry := range entries {
		quantity := int(math.Ceil(entry.Dose / 10 * float64(supplyDays)))
		cost := 0.0
		if supp, ok := catalog[entry.SupplementID]; ok {
			cost = math.Round(float64(quantity)*supp.CostPerUnit*100) / 100
		}
		items = append(items, entities.ShoppingItem{
			Name:          entry.Name,
			Quantity:      quantity,
			Unit:          entry.Unit,
			EstimatedCost: cost,
		})
	}
	return items
}

func (s *PrescriptionService) publishBlocked(ctx context.Context, goal, reason string) {
	if s.eventBus == nil {
		return
	}
	event := entities.NewPrescriptionEvent("", entities.PrescriptionEventBlocked, goal, map[string]interface{}{
		"reason": reason,
	})
	if err := s.eventBus.Publish(ctx, providers.EventChannelPrescriptions, event); err != nil {
		log.Printf("Warning: Failed to publish blocked event for goal %s: %v", goal, err)
	}
}

func (s *PrescriptionService) publishGenerated(ctx context.Context, prescription *entities.Prescription, goal string) {
	if s.eventBus == nil {
		return
	}
	event := entities.NewPrescriptionEvent(prescription.ID, entities.PrescriptionEventGenerated, goal, map[string]interface{}{
		"supplement_count": len(prescription.Stacks.All()),
	})
	if err := s.eventBus.Publish(ctx, providers.EventChannelPrescriptions, event); err != nil {
		log.Printf("Warning: Failed to publish generated event %s: %v", prescription.ID, err)
	}
	if err := s.eventBus.Publish(ctx, providers.GetGoalChannel(goal), event); err != nil {
		log.Printf("Warning: Failed to publish goal event %s: %v", prescription.ID, err)
	}
}

func (s *PrescriptionService) recordGeneration(ctx context.Context, goal, outcome string, duration time.Duration) {
	generationMetricsOnce.Do(initGenerationMetrics)
	attrs := metric.WithAttributes(
		attribute.String("prescription.goal", goal),
		attribute.String("prescription.outcome", outcome),
	)
	if generationCounter != nil {
		generationCounter.Add(ctx, 1, attrs)
	}
	if generationDuration != nil {
		generationDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func initGenerationMetrics() {
	meter := otel.Meter("github.com/nutristack/advisor/backend/prescriptions")
	if counter, err := meter.Int64Counter(
		"prescription.generation.count",
		metric.WithDescription("Number of prescription generation requests"),
	); err == nil {
		generationCounter = counter
	}
	if histogram, err := meter.Float64Histogram(
		"prescription.generation.duration",
		metric.WithDescription("Prescription generation duration in milliseconds"),
		metric.WithUnit("ms"),
	); err == nil {
		generationDuration = histogram
	}
}

func validateRequest(req *entities.GenerationRequest) []string {
	var errs []string
	if req.Profile.Age < 13 || req.Profile.Age > 120 {
		errs = append(errs, "age must be between 13 and 120")
	}
	switch req.Profile.Sex {
	case entities.SexMale, entities.SexFemale, entities.SexOther:
	default:
		errs = append(errs, "sex must be one of MALE, FEMALE, OTHER")
	}
	if req.Profile.WeightKg <= 0 {
		errs = append(errs, "weight_kg must be positive")
	}
	if req.Profile.HeightCm <= 0 {
		errs = append(errs, "height_cm must be positive")
	}
	if !req.BudgetTier.Valid() {
		errs = append(errs, fmt.Sprintf("unknown budget tier: %s", req.BudgetTier))
	}
	if req.SymptomsRating != nil && (*req.SymptomsRating < 0 || *req.SymptomsRating > 10) {
		errs = append(errs, "symptoms_rating must be between 0 and 10")
	}
	return errs
}

func buildCandidateLists(protocol *entities.Protocol, ann *ClinicalAnnotations) (core, optional []string) {
	seen := make(map[string]struct{}, len(protocol.CoreIDs)+len(protocol.OptionalIDs))
	for _, id := range protocol.CoreIDs {
		seen[id] = struct{}{}
		if !ann.IsBlocked(id) {
			core = append(core, id)
		}
	}
	for _, id := range protocol.OptionalIDs {
		seen[id] = struct{}{}
		if !ann.IsBlocked(id) {
			optional = append(optional, id)
		}
	}
	for _, id := range ann.AutoAddIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if !ann.IsBlocked(id) {
			optional = append(optional, id)
		}
	}
	return core, optional
}

func resolveCandidates(ids []string, catalog map[string]*entities.Supplement) []*entities.Supplement {
	out := make([]*entities.Supplement, 0, len(ids))
	for _, id := range ids {
		if supp, ok := catalog[id]; ok {
			out = append(out, supp)
		}
	}
	return out
}

func removedWarning(removedIDs []string, catalog map[string]*entities.Supplement, tier entities.BudgetTier) string {
	names := make([]string, 0, len(removedIDs))
	for _, id := range removedIDs {
		if supp, ok := catalog[id]; ok {
			names = append(names, supp.Name)
		} else {
			names = append(names, id)
		}
	}
	return fmt.Sprintf("Removed for %s budget tier: %s", tier, strings.Join(names, ", "))
}

func buildRedFlags(req *entities.GenerationRequest) []entities.RedFlag {
	var flags []entities.RedFlag
	if req.SymptomsRating != nil && *req.SymptomsRating >= 8 {
		flags = append(flags, entities.RedFlag{
			Severity: entities.SeverityHigh,
			Message:  "Symptom burden is high; review with a clinician before starting new supplements",
		})
	}
	return flags
}

func failedResult(errs []string) *entities.GenerationResult {
	return &entities.GenerationResult{
		Errors: errs,
		Safety: entities.SafetySummary{IsSafe: false},
	}
}
