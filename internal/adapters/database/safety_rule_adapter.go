package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/nutristack/advisor/backend/internal/domain/entities"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
	"github.com/nutristack/advisor/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/nutristack/advisor/backend/pkg/errors"
)

// SafetyRuleAdapter implements SafetyRuleRepository. Deployments that need
// rule changes without a release seed this table; an empty table means the
// engine runs on its in-code defaults.
type SafetyRuleAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSafetyRuleAdapter creates a new safety rule adapter
func NewSafetyRuleAdapter(client *postgres.Client) *SafetyRuleAdapter {
	return &SafetyRuleAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var _ repositories.SafetyRuleRepository = (*SafetyRuleAdapter)(nil)

// List retrieves all active safety rules
func (a *SafetyRuleAdapter) List(ctx context.Context) ([]*entities.SafetyRule, error) {
	query, args, err := a.db.Select(
		"id", "trigger_type", "keyword", "supplement_ids", "supplement_tag",
		"severity", "action", "dose_multiplier", "message",
	).From("safety_rules").
		Where(goqu.Ex{"is_active": true}).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list safety rules", err)
	}
	defer rows.Close()

	var ruleSet []*entities.SafetyRule
	for rows.Next() {
		rule := &entities.SafetyRule{}
		var keyword, supplementTag sql.NullString
		var doseMultiplier sql.NullFloat64
		var trigger, severity, action string

		err := rows.Scan(
			&rule.ID,
			&trigger,
			&keyword,
			pq.Array(&rule.SupplementIDs),
			&supplementTag,
			&severity,
			&action,
			&doseMultiplier,
			&rule.Message,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan safety rule", err)
		}

		rule.Trigger = entities.TriggerType(trigger)
		rule.Keyword = keyword.String
		rule.SupplementTag = supplementTag.String
		rule.Severity = entities.Severity(severity)
		rule.Action = entities.RuleAction(action)
		rule.DoseMultiplier = doseMultiplier.Float64

		ruleSet = append(ruleSet, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating safety rules", err)
	}

	return ruleSet, nil
}

// Create inserts a new safety rule
func (a *SafetyRuleAdapter) Create(ctx context.Context, rule *entities.SafetyRule) error {
	record := goqu.Record{
		"id":             rule.ID,
		"trigger_type":   string(rule.Trigger),
		"keyword":        sql.NullString{String: rule.Keyword, Valid: rule.Keyword != ""},
		"supplement_ids": pq.Array(rule.SupplementIDs),
		"supplement_tag": sql.NullString{String: rule.SupplementTag, Valid: rule.SupplementTag != ""},
		"severity":       string(rule.Severity),
		"action":         string(rule.Action),
		"dose_multiplier": sql.NullFloat64{
			Float64: rule.DoseMultiplier,
			Valid:   rule.DoseMultiplier != 0,
		},
		"message":    rule.Message,
		"is_active":  true,
		"created_at": time.Now(),
	}

	query, args, err := a.db.Insert("safety_rules").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create safety rule", err)
	}

	return nil
}
