package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
)

// recurringService implements the RecurringSvcFacade interface.
type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringRepositoryFacade
}

// NewRecurringService creates a new recurring-rule service.
func NewRecurringService(repo portsrepo.RecurringRepositoryFacade) portssvc.RecurringSvcFacade {
	return &recurringService{recurringRepo: repo}
}

// Ensure recurringService implements the RecurringSvcFacade interface.
var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

// CreateRule registers a recurring obligation. The entry template is
// validated and serialized into the rule payload; the first occurrence
// is the requested due date itself.
func (s *recurringService) CreateRule(ctx context.Context, ownerID string, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	payload, err := json.Marshal(domain.EntryTemplate{
		Amount:   req.Amount,
		Kind:     req.Kind,
		Category: req.Category,
		Notes:    req.Notes,
		PlanID:   req.PlanID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize entry template: %w", err)
	}

	now := time.Now().UTC()
	rule := domain.RecurringRule{
		RuleID:          uuid.NewString(),
		OwnerID:         ownerID,
		PayloadTemplate: payload,
		Frequency:       req.Frequency,
		NextDueOn:       timemath.DateOnly(req.FirstDueOn),
		Active:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.recurringRepo.SaveRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save recurring rule", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save recurring rule: %w", err)
	}

	s.LogInfo(ctx, "Recurring rule created",
		slog.String("owner_id", ownerID),
		slog.String("rule_id", rule.RuleID),
		slog.String("frequency", string(rule.Frequency)))
	return &rule, nil
}

// ListRules retrieves all of the owner's rules.
func (s *recurringService) ListRules(ctx context.Context, ownerID string) ([]domain.RecurringRule, error) {
	rules, err := s.recurringRepo.ListRulesByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring rules", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list recurring rules: %w", err)
	}
	return rules, nil
}

// SetRuleActive pauses or resumes a rule. Rules belonging to another
// owner are rejected rather than silently updated.
func (s *recurringService) SetRuleActive(ctx context.Context, ownerID, ruleID string, active bool) (*domain.RecurringRule, error) {
	rule, err := s.recurringRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring rule %s: %w", ruleID, err)
	}
	if rule.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: rule %s does not belong to owner", apperrors.ErrForbidden, ruleID)
	}

	now := time.Now().UTC()
	if err := s.recurringRepo.SetRuleActive(ctx, ruleID, active, ownerID, now); err != nil {
		s.LogError(ctx, err, "Failed to update recurring rule", slog.String("rule_id", ruleID))
		return nil, fmt.Errorf("failed to update recurring rule %s: %w", ruleID, err)
	}

	rule.Active = active
	rule.LastUpdatedAt = now
	rule.LastUpdatedBy = ownerID
	s.LogInfo(ctx, "Recurring rule updated",
		slog.String("rule_id", ruleID),
		slog.Bool("active", active))
	return rule, nil
}
