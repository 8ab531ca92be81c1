package services

import (
	"context"
	"strings"

	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/repositories"
)

// ChangeControlService interface defines the change-control log operations
type ChangeControlService interface {
	Create(ctx context.Context, input *models.CreateChangeControlInput) (*models.ChangeControlEvent, error)
	List(ctx context.Context, filters models.ChangeControlFilters) ([]models.ChangeControlEvent, error)
}

// changeControlService implements ChangeControlService interface
type changeControlService struct {
	changeControlRepo repositories.ChangeControlRepository
	clock             Clock
	ids               IDGenerator
}

// NewChangeControlService creates a new change control service
func NewChangeControlService(changeControlRepo repositories.ChangeControlRepository, clock Clock, ids IDGenerator) ChangeControlService {
	return &changeControlService{
		changeControlRepo: changeControlRepo,
		clock:             clock,
		ids:               ids,
	}
}

// Create records a new change-control event in SUBMITTED status. Status
// progression beyond SUBMITTED is handled outside this core.
func (s *changeControlService) Create(ctx context.Context, input *models.CreateChangeControlInput) (*models.ChangeControlEvent, error) {
	if errors := input.Validate(); len(errors) > 0 {
		return nil, models.NewValidationError("invalid change control input: %s", strings.Join(errors, ", "))
	}

	impact := models.ImpactAssessment{RiskLevel: models.RiskLevelMed}
	if input.Impact != nil {
		impact = *input.Impact
		if models.IsBlank(impact.RiskLevel) {
			impact.RiskLevel = models.RiskLevelMed
		}
	}

	event := &models.ChangeControlEvent{
		ChangeControlID: "ccr-" + s.ids.NewID(),
		Type:            strings.TrimSpace(input.Type),
		Scope:           input.Scope,
		Rationale:       strings.TrimSpace(input.Rationale),
		Reason:          strings.TrimSpace(input.Reason),
		Status:          models.ChangeControlStatusSubmitted,
		CreatedAt:       s.clock.Now(),
		CreatedBy:       input.CreatedBy,
		Impact:          impact,
		TenantID:        input.TenantID,
		AuditID:         input.AuditID,
	}

	if err := s.changeControlRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// List retrieves events newest-first with a clamped limit
func (s *changeControlService) List(ctx context.Context, filters models.ChangeControlFilters) ([]models.ChangeControlEvent, error) {
	return s.changeControlRepo.List(ctx, filters)
}
