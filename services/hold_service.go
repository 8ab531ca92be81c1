package services

import (
	"context"
	"strings"

	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/repositories"
)

// HoldService interface defines the settlement hold operations
type HoldService interface {
	Create(ctx context.Context, input *models.CreateHoldInput) (*models.SettlementHold, error)
	Override(ctx context.Context, input *models.OverrideHoldInput) (*models.SettlementHold, error)
	GetByID(ctx context.Context, holdID string) (*models.SettlementHold, error)
	List(ctx context.Context, filters models.HoldFilters) ([]models.SettlementHold, error)
}

// holdService implements HoldService interface
type holdService struct {
	holdRepo repositories.HoldRepository
	clock    Clock
	ids      IDGenerator
}

// NewHoldService creates a new settlement hold service
func NewHoldService(holdRepo repositories.HoldRepository, clock Clock, ids IDGenerator) HoldService {
	return &holdService{
		holdRepo: holdRepo,
		clock:    clock,
		ids:      ids,
	}
}

// Create places a new hold. The caller has already written the audit entry
// and passes its id; new holds always start ACTIVE.
func (s *holdService) Create(ctx context.Context, input *models.CreateHoldInput) (*models.SettlementHold, error) {
	if errors := input.Validate(); len(errors) > 0 {
		return nil, models.NewValidationError("invalid hold input: %s", strings.Join(errors, ", "))
	}
	if !models.ValidSubsystem(input.Subsystem) {
		return nil, models.NewInvalidSubsystemError(string(input.Subsystem))
	}

	now := s.clock.Now()
	hold := &models.SettlementHold{
		HoldID:     "hold-" + s.ids.NewID(),
		TenantID:   input.TenantID,
		Scope:      input.Scope,
		Subsystem:  input.Subsystem,
		Reason:     strings.TrimSpace(input.Reason),
		ReasonCode: strings.TrimSpace(input.ReasonCode),
		Status:     models.HoldStatusActive,
		CreatedAt:  now,
		CreatedBy:  input.CreatedBy,
		UpdatedAt:  now,
		AuditID:    input.AuditID,
	}

	if err := s.holdRepo.Create(ctx, hold); err != nil {
		return nil, err
	}

	return hold, nil
}

// Override transitions an ACTIVE hold to OVERRIDDEN. Overriding a hold that
// has already been overridden or released is treated as an inconsistency and
// rejected, keeping the first override's metadata intact.
func (s *holdService) Override(ctx context.Context, input *models.OverrideHoldInput) (*models.SettlementHold, error) {
	if errors := input.Validate(); len(errors) > 0 {
		return nil, models.NewValidationError("invalid override input: %s", strings.Join(errors, ", "))
	}

	hold, err := s.holdRepo.GetByID(ctx, input.HoldID)
	if err != nil {
		return nil, err
	}
	if hold.Status != models.HoldStatusActive {
		return nil, models.NewHoldNotActiveError(hold.HoldID, hold.Status)
	}

	justification := strings.TrimSpace(input.Justification)
	if strings.EqualFold(justification, strings.TrimSpace(hold.Reason)) {
		return nil, models.NewValidationError("justification must be distinct from the original hold reason")
	}

	override := &models.HoldOverride{
		OverriddenBy:  input.OverriddenBy,
		Justification: justification,
		DurationHours: input.DurationHours,
		OverriddenAt:  s.clock.Now(),
		AuditID:       input.AuditID,
	}

	// The repository guards on status = ACTIVE, so a concurrent override
	// that committed between the read above and this write matches zero rows
	overridden, err := s.holdRepo.Override(ctx, input.HoldID, override)
	if err != nil {
		return nil, err
	}
	if !overridden {
		return nil, models.NewHoldNotActiveError(hold.HoldID, models.HoldStatusOverridden)
	}

	return s.holdRepo.GetByID(ctx, input.HoldID)
}

// GetByID retrieves a hold by id
func (s *holdService) GetByID(ctx context.Context, holdID string) (*models.SettlementHold, error) {
	if models.IsBlank(holdID) {
		return nil, models.NewValidationError("holdId is required")
	}
	return s.holdRepo.GetByID(ctx, holdID)
}

// List retrieves holds newest-first with a clamped limit
func (s *holdService) List(ctx context.Context, filters models.HoldFilters) ([]models.SettlementHold, error) {
	return s.holdRepo.List(ctx, filters)
}
