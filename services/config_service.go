package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tradeverity/governance-core/canonical"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/repositories"
)

// ConfigService is the versioned policy configuration engine. Three
// instances exist (fee, FX, escrow policy) differing only in config type and
// rules validation; the versioning mechanics are shared.
type ConfigService interface {
	ConfigType() models.ConfigType
	GetActive(ctx context.Context, tenantID string) (*models.ConfigVersion, error)
	CreateNewVersion(ctx context.Context, input *models.CreateConfigVersionInput) (*models.ConfigVersion, error)
	UpdateVersion(ctx context.Context, configID string) error
	ListVersions(ctx context.Context, tenantID string) ([]models.ConfigVersion, error)
}

// rulesValidator checks a raw rules payload before anything is hashed or
// written. It returns a typed DomainError on rejection.
type rulesValidator func(rules json.RawMessage) error

// configService implements ConfigService interface
type configService struct {
	configType    models.ConfigType
	configRepo    repositories.ConfigVersionRepository
	ledger        LedgerService
	clock         Clock
	validateRules rulesValidator
}

// NewFeePolicyService creates the platform-fee policy store
func NewFeePolicyService(configRepo repositories.ConfigVersionRepository, ledger LedgerService, clock Clock) ConfigService {
	return &configService{
		configType: models.ConfigTypeFee,
		configRepo: configRepo,
		ledger:     ledger,
		clock:      clock,
		validateRules: func(rules json.RawMessage) error {
			if _, err := models.ParseFeeRules(rules); err != nil {
				return models.NewValidationError("%v", err)
			}
			return nil
		},
	}
}

// NewFXPolicyService creates the FX policy store
func NewFXPolicyService(configRepo repositories.ConfigVersionRepository, ledger LedgerService, clock Clock) ConfigService {
	return &configService{
		configType: models.ConfigTypeFX,
		configRepo: configRepo,
		ledger:     ledger,
		clock:      clock,
		validateRules: func(rules json.RawMessage) error {
			if _, err := models.ParseFXRules(rules); err != nil {
				return models.NewValidationError("%v", err)
			}
			return nil
		},
	}
}

// NewEscrowPolicyService creates the escrow policy store. Its validator
// additionally enforces the protected release triggers: the four core
// triggers may never be explicitly disabled.
func NewEscrowPolicyService(configRepo repositories.ConfigVersionRepository, ledger LedgerService, clock Clock) ConfigService {
	return &configService{
		configType: models.ConfigTypeEscrow,
		configRepo: configRepo,
		ledger:     ledger,
		clock:      clock,
		validateRules: func(rules json.RawMessage) error {
			parsed, err := models.ParseEscrowRules(rules)
			if err != nil {
				return models.NewValidationError("%v", err)
			}
			return parsed.CheckProtectedTriggers()
		},
	}
}

// ConfigType returns which policy store this instance manages
func (s *configService) ConfigType() models.ConfigType {
	return s.configType
}

// GetActive retrieves the tenant's active version, or nil when none exists
func (s *configService) GetActive(ctx context.Context, tenantID string) (*models.ConfigVersion, error) {
	if models.IsBlank(tenantID) {
		return nil, models.NewValidationError("tenantId is required")
	}
	return s.configRepo.GetActive(ctx, s.configType, tenantID)
}

// CreateNewVersion validates the rules payload, writes the audit entry, then
// retires the current active version and inserts the successor. Validation
// failures (including protected-trigger violations) happen before any write.
func (s *configService) CreateNewVersion(ctx context.Context, input *models.CreateConfigVersionInput) (*models.ConfigVersion, error) {
	if errors := input.Validate(); len(errors) > 0 {
		return nil, models.NewValidationError("invalid config version input: %s", strings.Join(errors, ", "))
	}
	if err := s.validateRules(input.Rules); err != nil {
		return nil, err
	}

	current, err := s.configRepo.GetActive(ctx, s.configType, input.TenantID)
	if err != nil {
		return nil, err
	}

	maxVersion, err := s.configRepo.MaxVersion(ctx, s.configType, input.TenantID)
	if err != nil {
		return nil, err
	}
	nextVersion := maxVersion + 1

	now := s.clock.Now()
	effectiveFrom := now
	if input.EffectiveFrom != nil {
		effectiveFrom = *input.EffectiveFrom
	}

	canonicalHash, err := canonical.Hash(map[string]interface{}{
		"configType":    s.configType,
		"tenantId":      input.TenantID,
		"version":       nextVersion,
		"effectiveFrom": models.FormatTimestamp(effectiveFrom),
		"rules":         input.Rules,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute canonical hash: %w", err)
	}

	version := &models.ConfigVersion{
		ConfigID:      models.ConfigID(s.configType, input.TenantID, nextVersion),
		TenantID:      input.TenantID,
		ConfigType:    s.configType,
		Version:       nextVersion,
		Status:        models.ConfigStatusActive,
		EffectiveFrom: effectiveFrom,
		CreatedAt:     now,
		CreatedBy:     input.CreatedBy,
		Reason:        strings.TrimSpace(input.Reason),
		Rules:         input.Rules,
		CanonicalHash: canonicalHash,
	}

	record, err := s.ledger.Write(ctx, &models.AuditWriteInput{
		Actor: models.Actor{
			UserID: input.CreatedBy.UserID,
			Role:   input.CreatedBy.Role,
		},
		Action: fmt.Sprintf("config.%s.create_version", strings.ToLower(string(s.configType))),
		Entity: models.EntityRef{
			Type: string(s.configType) + "_CONFIG",
			ID:   input.TenantID,
		},
		Reason:   input.Reason,
		Before:   current,
		After:    version,
		TenantID: input.TenantID,
	})
	if err != nil {
		return nil, err
	}
	version.AuditID = record.AuditID

	if err := s.configRepo.CreateVersion(ctx, version, now); err != nil {
		return nil, err
	}

	return version, nil
}

// UpdateVersion always fails: config versions are immutable. The method
// exists so the contract is discoverable at the API surface.
func (s *configService) UpdateVersion(ctx context.Context, configID string) error {
	return models.NewImmutableVersionError(s.configType)
}

// ListVersions retrieves the tenant's full version history, newest first
func (s *configService) ListVersions(ctx context.Context, tenantID string) ([]models.ConfigVersion, error) {
	if models.IsBlank(tenantID) {
		return nil, models.NewValidationError("tenantId is required")
	}
	return s.configRepo.ListVersions(ctx, s.configType, tenantID)
}
