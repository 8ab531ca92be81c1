package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ConfigType discriminates the three versioned policy stores.
type ConfigType string

const (
	ConfigTypeFee    ConfigType = "FEE"
	ConfigTypeFX     ConfigType = "FX"
	ConfigTypeEscrow ConfigType = "ESCROW"
)

// Config version statuses. Exactly one version per (tenant, type) is ACTIVE
// at any time; every older version is RETIRED.
const (
	ConfigStatusActive  = "ACTIVE"
	ConfigStatusRetired = "RETIRED"
)

// ConfigVersion is one immutable, monotonically numbered policy snapshot.
// Rows are never updated after insertion except for the single
// ACTIVE -> RETIRED status flip when a successor version is created.
type ConfigVersion struct {
	ConfigID      string          `json:"configId"`
	TenantID      string          `json:"tenantId"`
	ConfigType    ConfigType      `json:"configType"`
	Version       int             `json:"version"`
	Status        string          `json:"status"`
	EffectiveFrom time.Time       `json:"effectiveFrom"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     Creator         `json:"createdBy"`
	Reason        string          `json:"reason"`
	Rules         json.RawMessage `json:"rules"`
	CanonicalHash string          `json:"canonicalHash"`
	AuditID       string          `json:"auditId"`
	RetiredAt     *time.Time      `json:"retiredAt,omitempty"`
}

// ConfigID derives the composite identity of a version.
func ConfigID(configType ConfigType, tenantID string, version int) string {
	return fmt.Sprintf("%s-%s-v%d", configType, tenantID, version)
}

// CreateConfigVersionInput carries a request for a new policy version.
type CreateConfigVersionInput struct {
	TenantID      string          `json:"tenantId"`
	Reason        string          `json:"reason"`
	CreatedBy     Creator         `json:"createdBy"`
	EffectiveFrom *time.Time      `json:"effectiveFrom,omitempty"`
	Rules         json.RawMessage `json:"rules"`
}

// Validate checks the required fields and returns human-readable problems.
func (in *CreateConfigVersionInput) Validate() []string {
	var errors []string

	if IsBlank(in.TenantID) {
		errors = append(errors, "tenantId is required")
	}
	if IsBlank(in.Reason) {
		errors = append(errors, "reason is required")
	}
	if IsBlank(in.CreatedBy.UserID) {
		errors = append(errors, "creator userId is required")
	}
	if IsBlank(in.CreatedBy.Role) {
		errors = append(errors, "creator role is required")
	}
	if len(in.Rules) == 0 {
		errors = append(errors, "rules payload is required")
	}

	return errors
}
