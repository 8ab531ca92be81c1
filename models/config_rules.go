package models

import (
	"encoding/json"
	"fmt"
)

// FeeTier is one volume band of the platform fee schedule.
type FeeTier struct {
	MinMonthlyVolume float64 `json:"minMonthlyVolume"`
	FeePercent       float64 `json:"feePercent"`
}

// FeeRules is the typed payload of a FEE config version. All fields are
// optional; absent fields mean "unchanged from platform defaults".
type FeeRules struct {
	PlatformFeePercent *float64  `json:"platformFeePercent,omitempty"`
	MinimumFeeCents    *int64    `json:"minimumFeeCents,omitempty"`
	Currency           string    `json:"currency,omitempty"`
	Tiers              []FeeTier `json:"tiers,omitempty"`
}

// FXRules is the typed payload of an FX config version.
type FXRules struct {
	SpreadBps         *int     `json:"spreadBps,omitempty"`
	QuoteTTLSeconds   *int     `json:"quoteTtlSeconds,omitempty"`
	AllowedCurrencies []string `json:"allowedCurrencies,omitempty"`
	HedgingEnabled    *bool    `json:"hedgingEnabled,omitempty"`
}

// EscrowReleaseTrigger holds the conditions a release path checks before
// funds can leave escrow. Pointers distinguish "not mentioned" from an
// explicit true/false.
type EscrowReleaseTrigger struct {
	RequiresDeliveryConfirmed *bool `json:"requiresDeliveryConfirmed,omitempty"`
	RequiresCertificateIssued *bool `json:"requiresCertificateIssued,omitempty"`
}

// EscrowTriggers groups the release paths of the escrow policy.
type EscrowTriggers struct {
	SupplierRelease   *EscrowReleaseTrigger `json:"supplierRelease,omitempty"`
	ComplianceRelease *EscrowReleaseTrigger `json:"complianceRelease,omitempty"`
	FreightRelease    *EscrowReleaseTrigger `json:"freightRelease,omitempty"`
}

// EscrowRules is the typed payload of an ESCROW config version.
type EscrowRules struct {
	Triggers           *EscrowTriggers `json:"triggers,omitempty"`
	HoldbackPercent    *float64        `json:"holdbackPercent,omitempty"`
	MaxEscrowDays      *int            `json:"maxEscrowDays,omitempty"`
	DisputeFreezeFunds *bool           `json:"disputeFreezeFunds,omitempty"`
}

// CheckProtectedTriggers enforces the escrow core invariant: the four core
// release triggers may be omitted but never explicitly disabled.
func (r *EscrowRules) CheckProtectedTriggers() error {
	if r.Triggers == nil {
		return nil
	}

	type protected struct {
		name  string
		value *bool
	}

	var checks []protected
	if t := r.Triggers.SupplierRelease; t != nil {
		checks = append(checks,
			protected{"supplierRelease.requiresDeliveryConfirmed", t.RequiresDeliveryConfirmed},
			protected{"supplierRelease.requiresCertificateIssued", t.RequiresCertificateIssued},
		)
	}
	if t := r.Triggers.ComplianceRelease; t != nil {
		checks = append(checks, protected{"complianceRelease.requiresCertificateIssued", t.RequiresCertificateIssued})
	}
	if t := r.Triggers.FreightRelease; t != nil {
		checks = append(checks, protected{"freightRelease.requiresDeliveryConfirmed", t.RequiresDeliveryConfirmed})
	}

	for _, c := range checks {
		if c.value != nil && !*c.value {
			return NewCoreInvariantViolation(c.name)
		}
	}

	return nil
}

// ParseFeeRules validates and returns the typed fee payload.
func ParseFeeRules(raw json.RawMessage) (*FeeRules, error) {
	var rules FeeRules
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("invalid fee rules payload: %w", err)
	}
	return &rules, nil
}

// ParseFXRules validates and returns the typed FX payload.
func ParseFXRules(raw json.RawMessage) (*FXRules, error) {
	var rules FXRules
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("invalid fx rules payload: %w", err)
	}
	return &rules, nil
}

// ParseEscrowRules validates and returns the typed escrow payload.
func ParseEscrowRules(raw json.RawMessage) (*EscrowRules, error) {
	var rules EscrowRules
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("invalid escrow rules payload: %w", err)
	}
	return &rules, nil
}
