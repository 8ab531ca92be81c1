package models

import "time"

// HoldStatus is the settlement-hold state. Transitions are one-way:
// ACTIVE -> OVERRIDDEN is terminal in this phase.
type HoldStatus string

const (
	HoldStatusActive     HoldStatus = "ACTIVE"
	HoldStatusOverridden HoldStatus = "OVERRIDDEN"
	HoldStatusReleased   HoldStatus = "RELEASED"
)

// HoldSubsystem identifies which settlement subsystem placed the hold.
type HoldSubsystem string

const (
	SubsystemPayments   HoldSubsystem = "PAYMENTS"
	SubsystemFreight    HoldSubsystem = "FREIGHT"
	SubsystemCompliance HoldSubsystem = "COMPLIANCE"
	SubsystemRisk       HoldSubsystem = "RISK"
)

// ValidSubsystem reports whether s is one of the enumerated subsystems.
func ValidSubsystem(s HoldSubsystem) bool {
	switch s {
	case SubsystemPayments, SubsystemFreight, SubsystemCompliance, SubsystemRisk:
		return true
	}
	return false
}

// HoldScope identifies what the hold blocks. At least one id must be set.
type HoldScope struct {
	OrderID    string `json:"orderId,omitempty"`
	PaymentID  string `json:"paymentId,omitempty"`
	PayoutID   string `json:"payoutId,omitempty"`
	SupplierID string `json:"supplierId,omitempty"`
}

// IsEmpty reports whether no scope identifier is set.
func (s HoldScope) IsEmpty() bool {
	return IsBlank(s.OrderID) && IsBlank(s.PaymentID) && IsBlank(s.PayoutID) && IsBlank(s.SupplierID)
}

// HoldOverride records who lifted a hold and why.
type HoldOverride struct {
	OverriddenBy  Creator   `json:"overriddenBy"`
	Justification string    `json:"justification"`
	DurationHours *int      `json:"durationHours,omitempty"`
	OverriddenAt  time.Time `json:"overriddenAt"`
	AuditID       string    `json:"auditId"`
}

// SettlementHold is an administrative block on fund release for a scoped
// entity.
type SettlementHold struct {
	HoldID     string        `json:"holdId"`
	TenantID   string        `json:"tenantId"`
	Scope      HoldScope     `json:"scope"`
	Subsystem  HoldSubsystem `json:"subsystem"`
	Reason     string        `json:"reason"`
	ReasonCode string        `json:"reasonCode,omitempty"`
	Status     HoldStatus    `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	CreatedBy  Creator       `json:"createdBy"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	Override   *HoldOverride `json:"override,omitempty"`
	AuditID    string        `json:"auditId"`
}

// CreateHoldInput carries a request to place a new hold.
type CreateHoldInput struct {
	TenantID   string        `json:"tenantId"`
	Scope      HoldScope     `json:"scope"`
	Subsystem  HoldSubsystem `json:"subsystem"`
	Reason     string        `json:"reason"`
	ReasonCode string        `json:"reasonCode,omitempty"`
	CreatedBy  Creator       `json:"createdBy"`
	AuditID    string        `json:"auditId"`
}

// Validate checks the required fields and returns human-readable problems.
// Subsystem membership is checked separately so it can fail with its own
// error code.
func (in *CreateHoldInput) Validate() []string {
	var errors []string

	if IsBlank(in.Reason) {
		errors = append(errors, "reason is required")
	}
	if IsBlank(in.CreatedBy.UserID) {
		errors = append(errors, "creator userId is required")
	}
	if IsBlank(in.CreatedBy.Role) {
		errors = append(errors, "creator role is required")
	}
	if IsBlank(in.AuditID) {
		errors = append(errors, "auditId is required")
	}
	if in.Scope.IsEmpty() {
		errors = append(errors, "scope must contain at least one of orderId, paymentId, payoutId, supplierId")
	}

	return errors
}

// OverrideHoldInput carries a request to override an existing hold.
type OverrideHoldInput struct {
	HoldID        string  `json:"holdId"`
	Reason        string  `json:"reason"`
	Justification string  `json:"justification"`
	DurationHours *int    `json:"durationHours,omitempty"`
	OverriddenBy  Creator `json:"overriddenBy"`
	AuditID       string  `json:"auditId"`
}

// Validate checks the required fields and returns human-readable problems.
func (in *OverrideHoldInput) Validate() []string {
	var errors []string

	if IsBlank(in.HoldID) {
		errors = append(errors, "holdId is required")
	}
	if IsBlank(in.Reason) {
		errors = append(errors, "reason is required")
	}
	if IsBlank(in.Justification) {
		errors = append(errors, "justification is required")
	}
	if IsBlank(in.OverriddenBy.UserID) {
		errors = append(errors, "overrider userId is required")
	}
	if IsBlank(in.OverriddenBy.Role) {
		errors = append(errors, "overrider role is required")
	}
	if IsBlank(in.AuditID) {
		errors = append(errors, "auditId is required")
	}

	return errors
}

// HoldFilters narrows a hold listing. Zero values mean "no filter".
type HoldFilters struct {
	TenantID string
	Status   HoldStatus
	Limit    int
}
