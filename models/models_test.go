package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// Test AuditWriteInput validation
func TestAuditWriteInputValidation(t *testing.T) {
	validInput := AuditWriteInput{
		Actor:  Actor{UserID: "u-1", Role: "platform-admin"},
		Action: "config.fee.create_version",
		Entity: EntityRef{Type: "FEE_CONFIG", ID: "tenant-1"},
		Reason: "quarterly fee adjustment",
	}
	if errs := validInput.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for valid input, got: %v", errs)
	}

	invalidInput := AuditWriteInput{
		Actor:  Actor{UserID: "", Role: ""},
		Action: "",
		Entity: EntityRef{},
		Reason: "   ",
	}
	if errs := invalidInput.Validate(); len(errs) != 6 {
		t.Errorf("Expected 6 errors for empty input, got: %v", errs)
	}
}

// Test CreateConfigVersionInput validation
func TestCreateConfigVersionInputValidation(t *testing.T) {
	validInput := CreateConfigVersionInput{
		TenantID:  "tenant-1",
		Reason:    "new spread for EUR corridor",
		CreatedBy: Creator{UserID: "u-1", Role: "platform-admin"},
		Rules:     json.RawMessage(`{"spreadBps": 25}`),
	}
	if errs := validInput.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for valid input, got: %v", errs)
	}

	invalidInput := CreateConfigVersionInput{}
	if errs := invalidInput.Validate(); len(errs) != 5 {
		t.Errorf("Expected 5 errors for empty input, got: %v", errs)
	}
}

// Test CreateHoldInput validation
func TestCreateHoldInputValidation(t *testing.T) {
	validInput := CreateHoldInput{
		TenantID:  "tenant-1",
		Scope:     HoldScope{OrderID: "ord-1"},
		Subsystem: SubsystemPayments,
		Reason:    "chargeback under investigation",
		CreatedBy: Creator{UserID: "u-1", Role: "risk-officer"},
		AuditID:   "aud-1",
	}
	if errs := validInput.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for valid input, got: %v", errs)
	}

	// Empty scope is a validation failure, not a subsystem failure
	noScope := validInput
	noScope.Scope = HoldScope{}
	errs := noScope.Validate()
	if len(errs) != 1 {
		t.Errorf("Expected 1 error for empty scope, got: %v", errs)
	}
}

// Test OverrideHoldInput validation
func TestOverrideHoldInputValidation(t *testing.T) {
	validInput := OverrideHoldInput{
		HoldID:        "hold-1",
		Reason:        "override after manual review",
		Justification: "chargeback resolved in supplier's favor",
		OverriddenBy:  Creator{UserID: "u-2", Role: "platform-admin"},
		AuditID:       "aud-2",
	}
	if errs := validInput.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for valid input, got: %v", errs)
	}

	invalidInput := OverrideHoldInput{}
	if errs := invalidInput.Validate(); len(errs) != 6 {
		t.Errorf("Expected 6 errors for empty input, got: %v", errs)
	}
}

// Test CreateChangeControlInput validation
func TestCreateChangeControlInputValidation(t *testing.T) {
	validInput := CreateChangeControlInput{
		Type:      "POLICY_CHANGE",
		Rationale: "align fee schedule with new contract",
		Reason:    "contract renewal",
		CreatedBy: Creator{UserID: "u-1", Role: "platform-admin"},
		AuditID:   "aud-3",
	}
	if errs := validInput.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for valid input, got: %v", errs)
	}

	invalidInput := CreateChangeControlInput{}
	if errs := invalidInput.Validate(); len(errs) != 6 {
		t.Errorf("Expected 6 errors for empty input, got: %v", errs)
	}
}

// Test RecordApprovalInput decision membership
func TestRecordApprovalInputValidation(t *testing.T) {
	base := RecordApprovalInput{
		ProposalID:   "msp-1",
		ApproverID:   "u-1",
		ApproverRole: "cfo",
		Decision:     DecisionApprove,
		Reason:       "reviewed the diff",
	}
	if errs := base.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for valid input, got: %v", errs)
	}

	reject := base
	reject.Decision = DecisionReject
	if errs := reject.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for REJECT decision, got: %v", errs)
	}

	bad := base
	bad.Decision = "MAYBE"
	errs := bad.Validate()
	if len(errs) != 1 {
		t.Errorf("Expected 1 error for unknown decision, got: %v", errs)
	}
}

func TestValidSubsystem(t *testing.T) {
	for _, s := range []HoldSubsystem{SubsystemPayments, SubsystemFreight, SubsystemCompliance, SubsystemRisk} {
		if !ValidSubsystem(s) {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if ValidSubsystem("BILLING") {
		t.Error("Expected BILLING to be invalid")
	}
	if ValidSubsystem("") {
		t.Error("Expected empty subsystem to be invalid")
	}
}

func TestHoldScopeIsEmpty(t *testing.T) {
	if !(HoldScope{}).IsEmpty() {
		t.Error("Expected zero scope to be empty")
	}
	if (HoldScope{SupplierID: "sup-1"}).IsEmpty() {
		t.Error("Expected scope with supplierId to be non-empty")
	}
	if !(HoldScope{OrderID: "   "}).IsEmpty() {
		t.Error("Expected whitespace-only scope to be empty")
	}
}

// Test the protected escrow release triggers
func TestCheckProtectedTriggers(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	// Omitted triggers block nothing
	empty := EscrowRules{}
	if err := empty.CheckProtectedTriggers(); err != nil {
		t.Errorf("Expected no error for empty rules, got: %v", err)
	}

	// Explicit true is allowed
	allowed := EscrowRules{
		Triggers: &EscrowTriggers{
			SupplierRelease: &EscrowReleaseTrigger{
				RequiresDeliveryConfirmed: boolPtr(true),
				RequiresCertificateIssued: boolPtr(true),
			},
		},
	}
	if err := allowed.CheckProtectedTriggers(); err != nil {
		t.Errorf("Expected no error for explicit true triggers, got: %v", err)
	}

	// Explicitly disabling any protected trigger is rejected
	cases := []EscrowRules{
		{Triggers: &EscrowTriggers{SupplierRelease: &EscrowReleaseTrigger{RequiresDeliveryConfirmed: boolPtr(false)}}},
		{Triggers: &EscrowTriggers{SupplierRelease: &EscrowReleaseTrigger{RequiresCertificateIssued: boolPtr(false)}}},
		{Triggers: &EscrowTriggers{ComplianceRelease: &EscrowReleaseTrigger{RequiresCertificateIssued: boolPtr(false)}}},
		{Triggers: &EscrowTriggers{FreightRelease: &EscrowReleaseTrigger{RequiresDeliveryConfirmed: boolPtr(false)}}},
	}
	for i, rules := range cases {
		err := rules.CheckProtectedTriggers()
		if err == nil {
			t.Errorf("Case %d: expected core invariant violation, got nil", i)
			continue
		}
		if !IsCode(err, CodeCoreInvariantViolation) {
			t.Errorf("Case %d: expected code %s, got: %v", i, CodeCoreInvariantViolation, err)
		}
	}

	// A non-protected trigger may be disabled
	free := EscrowRules{
		Triggers: &EscrowTriggers{
			ComplianceRelease: &EscrowReleaseTrigger{RequiresDeliveryConfirmed: boolPtr(false)},
		},
	}
	if err := free.CheckProtectedTriggers(); err != nil {
		t.Errorf("Expected no error for non-protected trigger, got: %v", err)
	}
}

func TestClampLimit(t *testing.T) {
	if got := ClampLimit(0, 50); got != 50 {
		t.Errorf("Expected fallback 50 for zero limit, got %d", got)
	}
	if got := ClampLimit(-5, 50); got != 50 {
		t.Errorf("Expected fallback 50 for negative limit, got %d", got)
	}
	if got := ClampLimit(30, 50); got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}
	if got := ClampLimit(5000, 50); got != 200 {
		t.Errorf("Expected cap 200, got %d", got)
	}
}

// Timestamps must round-trip exactly or stored integrity hashes break
func TestTimestampRoundTrip(t *testing.T) {
	original := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)

	formatted := FormatTimestamp(original)
	parsed, err := ParseTimestamp(formatted)
	if err != nil {
		t.Fatalf("Failed to parse formatted timestamp: %v", err)
	}

	if !parsed.Equal(original) {
		t.Errorf("Expected %v after round trip, got %v", original, parsed)
	}
	if FormatTimestamp(parsed) != formatted {
		t.Errorf("Expected stable formatting, got %s then %s", formatted, FormatTimestamp(parsed))
	}
}

func TestConfigID(t *testing.T) {
	if got := ConfigID(ConfigTypeFee, "tenant-1", 3); got != "FEE-tenant-1-v3" {
		t.Errorf("Expected FEE-tenant-1-v3, got %s", got)
	}
}

// Test DomainError code matching through errors.Is
func TestDomainErrorIs(t *testing.T) {
	err := NewHoldNotActiveError("hold-1", HoldStatusOverridden)

	if !errors.Is(err, &DomainError{Code: CodeHoldNotActive}) {
		t.Error("Expected errors.Is to match by code")
	}
	if errors.Is(err, &DomainError{Code: CodeNotFound}) {
		t.Error("Expected errors.Is to reject a different code")
	}
	if !IsCode(err, CodeHoldNotActive) {
		t.Error("Expected IsCode to match")
	}
	if IsCode(errors.New("plain"), CodeHoldNotActive) {
		t.Error("Expected IsCode to reject non-domain errors")
	}
}
