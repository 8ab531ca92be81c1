package models

import (
	"encoding/json"
	"time"
)

// AuditRecord is one immutable entry in the administrative audit ledger.
// Records are append-only: the ledger table rejects updates and deletes at
// the storage level, and IntegrityHash must always equal a recomputation
// over the other fields.
type AuditRecord struct {
	AuditID       string          `json:"auditId"`
	TS            time.Time       `json:"ts"`
	Actor         Actor           `json:"actor"`
	Action        string          `json:"action"`
	Entity        EntityRef       `json:"entity"`
	Reason        string          `json:"reason"`
	BeforeHash    string          `json:"beforeHash"`
	AfterHash     string          `json:"afterHash"`
	Evidence      []string        `json:"evidence,omitempty"`
	CorrelationID string          `json:"correlationId,omitempty"`
	TenantID      string          `json:"tenantId,omitempty"`
	IntegrityHash string          `json:"integrityHash"`
	BeforeState   json.RawMessage `json:"-"`
	AfterState    json.RawMessage `json:"-"`
}

// IntegrityPayload returns the normalized field set the integrity hash is
// computed over. Write and verify must use the exact same shape.
func (r *AuditRecord) IntegrityPayload() map[string]interface{} {
	return map[string]interface{}{
		"ts":            FormatTimestamp(r.TS),
		"actor":         r.Actor,
		"action":        r.Action,
		"entity":        r.Entity,
		"reason":        r.Reason,
		"beforeHash":    r.BeforeHash,
		"afterHash":     r.AfterHash,
		"evidence":      r.Evidence,
		"correlationId": r.CorrelationID,
		"tenantId":      r.TenantID,
	}
}

// AuditWriteInput carries everything needed to append a ledger entry.
// Before and After are the raw payloads being changed; either may be nil.
type AuditWriteInput struct {
	Actor         Actor       `json:"actor"`
	Action        string      `json:"action"`
	Entity        EntityRef   `json:"entity"`
	Reason        string      `json:"reason"`
	Before        interface{} `json:"before"`
	After         interface{} `json:"after"`
	Evidence      []string    `json:"evidence,omitempty"`
	CorrelationID string      `json:"correlationId,omitempty"`
	TenantID      string      `json:"tenantId,omitempty"`
}

// Validate checks the required fields and returns human-readable problems.
func (in *AuditWriteInput) Validate() []string {
	var errors []string

	if IsBlank(in.Reason) {
		errors = append(errors, "reason is required")
	}
	if IsBlank(in.Action) {
		errors = append(errors, "action is required")
	}
	if IsBlank(in.Actor.UserID) {
		errors = append(errors, "actor userId is required")
	}
	if IsBlank(in.Actor.Role) {
		errors = append(errors, "actor role is required")
	}
	if IsBlank(in.Entity.Type) {
		errors = append(errors, "entity type is required")
	}
	if IsBlank(in.Entity.ID) {
		errors = append(errors, "entity id is required")
	}

	return errors
}

// Verification outcome statuses.
const (
	VerificationPass = "PASS"
	VerificationFail = "FAIL"
)

// LedgerVerification is the structured result of an integrity sweep. A FAIL
// is data for the caller to grade, not an error.
type LedgerVerification struct {
	Status         string   `json:"status"`
	TotalRecords   int      `json:"totalRecords"`
	InvalidRecords int      `json:"invalidRecords"`
	Notes          []string `json:"notes"`
}
