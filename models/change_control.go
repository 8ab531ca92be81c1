package models

import "time"

// Change-control event status. Only SUBMITTED exists in this phase; the
// review/approval progression lives outside this core.
const ChangeControlStatusSubmitted = "SUBMITTED"

// Impact risk levels.
const (
	RiskLevelLow  = "LOW"
	RiskLevelMed  = "MED"
	RiskLevelHigh = "HIGH"
)

// ImpactAssessment captures the submitter's view of blast radius.
type ImpactAssessment struct {
	RiskLevel       string   `json:"riskLevel"`
	RollbackPlan    string   `json:"rollbackPlan,omitempty"`
	AffectedParties []string `json:"affectedParties,omitempty"`
}

// ChangeControlEvent is one governance change-control submission.
type ChangeControlEvent struct {
	ChangeControlID string           `json:"changeControlId"`
	Type            string           `json:"type"`
	Scope           *EntityRef       `json:"scope,omitempty"`
	Rationale       string           `json:"rationale"`
	Reason          string           `json:"reason"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	CreatedBy       Creator          `json:"createdBy"`
	Impact          ImpactAssessment `json:"impact"`
	TenantID        string           `json:"tenantId,omitempty"`
	AuditID         string           `json:"auditId"`
}

// CreateChangeControlInput carries a new change-control submission.
type CreateChangeControlInput struct {
	Type      string            `json:"type"`
	Scope     *EntityRef        `json:"scope,omitempty"`
	Rationale string            `json:"rationale"`
	Reason    string            `json:"reason"`
	CreatedBy Creator           `json:"createdBy"`
	Impact    *ImpactAssessment `json:"impact,omitempty"`
	TenantID  string            `json:"tenantId,omitempty"`
	AuditID   string            `json:"auditId"`
}

// Validate checks the required fields and returns human-readable problems.
func (in *CreateChangeControlInput) Validate() []string {
	var errors []string

	if IsBlank(in.Type) {
		errors = append(errors, "type is required")
	}
	if IsBlank(in.Reason) {
		errors = append(errors, "reason is required")
	}
	if IsBlank(in.Rationale) {
		errors = append(errors, "rationale is required")
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

	return errors
}

// ChangeControlFilters narrows a change-control listing.
type ChangeControlFilters struct {
	TenantID string
	Limit    int
}
