package models

import "time"

// Approval decisions.
const (
	DecisionApprove = "APPROVE"
	DecisionReject  = "REJECT"
)

// Proposal status. Proposals never progress past DRAFT inside this core:
// the authority workflow is build-phase only.
const ProposalStatusDraft = "DRAFT"

// ProposalScope identifies what a proposal would change.
type ProposalScope struct {
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	TenantID   string `json:"tenantId,omitempty"`
}

// ProposalMetadata tags every proposal as build-phase-only. The flag is
// stamped unconditionally; there is no code path that clears it.
type ProposalMetadata struct {
	BuildPhaseOnly bool `json:"buildPhaseOnly"`
}

// MultisigProposal is a gated authority proposal draft. Append-only.
type MultisigProposal struct {
	ProposalID     string           `json:"proposalId"`
	Type           string           `json:"type"`
	Scope          ProposalScope    `json:"scope"`
	SubmittedBy    Creator          `json:"submittedBy"`
	Status         string           `json:"status"`
	Reason         string           `json:"reason"`
	EvidenceRefs   []string         `json:"evidenceRefs,omitempty"`
	ChangesHash    string           `json:"changesHash"`
	IdempotencyKey string           `json:"idempotencyKey"`
	Metadata       ProposalMetadata `json:"metadata"`
	CreatedAt      time.Time        `json:"createdAt"`
	AuditID        string           `json:"auditId"`
}

// ApprovalEntry is one recorded approval decision. Pure append; quorum is
// never derived here.
type ApprovalEntry struct {
	EntryID      string    `json:"entryId"`
	ProposalID   string    `json:"proposalId"`
	ApproverID   string    `json:"approverId"`
	ApproverRole string    `json:"approverRole"`
	Decision     string    `json:"decision"`
	Reason       string    `json:"reason"`
	SignedAt     time.Time `json:"signedAt"`
	EntryHash    string    `json:"entryHash"`
	AuditID      string    `json:"auditId"`
}

// QuorumSnapshot is a point-in-time recount of APPROVE entries against the
// required threshold. CurrentApprovals is always a live recount, never an
// incrementally maintained counter.
type QuorumSnapshot struct {
	SnapshotID        string    `json:"snapshotId"`
	ProposalID        string    `json:"proposalId"`
	RequiredApprovals int       `json:"requiredApprovals"`
	CurrentApprovals  int       `json:"currentApprovals"`
	QuorumMet         bool      `json:"quorumMet"`
	ComputedAt        time.Time `json:"computedAt"`
	SnapshotHash      string    `json:"snapshotHash"`
	AuditID           string    `json:"auditId"`
}

// ExecutionPlanStep is one ordered step of a build-phase execution plan.
type ExecutionPlanStep struct {
	Sequence    int    `json:"sequence"`
	Description string `json:"description"`
	TargetType  string `json:"targetType"`
	TargetID    string `json:"targetId"`
}

// ExecutionPlan is a deterministic, never-authorized description of what an
// approved proposal would do. ExecutionAuthorized is false on every plan this
// core can produce.
type ExecutionPlan struct {
	PlanID              string              `json:"planId"`
	ProposalID          string              `json:"proposalId"`
	Steps               []ExecutionPlanStep `json:"steps"`
	PlanHash            string              `json:"planHash"`
	BuiltAt             time.Time           `json:"builtAt"`
	ExecutionAuthorized bool                `json:"executionAuthorized"`
}

// CreateProposalInput carries a new proposal draft.
type CreateProposalInput struct {
	Type            string        `json:"type"`
	Scope           ProposalScope `json:"scope"`
	SubmittedBy     Creator       `json:"submittedBy"`
	Reason          string        `json:"reason"`
	EvidenceRefs    []string      `json:"evidenceRefs,omitempty"`
	ProposedChanges interface{}   `json:"proposedChanges"`
}

// Validate checks the required fields and returns human-readable problems.
func (in *CreateProposalInput) Validate() []string {
	var errors []string

	if IsBlank(in.Reason) {
		errors = append(errors, "reason is required")
	}
	if IsBlank(in.Type) {
		errors = append(errors, "type is required")
	}
	if IsBlank(in.SubmittedBy.UserID) {
		errors = append(errors, "submitter userId is required")
	}
	if IsBlank(in.SubmittedBy.Role) {
		errors = append(errors, "submitter role is required")
	}

	return errors
}

// RecordApprovalInput carries one approval decision.
type RecordApprovalInput struct {
	ProposalID   string `json:"proposalId"`
	ApproverID   string `json:"approverId"`
	ApproverRole string `json:"approverRole"`
	Decision     string `json:"decision"`
	Reason       string `json:"reason"`
}

// Validate checks the required fields and returns human-readable problems.
func (in *RecordApprovalInput) Validate() []string {
	var errors []string

	if IsBlank(in.ProposalID) {
		errors = append(errors, "proposalId is required")
	}
	if IsBlank(in.ApproverID) {
		errors = append(errors, "approverId is required")
	}
	if IsBlank(in.ApproverRole) {
		errors = append(errors, "approverRole is required")
	}
	if IsBlank(in.Reason) {
		errors = append(errors, "reason is required")
	}
	if in.Decision != DecisionApprove && in.Decision != DecisionReject {
		errors = append(errors, "decision must be APPROVE or REJECT")
	}

	return errors
}

// ComputeQuorumInput asks for a fresh quorum snapshot.
type ComputeQuorumInput struct {
	ProposalID        string `json:"proposalId"`
	RequiredApprovals int    `json:"requiredApprovals"`
	RequestedBy       Actor  `json:"requestedBy"`
}

// BuildPlanInput asks for a deterministic execution plan.
type BuildPlanInput struct {
	ProposalID string              `json:"proposalId"`
	Steps      []ExecutionPlanStep `json:"steps"`
}
