package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tradeverity/governance-core/canonical"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/repositories"
)

// MultisigService is the build-phase authority approval workflow. Every
// mutating operation requires the activation build flag; the two execution
// entry points are forbidden permanently and unconditionally.
type MultisigService interface {
	CreateProposalDraft(ctx context.Context, input *models.CreateProposalInput) (*models.MultisigProposal, error)
	RecordApprovalDecision(ctx context.Context, input *models.RecordApprovalInput) (*models.ApprovalEntry, error)
	ComputeQuorumSnapshot(ctx context.Context, input *models.ComputeQuorumInput) (*models.QuorumSnapshot, error)
	BuildExecutionPlan(ctx context.Context, input *models.BuildPlanInput) (*models.ExecutionPlan, error)
	TriggerRuntimeActivation(ctx context.Context) error
	ExecuteWorkflow(ctx context.Context) error
}

// multisigService implements MultisigService interface
type multisigService struct {
	buildEnabled bool
	proposalRepo repositories.ProposalRepository
	approvalRepo repositories.ApprovalRepository
	snapshotRepo repositories.QuorumSnapshotRepository
	ledger       LedgerService
	clock        Clock
	ids          IDGenerator
}

// NewMultisigService creates a new authority multisig service. buildEnabled
// is resolved once at startup from configuration, never re-read per call.
func NewMultisigService(
	buildEnabled bool,
	proposalRepo repositories.ProposalRepository,
	approvalRepo repositories.ApprovalRepository,
	snapshotRepo repositories.QuorumSnapshotRepository,
	ledger LedgerService,
	clock Clock,
	ids IDGenerator,
) MultisigService {
	return &multisigService{
		buildEnabled: buildEnabled,
		proposalRepo: proposalRepo,
		approvalRepo: approvalRepo,
		snapshotRepo: snapshotRepo,
		ledger:       ledger,
		clock:        clock,
		ids:          ids,
	}
}

// CreateProposalDraft persists a new proposal draft plus its audit entry.
// The proposal id is derived from the proposal content so identical
// resubmissions are traceable; the idempotency key additionally folds in the
// submission time.
func (s *multisigService) CreateProposalDraft(ctx context.Context, input *models.CreateProposalInput) (*models.MultisigProposal, error) {
	if !s.buildEnabled {
		return nil, models.NewBuildDisabledError("createProposalDraft")
	}
	if errors := input.Validate(); len(errors) > 0 {
		return nil, models.NewValidationError("invalid proposal input: %s", strings.Join(errors, ", "))
	}

	changesHash, err := canonical.Hash(input.ProposedChanges)
	if err != nil {
		return nil, fmt.Errorf("failed to hash proposed changes: %w", err)
	}

	idHash, err := canonical.Hash(map[string]interface{}{
		"type":        input.Type,
		"scope":       input.Scope,
		"changesHash": changesHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to derive proposal id: %w", err)
	}
	proposalID := "msp-" + idHash[:32]

	createdAt := s.clock.Now()
	idempotencyKey, err := canonical.Hash(map[string]interface{}{
		"proposalId": proposalID,
		"createdAt":  models.FormatTimestamp(createdAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to derive idempotency key: %w", err)
	}

	proposal := &models.MultisigProposal{
		ProposalID:     proposalID,
		Type:           strings.TrimSpace(input.Type),
		Scope:          input.Scope,
		SubmittedBy:    input.SubmittedBy,
		Status:         models.ProposalStatusDraft,
		Reason:         strings.TrimSpace(input.Reason),
		EvidenceRefs:   input.EvidenceRefs,
		ChangesHash:    changesHash,
		IdempotencyKey: idempotencyKey,
		Metadata:       models.ProposalMetadata{BuildPhaseOnly: true},
		CreatedAt:      createdAt,
	}

	record, err := s.ledger.Write(ctx, &models.AuditWriteInput{
		Actor: models.Actor{
			UserID: input.SubmittedBy.UserID,
			Role:   input.SubmittedBy.Role,
		},
		Action:   "multisig.proposal.create_draft",
		Entity:   models.EntityRef{Type: "MULTISIG_PROPOSAL", ID: proposalID},
		Reason:   input.Reason,
		Before:   nil,
		After:    proposal,
		Evidence: input.EvidenceRefs,
		TenantID: input.Scope.TenantID,
	})
	if err != nil {
		return nil, err
	}
	proposal.AuditID = record.AuditID

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}

	return proposal, nil
}

// RecordApprovalDecision appends one approval decision. No quorum logic
// happens here; this call is purely an append.
func (s *multisigService) RecordApprovalDecision(ctx context.Context, input *models.RecordApprovalInput) (*models.ApprovalEntry, error) {
	if !s.buildEnabled {
		return nil, models.NewBuildDisabledError("recordApprovalDecision")
	}
	if errors := input.Validate(); len(errors) > 0 {
		return nil, models.NewValidationError("invalid approval input: %s", strings.Join(errors, ", "))
	}

	proposal, err := s.proposalRepo.GetByID(ctx, input.ProposalID)
	if err != nil {
		return nil, err
	}

	signedAt := s.clock.Now()
	entryHash, err := canonical.Hash(map[string]interface{}{
		"proposalId":   proposal.ProposalID,
		"approverId":   input.ApproverID,
		"approverRole": input.ApproverRole,
		"decision":     input.Decision,
		"reason":       input.Reason,
		"signedAt":     models.FormatTimestamp(signedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute entry hash: %w", err)
	}

	entry := &models.ApprovalEntry{
		EntryID:      "msa-" + s.ids.NewID(),
		ProposalID:   proposal.ProposalID,
		ApproverID:   strings.TrimSpace(input.ApproverID),
		ApproverRole: strings.TrimSpace(input.ApproverRole),
		Decision:     input.Decision,
		Reason:       strings.TrimSpace(input.Reason),
		SignedAt:     signedAt,
		EntryHash:    entryHash,
	}

	record, err := s.ledger.Write(ctx, &models.AuditWriteInput{
		Actor: models.Actor{
			UserID: input.ApproverID,
			Role:   input.ApproverRole,
		},
		Action:   "multisig.approval.record_decision",
		Entity:   models.EntityRef{Type: "MULTISIG_PROPOSAL", ID: proposal.ProposalID},
		Reason:   input.Reason,
		Before:   nil,
		After:    entry,
		TenantID: proposal.Scope.TenantID,
	})
	if err != nil {
		return nil, err
	}
	entry.AuditID = record.AuditID

	if err := s.approvalRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ComputeQuorumSnapshot recounts all approval entries for the proposal and
// persists a fresh snapshot. The count is always a live recount of APPROVE
// decisions, never an incrementally maintained counter.
func (s *multisigService) ComputeQuorumSnapshot(ctx context.Context, input *models.ComputeQuorumInput) (*models.QuorumSnapshot, error) {
	if !s.buildEnabled {
		return nil, models.NewBuildDisabledError("computeQuorumSnapshot")
	}
	if models.IsBlank(input.ProposalID) {
		return nil, models.NewValidationError("proposalId is required")
	}
	if models.IsBlank(input.RequestedBy.UserID) || models.IsBlank(input.RequestedBy.Role) {
		return nil, models.NewValidationError("requester userId and role are required")
	}

	proposal, err := s.proposalRepo.GetByID(ctx, input.ProposalID)
	if err != nil {
		return nil, err
	}

	entries, err := s.approvalRepo.ListByProposal(ctx, proposal.ProposalID)
	if err != nil {
		return nil, err
	}

	currentApprovals := 0
	for _, entry := range entries {
		if entry.Decision == models.DecisionApprove {
			currentApprovals++
		}
	}

	requiredApprovals := input.RequiredApprovals
	if requiredApprovals < 1 {
		requiredApprovals = 1
	}

	computedAt := s.clock.Now()
	snapshot := &models.QuorumSnapshot{
		SnapshotID:        "msq-" + s.ids.NewID(),
		ProposalID:        proposal.ProposalID,
		RequiredApprovals: requiredApprovals,
		CurrentApprovals:  currentApprovals,
		QuorumMet:         currentApprovals >= requiredApprovals,
		ComputedAt:        computedAt,
	}

	snapshot.SnapshotHash, err = canonical.Hash(map[string]interface{}{
		"proposalId":        snapshot.ProposalID,
		"requiredApprovals": snapshot.RequiredApprovals,
		"currentApprovals":  snapshot.CurrentApprovals,
		"quorumMet":         snapshot.QuorumMet,
		"computedAt":        models.FormatTimestamp(computedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute snapshot hash: %w", err)
	}

	record, err := s.ledger.Write(ctx, &models.AuditWriteInput{
		Actor:    input.RequestedBy,
		Action:   "multisig.quorum.compute_snapshot",
		Entity:   models.EntityRef{Type: "MULTISIG_PROPOSAL", ID: proposal.ProposalID},
		Reason:   fmt.Sprintf("quorum recount: %d of %d approvals", currentApprovals, requiredApprovals),
		Before:   nil,
		After:    snapshot,
		TenantID: proposal.Scope.TenantID,
	})
	if err != nil {
		return nil, err
	}
	snapshot.AuditID = record.AuditID

	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// BuildExecutionPlan derives a deterministic, never-authorized plan from the
// given steps. Pure: nothing is persisted, and the same inputs with the same
// injected clock produce the same plan id and hash.
func (s *multisigService) BuildExecutionPlan(ctx context.Context, input *models.BuildPlanInput) (*models.ExecutionPlan, error) {
	if models.IsBlank(input.ProposalID) {
		return nil, models.NewValidationError("proposalId is required")
	}

	builtAt := s.clock.Now()
	planHash, err := canonical.Hash(map[string]interface{}{
		"proposalId": input.ProposalID,
		"steps":      input.Steps,
		"builtAt":    models.FormatTimestamp(builtAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute plan hash: %w", err)
	}

	return &models.ExecutionPlan{
		PlanID:              "msplan-" + planHash[:24],
		ProposalID:          input.ProposalID,
		Steps:               input.Steps,
		PlanHash:            planHash,
		BuiltAt:             builtAt,
		ExecutionAuthorized: false,
	}, nil
}

// TriggerRuntimeActivation always fails. The prohibition on runtime
// execution is permanent and independent of the build flag.
func (s *multisigService) TriggerRuntimeActivation(ctx context.Context) error {
	return models.NewRuntimeExecutionError("triggerRuntimeActivation")
}

// ExecuteWorkflow always fails, regardless of the build flag's state.
func (s *multisigService) ExecuteWorkflow(ctx context.Context) error {
	return models.NewRuntimeExecutionError("executeWorkflow")
}
