package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tradeverity/governance-core/models"
)

// ProposalRepository persists multisig proposal drafts. Append-only.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *models.MultisigProposal) error
	GetByID(ctx context.Context, proposalID string) (*models.MultisigProposal, error)
}

// ApprovalRepository persists approval entries. Append-only.
type ApprovalRepository interface {
	Create(ctx context.Context, entry *models.ApprovalEntry) error
	ListByProposal(ctx context.Context, proposalID string) ([]models.ApprovalEntry, error)
}

// QuorumSnapshotRepository persists quorum snapshots. Append-only; every
// snapshot is a fresh row, never an update of a previous one.
type QuorumSnapshotRepository interface {
	Create(ctx context.Context, snapshot *models.QuorumSnapshot) error
	ListByProposal(ctx context.Context, proposalID string) ([]models.QuorumSnapshot, error)
}

type proposalRepository struct {
	db *sql.DB
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *sql.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *models.MultisigProposal) error {
	query := `
		INSERT INTO multisig_proposals (
			proposal_id, type, scope_entity_type, scope_entity_id,
			scope_tenant_id, submitted_by_user_id, submitted_by_role, status,
			reason, evidence_refs, changes_hash, idempotency_key,
			build_phase_only, created_at, audit_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	evidenceRefs, err := encodeStringList(proposal.EvidenceRefs)
	if err != nil {
		return fmt.Errorf("failed to encode evidence refs: %w", err)
	}

	buildPhaseOnly := 0
	if proposal.Metadata.BuildPhaseOnly {
		buildPhaseOnly = 1
	}

	_, err = r.db.ExecContext(ctx, query,
		proposal.ProposalID,
		proposal.Type,
		proposal.Scope.EntityType,
		proposal.Scope.EntityID,
		nullableString(proposal.Scope.TenantID),
		proposal.SubmittedBy.UserID,
		proposal.SubmittedBy.Role,
		proposal.Status,
		proposal.Reason,
		evidenceRefs,
		proposal.ChangesHash,
		proposal.IdempotencyKey,
		buildPhaseOnly,
		models.FormatTimestamp(proposal.CreatedAt),
		proposal.AuditID,
	)
	if err != nil {
		return fmt.Errorf("failed to create multisig proposal: %w", err)
	}

	return nil
}

func (r *proposalRepository) GetByID(ctx context.Context, proposalID string) (*models.MultisigProposal, error) {
	query := `
		SELECT proposal_id, type, scope_entity_type, scope_entity_id,
		       scope_tenant_id, submitted_by_user_id, submitted_by_role,
		       status, reason, evidence_refs, changes_hash, idempotency_key,
		       build_phase_only, created_at, audit_id
		FROM multisig_proposals
		WHERE proposal_id = ?
	`

	var proposal models.MultisigProposal
	var scopeTenantID, evidenceRefs sql.NullString
	var buildPhaseOnly int
	var createdAt string

	err := r.db.QueryRowContext(ctx, query, proposalID).Scan(
		&proposal.ProposalID,
		&proposal.Type,
		&proposal.Scope.EntityType,
		&proposal.Scope.EntityID,
		&scopeTenantID,
		&proposal.SubmittedBy.UserID,
		&proposal.SubmittedBy.Role,
		&proposal.Status,
		&proposal.Reason,
		&evidenceRefs,
		&proposal.ChangesHash,
		&proposal.IdempotencyKey,
		&buildPhaseOnly,
		&createdAt,
		&proposal.AuditID,
	)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("multisig proposal", proposalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get multisig proposal: %w", err)
	}

	proposal.Scope.TenantID = scopeTenantID.String
	proposal.Metadata.BuildPhaseOnly = buildPhaseOnly == 1

	if evidenceRefs.Valid {
		if err := json.Unmarshal([]byte(evidenceRefs.String), &proposal.EvidenceRefs); err != nil {
			return nil, fmt.Errorf("failed to decode evidence refs: %w", err)
		}
	}
	if proposal.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &proposal, nil
}

type approvalRepository struct {
	db *sql.DB
}

// NewApprovalRepository creates a new approval entry repository
func NewApprovalRepository(db *sql.DB) ApprovalRepository {
	return &approvalRepository{db: db}
}

func (r *approvalRepository) Create(ctx context.Context, entry *models.ApprovalEntry) error {
	query := `
		INSERT INTO multisig_approvals (
			entry_id, proposal_id, approver_id, approver_role, decision,
			reason, signed_at, entry_hash, audit_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.EntryID,
		entry.ProposalID,
		entry.ApproverID,
		entry.ApproverRole,
		entry.Decision,
		entry.Reason,
		models.FormatTimestamp(entry.SignedAt),
		entry.EntryHash,
		entry.AuditID,
	)
	if err != nil {
		return fmt.Errorf("failed to create approval entry: %w", err)
	}

	return nil
}

func (r *approvalRepository) ListByProposal(ctx context.Context, proposalID string) ([]models.ApprovalEntry, error) {
	query := `
		SELECT entry_id, proposal_id, approver_id, approver_role, decision,
		       reason, signed_at, entry_hash, audit_id
		FROM multisig_approvals
		WHERE proposal_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query approval entries: %w", err)
	}
	defer rows.Close()

	var entries []models.ApprovalEntry
	for rows.Next() {
		var entry models.ApprovalEntry
		var signedAt string

		err := rows.Scan(
			&entry.EntryID,
			&entry.ProposalID,
			&entry.ApproverID,
			&entry.ApproverRole,
			&entry.Decision,
			&entry.Reason,
			&signedAt,
			&entry.EntryHash,
			&entry.AuditID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval entry: %w", err)
		}

		if entry.SignedAt, err = models.ParseTimestamp(signedAt); err != nil {
			return nil, fmt.Errorf("failed to parse signed_at: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating approval entries: %w", err)
	}

	return entries, nil
}

type quorumSnapshotRepository struct {
	db *sql.DB
}

// NewQuorumSnapshotRepository creates a new quorum snapshot repository
func NewQuorumSnapshotRepository(db *sql.DB) QuorumSnapshotRepository {
	return &quorumSnapshotRepository{db: db}
}

func (r *quorumSnapshotRepository) Create(ctx context.Context, snapshot *models.QuorumSnapshot) error {
	query := `
		INSERT INTO multisig_quorum_snapshots (
			snapshot_id, proposal_id, required_approvals, current_approvals,
			quorum_met, computed_at, snapshot_hash, audit_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	quorumMet := 0
	if snapshot.QuorumMet {
		quorumMet = 1
	}

	_, err := r.db.ExecContext(ctx, query,
		snapshot.SnapshotID,
		snapshot.ProposalID,
		snapshot.RequiredApprovals,
		snapshot.CurrentApprovals,
		quorumMet,
		models.FormatTimestamp(snapshot.ComputedAt),
		snapshot.SnapshotHash,
		snapshot.AuditID,
	)
	if err != nil {
		return fmt.Errorf("failed to create quorum snapshot: %w", err)
	}

	return nil
}

func (r *quorumSnapshotRepository) ListByProposal(ctx context.Context, proposalID string) ([]models.QuorumSnapshot, error) {
	query := `
		SELECT snapshot_id, proposal_id, required_approvals,
		       current_approvals, quorum_met, computed_at, snapshot_hash,
		       audit_id
		FROM multisig_quorum_snapshots
		WHERE proposal_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quorum snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []models.QuorumSnapshot
	for rows.Next() {
		var snapshot models.QuorumSnapshot
		var quorumMet int
		var computedAt string

		err := rows.Scan(
			&snapshot.SnapshotID,
			&snapshot.ProposalID,
			&snapshot.RequiredApprovals,
			&snapshot.CurrentApprovals,
			&quorumMet,
			&computedAt,
			&snapshot.SnapshotHash,
			&snapshot.AuditID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quorum snapshot: %w", err)
		}

		snapshot.QuorumMet = quorumMet == 1
		if snapshot.ComputedAt, err = models.ParseTimestamp(computedAt); err != nil {
			return nil, fmt.Errorf("failed to parse computed_at: %w", err)
		}

		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quorum snapshots: %w", err)
	}

	return snapshots, nil
}
