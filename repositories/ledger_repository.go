package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tradeverity/governance-core/models"
)

// LedgerRepository persists audit records. The interface deliberately has no
// update or delete method; the audit_ledger table additionally rejects both
// with triggers, so append-only-ness does not depend on caller discipline.
type LedgerRepository interface {
	Append(ctx context.Context, record *models.AuditRecord) error
	GetByID(ctx context.Context, auditID string) (*models.AuditRecord, error)
	ListOldestFirst(ctx context.Context, limit int) ([]models.AuditRecord, error)
	Count(ctx context.Context) (int, error)
}

// ledgerRepository implements LedgerRepository on sqlite
type ledgerRepository struct {
	db *sql.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *sql.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// Append inserts a new audit record. There is no corresponding update path.
func (r *ledgerRepository) Append(ctx context.Context, record *models.AuditRecord) error {
	query := `
		INSERT INTO audit_ledger (
			audit_id, ts, actor_user_id, actor_role, actor_email, actor_ip,
			actor_user_agent, action, entity_type, entity_id, reason,
			before_hash, after_hash, evidence, correlation_id, tenant_id,
			integrity_hash, before_state, after_state
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	evidence, err := encodeStringList(record.Evidence)
	if err != nil {
		return fmt.Errorf("failed to encode evidence list: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		record.AuditID,
		models.FormatTimestamp(record.TS),
		record.Actor.UserID,
		record.Actor.Role,
		nullableString(record.Actor.Email),
		nullableString(record.Actor.IP),
		nullableString(record.Actor.UserAgent),
		record.Action,
		record.Entity.Type,
		record.Entity.ID,
		record.Reason,
		record.BeforeHash,
		record.AfterHash,
		evidence,
		nullableString(record.CorrelationID),
		nullableString(record.TenantID),
		record.IntegrityHash,
		nullableString(string(record.BeforeState)),
		nullableString(string(record.AfterState)),
	)
	if err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}

	return nil
}

// GetByID retrieves a single audit record by its id
func (r *ledgerRepository) GetByID(ctx context.Context, auditID string) (*models.AuditRecord, error) {
	query := selectAuditColumns + ` WHERE audit_id = ?`

	record, err := scanAuditRecord(r.db.QueryRowContext(ctx, query, auditID))
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("audit record", auditID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit record: %w", err)
	}

	return record, nil
}

// ListOldestFirst retrieves up to limit records in insertion order
func (r *ledgerRepository) ListOldestFirst(ctx context.Context, limit int) ([]models.AuditRecord, error) {
	query := selectAuditColumns + ` ORDER BY id ASC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer rows.Close()

	var records []models.AuditRecord
	for rows.Next() {
		record, err := scanAuditRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit records: %w", err)
	}

	return records, nil
}

// Count returns the total number of ledger records
func (r *ledgerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_ledger`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit records: %w", err)
	}

	return count, nil
}

const selectAuditColumns = `
	SELECT audit_id, ts, actor_user_id, actor_role, actor_email, actor_ip,
	       actor_user_agent, action, entity_type, entity_id, reason,
	       before_hash, after_hash, evidence, correlation_id, tenant_id,
	       integrity_hash, before_state, after_state
	FROM audit_ledger`

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAuditRecord(row rowScanner) (*models.AuditRecord, error) {
	var record models.AuditRecord
	var ts string
	var email, ip, userAgent, evidence, correlationID, tenantID sql.NullString
	var beforeState, afterState sql.NullString

	err := row.Scan(
		&record.AuditID,
		&ts,
		&record.Actor.UserID,
		&record.Actor.Role,
		&email,
		&ip,
		&userAgent,
		&record.Action,
		&record.Entity.Type,
		&record.Entity.ID,
		&record.Reason,
		&record.BeforeHash,
		&record.AfterHash,
		&evidence,
		&correlationID,
		&tenantID,
		&record.IntegrityHash,
		&beforeState,
		&afterState,
	)
	if err != nil {
		return nil, err
	}

	record.TS, err = models.ParseTimestamp(ts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse audit timestamp: %w", err)
	}

	record.Actor.Email = email.String
	record.Actor.IP = ip.String
	record.Actor.UserAgent = userAgent.String
	record.CorrelationID = correlationID.String
	record.TenantID = tenantID.String

	if evidence.Valid {
		if err := json.Unmarshal([]byte(evidence.String), &record.Evidence); err != nil {
			return nil, fmt.Errorf("failed to decode evidence list: %w", err)
		}
	}
	if beforeState.Valid {
		record.BeforeState = json.RawMessage(beforeState.String)
	}
	if afterState.Valid {
		record.AfterState = json.RawMessage(afterState.String)
	}

	return &record, nil
}

// encodeStringList serializes a string slice as JSON, mapping empty to NULL
func encodeStringList(list []string) (interface{}, error) {
	if len(list) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

// nullableString converts an empty string to NULL
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
