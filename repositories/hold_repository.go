package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tradeverity/governance-core/models"
)

// HoldRepository persists settlement holds. Override is the only mutation
// and is guarded on the current status so concurrent overrides serialize.
type HoldRepository interface {
	Create(ctx context.Context, hold *models.SettlementHold) error
	GetByID(ctx context.Context, holdID string) (*models.SettlementHold, error)
	Override(ctx context.Context, holdID string, override *models.HoldOverride) (bool, error)
	List(ctx context.Context, filters models.HoldFilters) ([]models.SettlementHold, error)
}

// holdRepository implements HoldRepository on sqlite
type holdRepository struct {
	db *sql.DB
}

// NewHoldRepository creates a new settlement hold repository
func NewHoldRepository(db *sql.DB) HoldRepository {
	return &holdRepository{db: db}
}

// Create inserts a new hold in ACTIVE status
func (r *holdRepository) Create(ctx context.Context, hold *models.SettlementHold) error {
	query := `
		INSERT INTO settlement_holds (
			hold_id, tenant_id, order_id, payment_id, payout_id, supplier_id,
			subsystem, reason, reason_code, status, created_at,
			created_by_user_id, created_by_role, updated_at, audit_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		hold.HoldID,
		hold.TenantID,
		nullableString(hold.Scope.OrderID),
		nullableString(hold.Scope.PaymentID),
		nullableString(hold.Scope.PayoutID),
		nullableString(hold.Scope.SupplierID),
		string(hold.Subsystem),
		hold.Reason,
		nullableString(hold.ReasonCode),
		string(hold.Status),
		models.FormatTimestamp(hold.CreatedAt),
		hold.CreatedBy.UserID,
		hold.CreatedBy.Role,
		models.FormatTimestamp(hold.UpdatedAt),
		hold.AuditID,
	)
	if err != nil {
		return fmt.Errorf("failed to create settlement hold: %w", err)
	}

	return nil
}

// GetByID retrieves a hold by its id
func (r *holdRepository) GetByID(ctx context.Context, holdID string) (*models.SettlementHold, error) {
	query := selectHoldColumns + ` WHERE hold_id = ?`

	hold, err := scanHold(r.db.QueryRowContext(ctx, query, holdID))
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("settlement hold", holdID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement hold: %w", err)
	}

	return hold, nil
}

// Override transitions an ACTIVE hold to OVERRIDDEN and stamps the override
// block. The WHERE status = 'ACTIVE' guard makes the transition one-way: the
// second of two racing overrides matches zero rows and reports false.
func (r *holdRepository) Override(ctx context.Context, holdID string, override *models.HoldOverride) (bool, error) {
	query := `
		UPDATE settlement_holds
		SET status = ?, updated_at = ?,
		    overridden_by_user_id = ?, overridden_by_role = ?,
		    override_justification = ?, override_duration_hours = ?,
		    overridden_at = ?, override_audit_id = ?
		WHERE hold_id = ? AND status = ?
	`

	var duration interface{}
	if override.DurationHours != nil {
		duration = *override.DurationHours
	}

	result, err := r.db.ExecContext(ctx, query,
		string(models.HoldStatusOverridden),
		models.FormatTimestamp(override.OverriddenAt),
		override.OverriddenBy.UserID,
		override.OverriddenBy.Role,
		override.Justification,
		duration,
		models.FormatTimestamp(override.OverriddenAt),
		override.AuditID,
		holdID,
		string(models.HoldStatusActive),
	)
	if err != nil {
		return false, fmt.Errorf("failed to override settlement hold: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected == 1, nil
}

// List retrieves holds newest-first, filtered by tenant and status
func (r *holdRepository) List(ctx context.Context, filters models.HoldFilters) ([]models.SettlementHold, error) {
	query := selectHoldColumns
	var conditions []string
	var args []interface{}

	if filters.TenantID != "" {
		conditions = append(conditions, "tenant_id = ?")
		args = append(args, filters.TenantID)
	}
	if filters.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(filters.Status))
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}

	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, models.ClampLimit(filters.Limit, 50))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlement holds: %w", err)
	}
	defer rows.Close()

	var holds []models.SettlementHold
	for rows.Next() {
		hold, err := scanHold(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement hold: %w", err)
		}
		holds = append(holds, *hold)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settlement holds: %w", err)
	}

	return holds, nil
}

const selectHoldColumns = `
	SELECT hold_id, tenant_id, order_id, payment_id, payout_id, supplier_id,
	       subsystem, reason, reason_code, status, created_at,
	       created_by_user_id, created_by_role, updated_at,
	       overridden_by_user_id, overridden_by_role, override_justification,
	       override_duration_hours, overridden_at, override_audit_id, audit_id
	FROM settlement_holds`

func scanHold(row rowScanner) (*models.SettlementHold, error) {
	var hold models.SettlementHold
	var subsystem, status, createdAt, updatedAt string
	var orderID, paymentID, payoutID, supplierID, reasonCode sql.NullString
	var ovUserID, ovRole, ovJustification, ovAt, ovAuditID sql.NullString
	var ovDuration sql.NullInt64

	err := row.Scan(
		&hold.HoldID,
		&hold.TenantID,
		&orderID,
		&paymentID,
		&payoutID,
		&supplierID,
		&subsystem,
		&hold.Reason,
		&reasonCode,
		&status,
		&createdAt,
		&hold.CreatedBy.UserID,
		&hold.CreatedBy.Role,
		&updatedAt,
		&ovUserID,
		&ovRole,
		&ovJustification,
		&ovDuration,
		&ovAt,
		&ovAuditID,
		&hold.AuditID,
	)
	if err != nil {
		return nil, err
	}

	hold.Scope = models.HoldScope{
		OrderID:    orderID.String,
		PaymentID:  paymentID.String,
		PayoutID:   payoutID.String,
		SupplierID: supplierID.String,
	}
	hold.Subsystem = models.HoldSubsystem(subsystem)
	hold.ReasonCode = reasonCode.String
	hold.Status = models.HoldStatus(status)

	if hold.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if hold.UpdatedAt, err = models.ParseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	if ovUserID.Valid {
		override := &models.HoldOverride{
			OverriddenBy: models.Creator{
				UserID: ovUserID.String,
				Role:   ovRole.String,
			},
			Justification: ovJustification.String,
			AuditID:       ovAuditID.String,
		}
		if ovDuration.Valid {
			duration := int(ovDuration.Int64)
			override.DurationHours = &duration
		}
		if ovAt.Valid {
			if override.OverriddenAt, err = models.ParseTimestamp(ovAt.String); err != nil {
				return nil, fmt.Errorf("failed to parse overridden_at: %w", err)
			}
		}
		hold.Override = override
	}

	return &hold, nil
}
