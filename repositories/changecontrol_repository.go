package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tradeverity/governance-core/models"
)

// ChangeControlRepository persists change-control events. Events are created
// once; there is no update path in this phase.
type ChangeControlRepository interface {
	Create(ctx context.Context, event *models.ChangeControlEvent) error
	List(ctx context.Context, filters models.ChangeControlFilters) ([]models.ChangeControlEvent, error)
}

// changeControlRepository implements ChangeControlRepository on sqlite
type changeControlRepository struct {
	db *sql.DB
}

// NewChangeControlRepository creates a new change control repository
func NewChangeControlRepository(db *sql.DB) ChangeControlRepository {
	return &changeControlRepository{db: db}
}

// Create inserts a new change-control event
func (r *changeControlRepository) Create(ctx context.Context, event *models.ChangeControlEvent) error {
	query := `
		INSERT INTO change_control_events (
			change_control_id, type, scope_entity_type, scope_entity_id,
			rationale, reason, status, created_at, created_by_user_id,
			created_by_role, risk_level, rollback_plan, affected_parties,
			tenant_id, audit_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var scopeType, scopeID interface{}
	if event.Scope != nil {
		scopeType = event.Scope.Type
		scopeID = event.Scope.ID
	}

	affectedParties, err := encodeStringList(event.Impact.AffectedParties)
	if err != nil {
		return fmt.Errorf("failed to encode affected parties: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		event.ChangeControlID,
		event.Type,
		scopeType,
		scopeID,
		event.Rationale,
		event.Reason,
		event.Status,
		models.FormatTimestamp(event.CreatedAt),
		event.CreatedBy.UserID,
		event.CreatedBy.Role,
		event.Impact.RiskLevel,
		nullableString(event.Impact.RollbackPlan),
		affectedParties,
		nullableString(event.TenantID),
		event.AuditID,
	)
	if err != nil {
		return fmt.Errorf("failed to create change control event: %w", err)
	}

	return nil
}

// List retrieves events newest-first, filtered by tenant
func (r *changeControlRepository) List(ctx context.Context, filters models.ChangeControlFilters) ([]models.ChangeControlEvent, error) {
	query := `
		SELECT change_control_id, type, scope_entity_type, scope_entity_id,
		       rationale, reason, status, created_at, created_by_user_id,
		       created_by_role, risk_level, rollback_plan, affected_parties,
		       tenant_id, audit_id
		FROM change_control_events
	`
	var args []interface{}

	if filters.TenantID != "" {
		query += " WHERE tenant_id = ?"
		args = append(args, filters.TenantID)
	}

	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, models.ClampLimit(filters.Limit, 50))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query change control events: %w", err)
	}
	defer rows.Close()

	var events []models.ChangeControlEvent
	for rows.Next() {
		var event models.ChangeControlEvent
		var createdAt string
		var scopeType, scopeID, rollbackPlan, affectedParties, tenantID sql.NullString

		err := rows.Scan(
			&event.ChangeControlID,
			&event.Type,
			&scopeType,
			&scopeID,
			&event.Rationale,
			&event.Reason,
			&event.Status,
			&createdAt,
			&event.CreatedBy.UserID,
			&event.CreatedBy.Role,
			&event.Impact.RiskLevel,
			&rollbackPlan,
			&affectedParties,
			&tenantID,
			&event.AuditID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change control event: %w", err)
		}

		if scopeType.Valid {
			event.Scope = &models.EntityRef{Type: scopeType.String, ID: scopeID.String}
		}
		event.Impact.RollbackPlan = rollbackPlan.String
		event.TenantID = tenantID.String

		if affectedParties.Valid {
			if err := json.Unmarshal([]byte(affectedParties.String), &event.Impact.AffectedParties); err != nil {
				return nil, fmt.Errorf("failed to decode affected parties: %w", err)
			}
		}
		if event.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating change control events: %w", err)
	}

	return events, nil
}
