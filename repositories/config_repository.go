package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tradeverity/governance-core/models"
)

// ConfigVersionRepository persists versioned policy configuration. Rows are
// immutable except for the single ACTIVE -> RETIRED flip performed inside
// CreateVersion's transaction.
type ConfigVersionRepository interface {
	GetActive(ctx context.Context, configType models.ConfigType, tenantID string) (*models.ConfigVersion, error)
	MaxVersion(ctx context.Context, configType models.ConfigType, tenantID string) (int, error)
	CreateVersion(ctx context.Context, version *models.ConfigVersion, retiredAt time.Time) error
	ListVersions(ctx context.Context, configType models.ConfigType, tenantID string) ([]models.ConfigVersion, error)
}

// configVersionRepository implements ConfigVersionRepository on sqlite
type configVersionRepository struct {
	db *sql.DB
}

// NewConfigVersionRepository creates a new config version repository
func NewConfigVersionRepository(db *sql.DB) ConfigVersionRepository {
	return &configVersionRepository{db: db}
}

// GetActive retrieves the single ACTIVE version for (tenant, configType),
// or nil when the tenant has no configuration of that type yet
func (r *configVersionRepository) GetActive(ctx context.Context, configType models.ConfigType, tenantID string) (*models.ConfigVersion, error) {
	query := selectConfigColumns + ` WHERE tenant_id = ? AND config_type = ? AND status = ?`

	version, err := scanConfigVersion(r.db.QueryRowContext(ctx, query, tenantID, string(configType), models.ConfigStatusActive))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active config version: %w", err)
	}

	return version, nil
}

// MaxVersion returns the highest version number for (tenant, configType),
// zero when none exist
func (r *configVersionRepository) MaxVersion(ctx context.Context, configType models.ConfigType, tenantID string) (int, error) {
	query := `
		SELECT COALESCE(MAX(version), 0)
		FROM config_versions
		WHERE tenant_id = ? AND config_type = ?
	`

	var max int
	err := r.db.QueryRowContext(ctx, query, tenantID, string(configType)).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to read max config version: %w", err)
	}

	return max, nil
}

// CreateVersion retires the current ACTIVE version and inserts the new one
// in a single transaction. The UNIQUE (tenant, type, version) constraint and
// the partial unique index on ACTIVE make the loser of a concurrent race
// fail with a version conflict instead of committing a second ACTIVE row.
func (r *configVersionRepository) CreateVersion(ctx context.Context, version *models.ConfigVersion, retiredAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin config version transaction: %w", err)
	}
	defer tx.Rollback()

	retire := `
		UPDATE config_versions
		SET status = ?, retired_at = ?
		WHERE tenant_id = ? AND config_type = ? AND status = ?
	`
	if _, err := tx.ExecContext(ctx, retire,
		models.ConfigStatusRetired,
		models.FormatTimestamp(retiredAt),
		version.TenantID,
		string(version.ConfigType),
		models.ConfigStatusActive,
	); err != nil {
		return fmt.Errorf("failed to retire active config version: %w", err)
	}

	insert := `
		INSERT INTO config_versions (
			config_id, tenant_id, config_type, version, status, effective_from,
			created_at, created_by_user_id, created_by_role, reason, rules,
			canonical_hash, audit_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, insert,
		version.ConfigID,
		version.TenantID,
		string(version.ConfigType),
		version.Version,
		version.Status,
		models.FormatTimestamp(version.EffectiveFrom),
		models.FormatTimestamp(version.CreatedAt),
		version.CreatedBy.UserID,
		version.CreatedBy.Role,
		version.Reason,
		string(version.Rules),
		version.CanonicalHash,
		version.AuditID,
	); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.NewVersionConflictError(version.ConfigType, version.TenantID, version.Version)
		}
		return fmt.Errorf("failed to insert config version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit config version: %w", err)
	}

	return nil
}

// ListVersions retrieves the full version history, newest first
func (r *configVersionRepository) ListVersions(ctx context.Context, configType models.ConfigType, tenantID string) ([]models.ConfigVersion, error) {
	query := selectConfigColumns + ` WHERE tenant_id = ? AND config_type = ? ORDER BY version DESC`

	rows, err := r.db.QueryContext(ctx, query, tenantID, string(configType))
	if err != nil {
		return nil, fmt.Errorf("failed to query config versions: %w", err)
	}
	defer rows.Close()

	var versions []models.ConfigVersion
	for rows.Next() {
		version, err := scanConfigVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan config version: %w", err)
		}
		versions = append(versions, *version)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating config versions: %w", err)
	}

	return versions, nil
}

const selectConfigColumns = `
	SELECT config_id, tenant_id, config_type, version, status, effective_from,
	       created_at, created_by_user_id, created_by_role, reason, rules,
	       canonical_hash, audit_id, retired_at
	FROM config_versions`

func scanConfigVersion(row rowScanner) (*models.ConfigVersion, error) {
	var version models.ConfigVersion
	var configType, effectiveFrom, createdAt, rules string
	var retiredAt sql.NullString

	err := row.Scan(
		&version.ConfigID,
		&version.TenantID,
		&configType,
		&version.Version,
		&version.Status,
		&effectiveFrom,
		&createdAt,
		&version.CreatedBy.UserID,
		&version.CreatedBy.Role,
		&version.Reason,
		&rules,
		&version.CanonicalHash,
		&version.AuditID,
		&retiredAt,
	)
	if err != nil {
		return nil, err
	}

	version.ConfigType = models.ConfigType(configType)
	version.Rules = json.RawMessage(rules)

	if version.EffectiveFrom, err = models.ParseTimestamp(effectiveFrom); err != nil {
		return nil, fmt.Errorf("failed to parse effective_from: %w", err)
	}
	if version.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if retiredAt.Valid {
		t, err := models.ParseTimestamp(retiredAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse retired_at: %w", err)
		}
		version.RetiredAt = &t
	}

	return &version, nil
}
