package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tradeverity/governance-core/canonical"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/repositories"
)

// LedgerService interface defines the audit ledger operations
type LedgerService interface {
	Write(ctx context.Context, input *models.AuditWriteInput) (*models.AuditRecord, error)
	Verify(ctx context.Context, limit int) (*models.LedgerVerification, error)
	GetRecord(ctx context.Context, auditID string) (*models.AuditRecord, error)
}

// ledgerService implements LedgerService interface
type ledgerService struct {
	ledgerRepo repositories.LedgerRepository
	clock      Clock
	ids        IDGenerator
}

// NewLedgerService creates a new audit ledger service
func NewLedgerService(ledgerRepo repositories.LedgerRepository, clock Clock, ids IDGenerator) LedgerService {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		clock:      clock,
		ids:        ids,
	}
}

var hexHashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Write validates the input, fingerprints the before/after payloads and
// appends an audit record. The record's integrity hash covers every
// normalized field so later tampering is detectable.
func (s *ledgerService) Write(ctx context.Context, input *models.AuditWriteInput) (*models.AuditRecord, error) {
	if errors := input.Validate(); len(errors) > 0 {
		return nil, models.NewValidationError("invalid audit input: %s", strings.Join(errors, ", "))
	}

	beforeHash, err := canonical.Hash(input.Before)
	if err != nil {
		return nil, fmt.Errorf("failed to hash before payload: %w", err)
	}
	afterHash, err := canonical.Hash(input.After)
	if err != nil {
		return nil, fmt.Errorf("failed to hash after payload: %w", err)
	}

	record := &models.AuditRecord{
		AuditID: "aud-" + s.ids.NewID(),
		TS:      s.clock.Now(),
		Actor: models.Actor{
			UserID:    strings.TrimSpace(input.Actor.UserID),
			Role:      strings.TrimSpace(input.Actor.Role),
			Email:     strings.TrimSpace(input.Actor.Email),
			IP:        strings.TrimSpace(input.Actor.IP),
			UserAgent: strings.TrimSpace(input.Actor.UserAgent),
		},
		Action: strings.TrimSpace(input.Action),
		Entity: models.EntityRef{
			Type: strings.TrimSpace(input.Entity.Type),
			ID:   strings.TrimSpace(input.Entity.ID),
		},
		Reason:        strings.TrimSpace(input.Reason),
		BeforeHash:    beforeHash,
		AfterHash:     afterHash,
		CorrelationID: strings.TrimSpace(input.CorrelationID),
		TenantID:      strings.TrimSpace(input.TenantID),
	}

	// Empty evidence stays nil so the integrity payload hashes identically
	// after a storage round trip
	if len(input.Evidence) > 0 {
		record.Evidence = input.Evidence
	}

	if input.Before != nil {
		if record.BeforeState, err = json.Marshal(input.Before); err != nil {
			return nil, fmt.Errorf("failed to encode before payload: %w", err)
		}
	}
	if input.After != nil {
		if record.AfterState, err = json.Marshal(input.After); err != nil {
			return nil, fmt.Errorf("failed to encode after payload: %w", err)
		}
	}

	record.IntegrityHash, err = canonical.Hash(record.IntegrityPayload())
	if err != nil {
		return nil, fmt.Errorf("failed to compute integrity hash: %w", err)
	}

	if err := s.ledgerRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to write audit record: %w", err)
	}

	return record, nil
}

// Verify sweeps up to limit records oldest-first, re-deriving each record's
// integrity hash from the stored fields. Findings are returned as data, not
// errors; severity grading belongs to the caller.
func (s *ledgerService) Verify(ctx context.Context, limit int) (*models.LedgerVerification, error) {
	if limit <= 0 {
		return nil, models.NewValidationError("verification limit must be positive, got %d", limit)
	}

	records, err := s.ledgerRepo.ListOldestFirst(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger for verification: %w", err)
	}

	result := &models.LedgerVerification{
		Status:       models.VerificationPass,
		TotalRecords: len(records),
		Notes:        []string{},
	}

	for i := range records {
		record := &records[i]
		valid := true

		if !hexHashPattern.MatchString(record.BeforeHash) || !hexHashPattern.MatchString(record.AfterHash) {
			result.Notes = append(result.Notes, "INVALID_HASH_SHAPE:"+record.AuditID)
			valid = false
		}

		expected, err := canonical.Hash(record.IntegrityPayload())
		if err != nil {
			return nil, fmt.Errorf("failed to recompute integrity hash for %s: %w", record.AuditID, err)
		}
		if expected != record.IntegrityHash {
			result.Notes = append(result.Notes, "INTEGRITY_HASH_MISMATCH:"+record.AuditID)
			valid = false
		}

		if !valid {
			result.InvalidRecords++
		}
	}

	if result.InvalidRecords > 0 {
		result.Status = models.VerificationFail
	}

	return result, nil
}

// GetRecord retrieves a single ledger record by id
func (s *ledgerService) GetRecord(ctx context.Context, auditID string) (*models.AuditRecord, error) {
	if models.IsBlank(auditID) {
		return nil, models.NewValidationError("auditId is required")
	}
	return s.ledgerRepo.GetByID(ctx, auditID)
}
