package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tradeverity/governance-core/database"
	"github.com/tradeverity/governance-core/models"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := fmt.Sprintf("test_%s_%d.db", t.Name(), time.Now().UnixNano())

	// Clean up function
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func sampleAuditRecord(suffix string) *models.AuditRecord {
	return &models.AuditRecord{
		AuditID:       "aud-" + suffix,
		TS:            time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Actor:         models.Actor{UserID: "u-1", Role: "platform-admin", Email: "admin@example.com"},
		Action:        "config.fee.create_version",
		Entity:        models.EntityRef{Type: "FEE_CONFIG", ID: "tenant-1"},
		Reason:        "test write " + suffix,
		BeforeHash:    strings.Repeat("a", 64),
		AfterHash:     strings.Repeat("b", 64),
		Evidence:      []string{"https://evidence.example.com/" + suffix},
		TenantID:      "tenant-1",
		IntegrityHash: strings.Repeat("c", 64),
	}
}

func TestLedgerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	// Test Append
	first := sampleAuditRecord("001")
	if err := repo.Append(ctx, first); err != nil {
		t.Fatalf("Failed to append audit record: %v", err)
	}

	second := sampleAuditRecord("002")
	second.Evidence = nil
	if err := repo.Append(ctx, second); err != nil {
		t.Fatalf("Failed to append second audit record: %v", err)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, first.AuditID)
	if err != nil {
		t.Fatalf("Failed to get audit record by ID: %v", err)
	}
	if retrieved.Action != first.Action {
		t.Errorf("Expected action %s, got %s", first.Action, retrieved.Action)
	}
	if !retrieved.TS.Equal(first.TS) {
		t.Errorf("Expected timestamp %v, got %v", first.TS, retrieved.TS)
	}
	if len(retrieved.Evidence) != 1 || retrieved.Evidence[0] != first.Evidence[0] {
		t.Errorf("Expected evidence %v, got %v", first.Evidence, retrieved.Evidence)
	}

	// Absent evidence comes back nil, not empty
	retrieved2, err := repo.GetByID(ctx, second.AuditID)
	if err != nil {
		t.Fatalf("Failed to get second audit record: %v", err)
	}
	if retrieved2.Evidence != nil {
		t.Errorf("Expected nil evidence, got %v", retrieved2.Evidence)
	}

	// Test GetByID for missing record
	_, err = repo.GetByID(ctx, "aud-missing")
	if !models.IsCode(err, models.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND for missing record, got: %v", err)
	}

	// Test ListOldestFirst preserves insertion order
	records, err := repo.ListOldestFirst(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to list audit records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].AuditID != first.AuditID || records[1].AuditID != second.AuditID {
		t.Errorf("Expected insertion order, got %s then %s", records[0].AuditID, records[1].AuditID)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count audit records: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}

// The ledger table itself must reject mutation, independent of the
// repository having no update method
func TestLedgerTableIsAppendOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	record := sampleAuditRecord("locked")
	if err := repo.Append(ctx, record); err != nil {
		t.Fatalf("Failed to append audit record: %v", err)
	}

	_, err := db.Exec("UPDATE audit_ledger SET reason = 'tampered' WHERE audit_id = ?", record.AuditID)
	if err == nil {
		t.Error("Expected UPDATE on audit_ledger to be rejected")
	}

	_, err = db.Exec("DELETE FROM audit_ledger WHERE audit_id = ?", record.AuditID)
	if err == nil {
		t.Error("Expected DELETE on audit_ledger to be rejected")
	}

	// The record is still intact
	retrieved, err := repo.GetByID(ctx, record.AuditID)
	if err != nil {
		t.Fatalf("Failed to get audit record after rejected mutations: %v", err)
	}
	if retrieved.Reason != record.Reason {
		t.Errorf("Expected reason %q, got %q", record.Reason, retrieved.Reason)
	}
}

func TestConfigVersionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConfigVersionRepository(db)
	ctx := context.Background()

	// No active version yet
	active, err := repo.GetActive(ctx, models.ConfigTypeFee, "tenant-1")
	if err != nil {
		t.Fatalf("Failed to get active version: %v", err)
	}
	if active != nil {
		t.Errorf("Expected no active version, got %+v", active)
	}

	maxVersion, err := repo.MaxVersion(ctx, models.ConfigTypeFee, "tenant-1")
	if err != nil {
		t.Fatalf("Failed to get max version: %v", err)
	}
	if maxVersion != 0 {
		t.Errorf("Expected max version 0 for empty store, got %d", maxVersion)
	}

	// Insert versions 1 through 3
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for v := 1; v <= 3; v++ {
		version := &models.ConfigVersion{
			ConfigID:      models.ConfigID(models.ConfigTypeFee, "tenant-1", v),
			TenantID:      "tenant-1",
			ConfigType:    models.ConfigTypeFee,
			Version:       v,
			Status:        models.ConfigStatusActive,
			EffectiveFrom: now,
			CreatedAt:     now.Add(time.Duration(v) * time.Minute),
			CreatedBy:     models.Creator{UserID: "u-1", Role: "platform-admin"},
			Reason:        fmt.Sprintf("revision %d", v),
			Rules:         json.RawMessage(fmt.Sprintf(`{"platformFeePercent": %d}`, v)),
			CanonicalHash: strings.Repeat("d", 64),
			AuditID:       fmt.Sprintf("aud-%d", v),
		}
		if err := repo.CreateVersion(ctx, version, version.CreatedAt); err != nil {
			t.Fatalf("Failed to create version %d: %v", v, err)
		}
	}

	// Exactly one ACTIVE version remains
	active, err = repo.GetActive(ctx, models.ConfigTypeFee, "tenant-1")
	if err != nil {
		t.Fatalf("Failed to get active version: %v", err)
	}
	if active == nil || active.Version != 3 {
		t.Fatalf("Expected version 3 active, got %+v", active)
	}

	versions, err := repo.ListVersions(ctx, models.ConfigTypeFee, "tenant-1")
	if err != nil {
		t.Fatalf("Failed to list versions: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("Expected 3 versions, got %d", len(versions))
	}
	if versions[0].Version != 3 {
		t.Errorf("Expected newest version first, got version %d", versions[0].Version)
	}
	retiredCount := 0
	for _, v := range versions {
		if v.Status == models.ConfigStatusRetired {
			retiredCount++
			if v.RetiredAt == nil {
				t.Errorf("Expected retiredAt on retired version %d", v.Version)
			}
		}
	}
	if retiredCount != 2 {
		t.Errorf("Expected 2 retired versions, got %d", retiredCount)
	}

	maxVersion, err = repo.MaxVersion(ctx, models.ConfigTypeFee, "tenant-1")
	if err != nil {
		t.Fatalf("Failed to get max version: %v", err)
	}
	if maxVersion != 3 {
		t.Errorf("Expected max version 3, got %d", maxVersion)
	}

	// Config types are isolated from one another
	active, err = repo.GetActive(ctx, models.ConfigTypeFX, "tenant-1")
	if err != nil {
		t.Fatalf("Failed to get active FX version: %v", err)
	}
	if active != nil {
		t.Errorf("Expected no active FX version, got %+v", active)
	}

	// A duplicate version number is a version conflict
	duplicate := &models.ConfigVersion{
		ConfigID:      models.ConfigID(models.ConfigTypeFee, "tenant-1", 3),
		TenantID:      "tenant-1",
		ConfigType:    models.ConfigTypeFee,
		Version:       3,
		Status:        models.ConfigStatusActive,
		EffectiveFrom: now,
		CreatedAt:     now,
		CreatedBy:     models.Creator{UserID: "u-1", Role: "platform-admin"},
		Reason:        "duplicate",
		Rules:         json.RawMessage(`{}`),
		CanonicalHash: strings.Repeat("e", 64),
		AuditID:       "aud-dup",
	}
	err = repo.CreateVersion(ctx, duplicate, now)
	if !models.IsCode(err, models.CodeVersionConflict) {
		t.Errorf("Expected VERSION_CONFLICT for duplicate version, got: %v", err)
	}
}

func TestHoldRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHoldRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	hold := &models.SettlementHold{
		HoldID:     "hold-001",
		TenantID:   "tenant-1",
		Scope:      models.HoldScope{OrderID: "ord-1", SupplierID: "sup-9"},
		Subsystem:  models.SubsystemPayments,
		Reason:     "chargeback under investigation",
		ReasonCode: "CHARGEBACK",
		Status:     models.HoldStatusActive,
		CreatedAt:  now,
		CreatedBy:  models.Creator{UserID: "u-1", Role: "risk-officer"},
		UpdatedAt:  now,
		AuditID:    "aud-h1",
	}

	// Test Create
	if err := repo.Create(ctx, hold); err != nil {
		t.Fatalf("Failed to create hold: %v", err)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, hold.HoldID)
	if err != nil {
		t.Fatalf("Failed to get hold: %v", err)
	}
	if retrieved.Scope.OrderID != "ord-1" || retrieved.Scope.SupplierID != "sup-9" {
		t.Errorf("Expected scope to round-trip, got %+v", retrieved.Scope)
	}
	if retrieved.Status != models.HoldStatusActive {
		t.Errorf("Expected ACTIVE status, got %s", retrieved.Status)
	}
	if retrieved.Override != nil {
		t.Errorf("Expected no override block, got %+v", retrieved.Override)
	}

	// Test Override
	hours := 48
	override := &models.HoldOverride{
		OverriddenBy:  models.Creator{UserID: "u-2", Role: "platform-admin"},
		Justification: "chargeback resolved in supplier's favor",
		DurationHours: &hours,
		OverriddenAt:  now.Add(time.Hour),
		AuditID:       "aud-h2",
	}
	overridden, err := repo.Override(ctx, hold.HoldID, override)
	if err != nil {
		t.Fatalf("Failed to override hold: %v", err)
	}
	if !overridden {
		t.Fatal("Expected override to affect the hold")
	}

	retrieved, err = repo.GetByID(ctx, hold.HoldID)
	if err != nil {
		t.Fatalf("Failed to get hold after override: %v", err)
	}
	if retrieved.Status != models.HoldStatusOverridden {
		t.Errorf("Expected OVERRIDDEN status, got %s", retrieved.Status)
	}
	if retrieved.Reason != hold.Reason {
		t.Errorf("Expected original reason intact, got %q", retrieved.Reason)
	}
	if retrieved.Override == nil {
		t.Fatal("Expected override block after override")
	}
	if retrieved.Override.Justification != override.Justification {
		t.Errorf("Expected justification %q, got %q", override.Justification, retrieved.Override.Justification)
	}
	if retrieved.Override.DurationHours == nil || *retrieved.Override.DurationHours != 48 {
		t.Errorf("Expected duration 48, got %v", retrieved.Override.DurationHours)
	}

	// A second override matches zero rows
	overridden, err = repo.Override(ctx, hold.HoldID, override)
	if err != nil {
		t.Fatalf("Unexpected error on second override: %v", err)
	}
	if overridden {
		t.Error("Expected second override to affect nothing")
	}

	// Test List with filters
	second := *hold
	second.HoldID = "hold-002"
	second.CreatedAt = now.Add(2 * time.Hour)
	second.UpdatedAt = second.CreatedAt
	if err := repo.Create(ctx, &second); err != nil {
		t.Fatalf("Failed to create second hold: %v", err)
	}

	holds, err := repo.List(ctx, models.HoldFilters{TenantID: "tenant-1"})
	if err != nil {
		t.Fatalf("Failed to list holds: %v", err)
	}
	if len(holds) != 2 {
		t.Fatalf("Expected 2 holds, got %d", len(holds))
	}
	if holds[0].HoldID != "hold-002" {
		t.Errorf("Expected newest hold first, got %s", holds[0].HoldID)
	}

	activeOnly, err := repo.List(ctx, models.HoldFilters{Status: models.HoldStatusActive})
	if err != nil {
		t.Fatalf("Failed to list active holds: %v", err)
	}
	if len(activeOnly) != 1 || activeOnly[0].HoldID != "hold-002" {
		t.Errorf("Expected only hold-002 active, got %+v", activeOnly)
	}

	otherTenant, err := repo.List(ctx, models.HoldFilters{TenantID: "tenant-2"})
	if err != nil {
		t.Fatalf("Failed to list holds for other tenant: %v", err)
	}
	if len(otherTenant) != 0 {
		t.Errorf("Expected no holds for tenant-2, got %d", len(otherTenant))
	}
}

func TestChangeControlRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChangeControlRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 8, 3, 14, 0, 0, 0, time.UTC)
	event := &models.ChangeControlEvent{
		ChangeControlID: "ccr-001",
		Type:            "POLICY_CHANGE",
		Scope:           &models.EntityRef{Type: "FEE_CONFIG", ID: "tenant-1"},
		Rationale:       "align fee schedule with new contract",
		Reason:          "contract renewal",
		Status:          models.ChangeControlStatusSubmitted,
		CreatedAt:       now,
		CreatedBy:       models.Creator{UserID: "u-1", Role: "platform-admin"},
		Impact: models.ImpactAssessment{
			RiskLevel:       models.RiskLevelHigh,
			RollbackPlan:    "revert to previous version",
			AffectedParties: []string{"suppliers", "buyers"},
		},
		TenantID: "tenant-1",
		AuditID:  "aud-cc1",
	}

	if err := repo.Create(ctx, event); err != nil {
		t.Fatalf("Failed to create change control event: %v", err)
	}

	events, err := repo.List(ctx, models.ChangeControlFilters{TenantID: "tenant-1"})
	if err != nil {
		t.Fatalf("Failed to list change control events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}

	got := events[0]
	if got.Status != models.ChangeControlStatusSubmitted {
		t.Errorf("Expected SUBMITTED status, got %s", got.Status)
	}
	if got.Impact.RiskLevel != models.RiskLevelHigh {
		t.Errorf("Expected HIGH risk level, got %s", got.Impact.RiskLevel)
	}
	if len(got.Impact.AffectedParties) != 2 {
		t.Errorf("Expected 2 affected parties, got %v", got.Impact.AffectedParties)
	}
	if got.Scope == nil || got.Scope.ID != "tenant-1" {
		t.Errorf("Expected scope to round-trip, got %+v", got.Scope)
	}

	empty, err := repo.List(ctx, models.ChangeControlFilters{TenantID: "tenant-2"})
	if err != nil {
		t.Fatalf("Failed to list for other tenant: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no events for tenant-2, got %d", len(empty))
	}
}

func TestMultisigRepositories(t *testing.T) {
	db := setupTestDB(t)
	proposals := NewProposalRepository(db)
	approvals := NewApprovalRepository(db)
	snapshots := NewQuorumSnapshotRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 8, 4, 16, 0, 0, 0, time.UTC)
	proposal := &models.MultisigProposal{
		ProposalID:     "msp-" + strings.Repeat("1", 32),
		Type:           "AUTHORITY_TRANSFER",
		Scope:          models.ProposalScope{EntityType: "TENANT", EntityID: "tenant-1", TenantID: "tenant-1"},
		SubmittedBy:    models.Creator{UserID: "u-1", Role: "platform-admin"},
		Status:         models.ProposalStatusDraft,
		Reason:         "rotate signing authority",
		EvidenceRefs:   []string{"https://evidence.example.com/1"},
		ChangesHash:    strings.Repeat("f", 64),
		IdempotencyKey: strings.Repeat("0", 64),
		Metadata:       models.ProposalMetadata{BuildPhaseOnly: true},
		CreatedAt:      now,
		AuditID:        "aud-ms1",
	}

	if err := proposals.Create(ctx, proposal); err != nil {
		t.Fatalf("Failed to create proposal: %v", err)
	}

	retrieved, err := proposals.GetByID(ctx, proposal.ProposalID)
	if err != nil {
		t.Fatalf("Failed to get proposal: %v", err)
	}
	if retrieved.Status != models.ProposalStatusDraft {
		t.Errorf("Expected DRAFT status, got %s", retrieved.Status)
	}
	if !retrieved.Metadata.BuildPhaseOnly {
		t.Error("Expected buildPhaseOnly metadata to round-trip")
	}
	if len(retrieved.EvidenceRefs) != 1 {
		t.Errorf("Expected 1 evidence ref, got %v", retrieved.EvidenceRefs)
	}

	_, err = proposals.GetByID(ctx, "msp-missing")
	if !models.IsCode(err, models.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND for missing proposal, got: %v", err)
	}

	// Approval entries list in recorded order
	for i, decision := range []string{models.DecisionApprove, models.DecisionReject, models.DecisionApprove} {
		entry := &models.ApprovalEntry{
			EntryID:      fmt.Sprintf("msa-%03d", i),
			ProposalID:   proposal.ProposalID,
			ApproverID:   fmt.Sprintf("u-%d", i+10),
			ApproverRole: "cfo",
			Decision:     decision,
			Reason:       "reviewed",
			SignedAt:     now.Add(time.Duration(i) * time.Minute),
			EntryHash:    strings.Repeat("a", 64),
			AuditID:      fmt.Sprintf("aud-msa-%d", i),
		}
		if err := approvals.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create approval entry %d: %v", i, err)
		}
	}

	entries, err := approvals.ListByProposal(ctx, proposal.ProposalID)
	if err != nil {
		t.Fatalf("Failed to list approval entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].EntryID != "msa-000" || entries[2].EntryID != "msa-002" {
		t.Errorf("Expected recorded order, got %s then %s", entries[0].EntryID, entries[2].EntryID)
	}

	// Quorum snapshots accumulate, never replace
	for i := 0; i < 2; i++ {
		snapshot := &models.QuorumSnapshot{
			SnapshotID:        fmt.Sprintf("msq-%03d", i),
			ProposalID:        proposal.ProposalID,
			RequiredApprovals: 2,
			CurrentApprovals:  i + 1,
			QuorumMet:         i+1 >= 2,
			ComputedAt:        now.Add(time.Duration(i) * time.Hour),
			SnapshotHash:      strings.Repeat("b", 64),
			AuditID:           fmt.Sprintf("aud-msq-%d", i),
		}
		if err := snapshots.Create(ctx, snapshot); err != nil {
			t.Fatalf("Failed to create snapshot %d: %v", i, err)
		}
	}

	snaps, err := snapshots.ListByProposal(ctx, proposal.ProposalID)
	if err != nil {
		t.Fatalf("Failed to list snapshots: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(snaps))
	}
	if !snaps[1].QuorumMet || snaps[0].QuorumMet {
		t.Errorf("Expected quorum met only on the second snapshot, got %+v", snaps)
	}
}
