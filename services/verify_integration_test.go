package services

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeverity/governance-core/database"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/repositories"
	_ "github.com/mattn/go-sqlite3"
)

// Write three records through the real stack, tamper with one row behind the
// repository's back, and check the sweep flags exactly that record.
func TestVerifyDetectsStorageTampering(t *testing.T) {
	dbPath := fmt.Sprintf("test_verify_%d.db", time.Now().UnixNano())
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	require.NoError(t, database.InitializeDatabase(dbPath))
	db := database.GetDB()

	repos := repositories.NewRepositories(db)
	srvs := NewServicesWith(repos, false, SystemClock{}, UUIDGenerator{})
	ctx := context.Background()

	var auditIDs []string
	for i := 0; i < 3; i++ {
		record, err := srvs.Ledger.Write(ctx, &models.AuditWriteInput{
			Actor:  models.Actor{UserID: "u-1", Role: "platform-admin"},
			Action: "settlement.hold.create",
			Entity: models.EntityRef{Type: "SETTLEMENT_HOLD", ID: fmt.Sprintf("ord-%d", i)},
			Reason: fmt.Sprintf("hold %d", i),
			After:  map[string]interface{}{"status": "ACTIVE", "index": i},
		})
		require.NoError(t, err)
		auditIDs = append(auditIDs, record.AuditID)
	}

	// A clean ledger verifies PASS
	result, err := srvs.Ledger.Verify(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPass, result.Status)
	assert.Equal(t, 3, result.TotalRecords)

	// The table's triggers block mutation through SQL
	_, err = db.Exec("UPDATE audit_ledger SET reason = 'tampered' WHERE audit_id = ?", auditIDs[1])
	require.Error(t, err)

	// Simulate tampering below the trigger layer (a rewritten database file)
	_, err = db.Exec("DROP TRIGGER audit_ledger_no_update")
	require.NoError(t, err)
	_, err = db.Exec("UPDATE audit_ledger SET reason = 'tampered' WHERE audit_id = ?", auditIDs[1])
	require.NoError(t, err)

	result, err = srvs.Ledger.Verify(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationFail, result.Status)
	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, 1, result.InvalidRecords)
	assert.Equal(t, []string{"INTEGRITY_HASH_MISMATCH:" + auditIDs[1]}, result.Notes)
}
