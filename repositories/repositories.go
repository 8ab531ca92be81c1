package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Ledger          LedgerRepository
	ConfigVersions  ConfigVersionRepository
	Holds           HoldRepository
	ChangeControl   ChangeControlRepository
	Proposals       ProposalRepository
	Approvals       ApprovalRepository
	QuorumSnapshots QuorumSnapshotRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Ledger:          NewLedgerRepository(db),
		ConfigVersions:  NewConfigVersionRepository(db),
		Holds:           NewHoldRepository(db),
		ChangeControl:   NewChangeControlRepository(db),
		Proposals:       NewProposalRepository(db),
		Approvals:       NewApprovalRepository(db),
		QuorumSnapshots: NewQuorumSnapshotRepository(db),
	}
}
