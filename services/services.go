package services

import (
	"github.com/tradeverity/governance-core/repositories"
)

// Services holds all service instances
type Services struct {
	Ledger        LedgerService
	FeePolicy     ConfigService
	FXPolicy      ConfigService
	EscrowPolicy  ConfigService
	Holds         HoldService
	ChangeControl ChangeControlService
	Multisig      MultisigService
}

// NewServices creates and initializes all service instances with the
// production clock and id generator.
func NewServices(repos *repositories.Repositories, activationBuildEnabled bool) *Services {
	return NewServicesWith(repos, activationBuildEnabled, SystemClock{}, UUIDGenerator{})
}

// NewServicesWith wires the services with injected leaves so tests control
// time and identifiers.
func NewServicesWith(repos *repositories.Repositories, activationBuildEnabled bool, clock Clock, ids IDGenerator) *Services {
	ledger := NewLedgerService(repos.Ledger, clock, ids)

	return &Services{
		Ledger:        ledger,
		FeePolicy:     NewFeePolicyService(repos.ConfigVersions, ledger, clock),
		FXPolicy:      NewFXPolicyService(repos.ConfigVersions, ledger, clock),
		EscrowPolicy:  NewEscrowPolicyService(repos.ConfigVersions, ledger, clock),
		Holds:         NewHoldService(repos.Holds, clock, ids),
		ChangeControl: NewChangeControlService(repos.ChangeControl, clock, ids),
		Multisig: NewMultisigService(
			activationBuildEnabled,
			repos.Proposals,
			repos.Approvals,
			repos.QuorumSnapshots,
			ledger,
			clock,
			ids,
		),
	}
}
