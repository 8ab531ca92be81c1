package models

import (
	"errors"
	"fmt"
)

// Stable error codes returned by the governance core. Callers branch on the
// code, not on the message text.
const (
	CodeValidationFailed       = "VALIDATION_FAILED"
	CodeImmutableVersion       = "IMMUTABLE_VERSION"
	CodeCoreInvariantViolation = "CORE_INVARIANT_VIOLATION"
	CodeNotFound               = "NOT_FOUND"
	CodeInvalidSubsystem       = "INVALID_SUBSYSTEM"
	CodeHoldNotActive          = "HOLD_NOT_ACTIVE"
	CodeVersionConflict        = "VERSION_CONFLICT"
	CodeBuildDisabled          = "BUILD_DISABLED"
	CodeRuntimeExecution       = "RUNTIME_EXECUTION_NOT_AUTHORIZED"
)

// DomainError is a typed error with a stable code. All failures raised by the
// service layer are DomainErrors; storage failures are wrapped as-is.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches two DomainErrors by code so sentinel comparisons with errors.Is
// work regardless of message text.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return e.Code == de.Code
}

// NewValidationError reports a missing or blank required field. Client fault;
// no write has occurred.
func NewValidationError(format string, args ...interface{}) error {
	return &DomainError{Code: CodeValidationFailed, Message: fmt.Sprintf(format, args...)}
}

// NewImmutableVersionError reports an attempt to update a versioned config in
// place.
func NewImmutableVersionError(configType ConfigType) error {
	return &DomainError{
		Code:    CodeImmutableVersion,
		Message: fmt.Sprintf("%s config versions are immutable; create a new version instead", configType),
	}
}

// NewCoreInvariantViolation reports an attempt to disable a protected escrow
// release trigger.
func NewCoreInvariantViolation(trigger string) error {
	return &DomainError{
		Code:    CodeCoreInvariantViolation,
		Message: fmt.Sprintf("escrow release trigger %s may not be disabled", trigger),
	}
}

// NewNotFoundError reports a reference to an entity that does not exist.
func NewNotFoundError(entityType, id string) error {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", entityType, id)}
}

// NewInvalidSubsystemError reports a hold subsystem outside the enumerated set.
func NewInvalidSubsystemError(subsystem string) error {
	return &DomainError{
		Code:    CodeInvalidSubsystem,
		Message: fmt.Sprintf("unknown settlement subsystem %q", subsystem),
	}
}

// NewHoldNotActiveError reports an override attempt against a hold that has
// already left the ACTIVE state.
func NewHoldNotActiveError(holdID string, status HoldStatus) error {
	return &DomainError{
		Code:    CodeHoldNotActive,
		Message: fmt.Sprintf("hold %s is %s and cannot be overridden", holdID, status),
	}
}

// NewVersionConflictError reports the loser of a concurrent create-version
// race. The caller may re-read and retry.
func NewVersionConflictError(configType ConfigType, tenantID string, version int) error {
	return &DomainError{
		Code:    CodeVersionConflict,
		Message: fmt.Sprintf("version %d of %s config for tenant %s was created concurrently", version, configType, tenantID),
	}
}

// NewBuildDisabledError reports a multisig mutation attempted while the
// activation build flag is off. Nothing has been persisted.
func NewBuildDisabledError(operation string) error {
	return &DomainError{
		Code:    CodeBuildDisabled,
		Message: fmt.Sprintf("%s requires the activation build flag", operation),
	}
}

// NewRuntimeExecutionError reports the permanent prohibition on executing an
// authority workflow at runtime. This is unconditional and not configurable.
func NewRuntimeExecutionError(operation string) error {
	return &DomainError{
		Code:    CodeRuntimeExecution,
		Message: fmt.Sprintf("%s is permanently forbidden: authority workflows are build-phase only", operation),
	}
}

// IsCode reports whether err carries the given stable error code.
func IsCode(err error, code string) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == code
}
