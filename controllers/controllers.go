package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth          *AuthController
	Ledger        *LedgerController
	FeePolicy     *PolicyController
	FXPolicy      *PolicyController
	EscrowPolicy  *PolicyController
	Holds         *HoldController
	ChangeControl *ChangeControlController
	Multisig      *MultisigController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Auth:          NewAuthController(),
		Ledger:        NewLedgerController(services),
		FeePolicy:     NewPolicyController(services.FeePolicy, services.Ledger),
		FXPolicy:      NewPolicyController(services.FXPolicy, services.Ledger),
		EscrowPolicy:  NewPolicyController(services.EscrowPolicy, services.Ledger),
		Holds:         NewHoldController(services),
		ChangeControl: NewChangeControlController(services),
		Multisig:      NewMultisigController(services),
	}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError maps a service error to an HTTP status and JSON body
func respondError(w http.ResponseWriter, err error) {
	var domainErr *models.DomainError
	if !errors.As(err, &domainErr) {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"code":  "INTERNAL",
			"error": err.Error(),
		})
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case models.CodeValidationFailed, models.CodeInvalidSubsystem, models.CodeHoldNotActive:
		status = http.StatusBadRequest
	case models.CodeNotFound:
		status = http.StatusNotFound
	case models.CodeImmutableVersion, models.CodeVersionConflict:
		status = http.StatusConflict
	case models.CodeCoreInvariantViolation:
		status = http.StatusUnprocessableEntity
	case models.CodeBuildDisabled, models.CodeRuntimeExecution:
		status = http.StatusForbidden
	}

	respondJSON(w, status, map[string]string{
		"code":  domainErr.Code,
		"error": domainErr.Message,
	})
}

// decodeBody parses a JSON request body into dst
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"code":  models.CodeValidationFailed,
			"error": "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}
