package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/services"
	"github.com/tradeverity/governance-core/userctx"
)

// LedgerController handles audit ledger requests
type LedgerController struct {
	services *services.Services
}

// NewLedgerController creates a new ledger controller
func NewLedgerController(services *services.Services) *LedgerController {
	return &LedgerController{
		services: services,
	}
}

// Write handles POST /audit/records
func (c *LedgerController) Write(w http.ResponseWriter, r *http.Request) {
	var input models.AuditWriteInput
	if !decodeBody(w, r, &input) {
		return
	}

	// The session actor wins over whatever the body claims
	if actor := userctx.GetActor(r.Context()); actor.UserID != "" {
		input.Actor = actor
	}

	record, err := c.services.Ledger.Write(r.Context(), &input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// Get handles GET /audit/records/{auditID}
func (c *LedgerController) Get(w http.ResponseWriter, r *http.Request) {
	record, err := c.services.Ledger.GetRecord(r.Context(), chi.URLParam(r, "auditID"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// Verify handles GET /audit/verify?limit=N
func (c *LedgerController) Verify(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, models.NewValidationError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	result, err := c.services.Ledger.Verify(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
