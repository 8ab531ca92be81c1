package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/services"
	"github.com/tradeverity/governance-core/userctx"
)

// PolicyController handles versioned policy configuration requests. One
// instance exists per config type (fee, fx, escrow), all sharing the same
// handler logic.
type PolicyController struct {
	policy services.ConfigService
	ledger services.LedgerService
}

// NewPolicyController creates a new policy controller
func NewPolicyController(policy services.ConfigService, ledger services.LedgerService) *PolicyController {
	return &PolicyController{
		policy: policy,
		ledger: ledger,
	}
}

// policyCreateRequest is the POST body for a new version
type policyCreateRequest struct {
	TenantID      string          `json:"tenantId"`
	Reason        string          `json:"reason"`
	EffectiveFrom *time.Time      `json:"effectiveFrom,omitempty"`
	Rules         json.RawMessage `json:"rules"`
}

// GetActive handles GET /{tenantID}
func (c *PolicyController) GetActive(w http.ResponseWriter, r *http.Request) {
	version, err := c.policy.GetActive(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		respondError(w, err)
		return
	}
	if version == nil {
		respondError(w, models.NewNotFoundError("active "+string(c.policy.ConfigType())+" config", chi.URLParam(r, "tenantID")))
		return
	}

	respondJSON(w, http.StatusOK, version)
}

// History handles GET /{tenantID}/history
func (c *PolicyController) History(w http.ResponseWriter, r *http.Request) {
	versions, err := c.policy.ListVersions(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, versions)
}

// Create handles POST / — creates a new version and retires the previous one
func (c *PolicyController) Create(w http.ResponseWriter, r *http.Request) {
	var body policyCreateRequest
	if !decodeBody(w, r, &body) {
		return
	}

	actor := userctx.GetActor(r.Context())
	version, err := c.policy.CreateNewVersion(r.Context(), &models.CreateConfigVersionInput{
		TenantID:      body.TenantID,
		Reason:        body.Reason,
		CreatedBy:     models.Creator{UserID: actor.UserID, Role: actor.Role},
		EffectiveFrom: body.EffectiveFrom,
		Rules:         body.Rules,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, version)
}

// Update handles PUT /{configID}. There is no in-place update path; this
// route exists so the immutability contract is discoverable over HTTP.
func (c *PolicyController) Update(w http.ResponseWriter, r *http.Request) {
	respondError(w, c.policy.UpdateVersion(r.Context(), chi.URLParam(r, "configID")))
}
