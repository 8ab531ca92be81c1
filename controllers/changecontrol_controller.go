package controllers

import (
	"net/http"
	"strconv"

	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/services"
	"github.com/tradeverity/governance-core/userctx"
)

// ChangeControlController handles change-control event requests
type ChangeControlController struct {
	services *services.Services
}

// NewChangeControlController creates a new change control controller
func NewChangeControlController(services *services.Services) *ChangeControlController {
	return &ChangeControlController{
		services: services,
	}
}

// changeControlCreateRequest is the POST body for a new event
type changeControlCreateRequest struct {
	Type      string                   `json:"type"`
	Scope     *models.EntityRef        `json:"scope,omitempty"`
	Rationale string                   `json:"rationale"`
	Reason    string                   `json:"reason"`
	Impact    *models.ImpactAssessment `json:"impact,omitempty"`
	TenantID  string                   `json:"tenantId,omitempty"`
}

// Create handles POST /change-control
func (c *ChangeControlController) Create(w http.ResponseWriter, r *http.Request) {
	var body changeControlCreateRequest
	if !decodeBody(w, r, &body) {
		return
	}

	entity := models.EntityRef{Type: "CHANGE_CONTROL", ID: body.Type}
	if body.Scope != nil {
		entity = *body.Scope
	}

	actor := userctx.GetActor(r.Context())
	record, err := c.services.Ledger.Write(r.Context(), &models.AuditWriteInput{
		Actor:    actor,
		Action:   "governance.change_control.submit",
		Entity:   entity,
		Reason:   body.Reason,
		Before:   nil,
		After:    body,
		TenantID: body.TenantID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	event, err := c.services.ChangeControl.Create(r.Context(), &models.CreateChangeControlInput{
		Type:      body.Type,
		Scope:     body.Scope,
		Rationale: body.Rationale,
		Reason:    body.Reason,
		CreatedBy: models.Creator{UserID: actor.UserID, Role: actor.Role},
		Impact:    body.Impact,
		TenantID:  body.TenantID,
		AuditID:   record.AuditID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

// List handles GET /change-control?tenantId=&limit=
func (c *ChangeControlController) List(w http.ResponseWriter, r *http.Request) {
	filters := models.ChangeControlFilters{
		TenantID: r.URL.Query().Get("tenantId"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filters.Limit = parsed
		}
	}

	events, err := c.services.ChangeControl.List(r.Context(), filters)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}
