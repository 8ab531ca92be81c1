package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/services"
	"github.com/tradeverity/governance-core/userctx"
)

// HoldController handles settlement hold requests
type HoldController struct {
	services *services.Services
}

// NewHoldController creates a new settlement hold controller
func NewHoldController(services *services.Services) *HoldController {
	return &HoldController{
		services: services,
	}
}

// holdCreateRequest is the POST body for a new hold
type holdCreateRequest struct {
	TenantID   string               `json:"tenantId"`
	Scope      models.HoldScope     `json:"scope"`
	Subsystem  models.HoldSubsystem `json:"subsystem"`
	Reason     string               `json:"reason"`
	ReasonCode string               `json:"reasonCode,omitempty"`
}

// holdOverrideRequest is the POST body for an override
type holdOverrideRequest struct {
	Reason        string `json:"reason"`
	Justification string `json:"justification"`
	DurationHours *int   `json:"durationHours,omitempty"`
}

// Create handles POST /holds. The audit entry is written first; the hold row
// stores its id.
func (c *HoldController) Create(w http.ResponseWriter, r *http.Request) {
	var body holdCreateRequest
	if !decodeBody(w, r, &body) {
		return
	}

	actor := userctx.GetActor(r.Context())
	record, err := c.services.Ledger.Write(r.Context(), &models.AuditWriteInput{
		Actor:    actor,
		Action:   "settlement.hold.create",
		Entity:   models.EntityRef{Type: "SETTLEMENT_HOLD", ID: scopeEntityID(body.Scope)},
		Reason:   body.Reason,
		Before:   nil,
		After:    body,
		TenantID: body.TenantID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	hold, err := c.services.Holds.Create(r.Context(), &models.CreateHoldInput{
		TenantID:   body.TenantID,
		Scope:      body.Scope,
		Subsystem:  body.Subsystem,
		Reason:     body.Reason,
		ReasonCode: body.ReasonCode,
		CreatedBy:  models.Creator{UserID: actor.UserID, Role: actor.Role},
		AuditID:    record.AuditID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, hold)
}

// Override handles POST /holds/{holdID}/override
func (c *HoldController) Override(w http.ResponseWriter, r *http.Request) {
	var body holdOverrideRequest
	if !decodeBody(w, r, &body) {
		return
	}

	holdID := chi.URLParam(r, "holdID")
	existing, err := c.services.Holds.GetByID(r.Context(), holdID)
	if err != nil {
		respondError(w, err)
		return
	}

	actor := userctx.GetActor(r.Context())
	record, err := c.services.Ledger.Write(r.Context(), &models.AuditWriteInput{
		Actor:    actor,
		Action:   "settlement.hold.override",
		Entity:   models.EntityRef{Type: "SETTLEMENT_HOLD", ID: holdID},
		Reason:   body.Reason,
		Before:   existing,
		After:    body,
		TenantID: existing.TenantID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	hold, err := c.services.Holds.Override(r.Context(), &models.OverrideHoldInput{
		HoldID:        holdID,
		Reason:        body.Reason,
		Justification: body.Justification,
		DurationHours: body.DurationHours,
		OverriddenBy:  models.Creator{UserID: actor.UserID, Role: actor.Role},
		AuditID:       record.AuditID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, hold)
}

// List handles GET /holds?tenantId=&status=&limit=
func (c *HoldController) List(w http.ResponseWriter, r *http.Request) {
	filters := models.HoldFilters{
		TenantID: r.URL.Query().Get("tenantId"),
		Status:   models.HoldStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filters.Limit = parsed
		}
	}

	holds, err := c.services.Holds.List(r.Context(), filters)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, holds)
}

// scopeEntityID picks the most specific scope identifier for audit purposes
func scopeEntityID(scope models.HoldScope) string {
	switch {
	case scope.OrderID != "":
		return scope.OrderID
	case scope.PaymentID != "":
		return scope.PaymentID
	case scope.PayoutID != "":
		return scope.PayoutID
	case scope.SupplierID != "":
		return scope.SupplierID
	}
	return "unscoped"
}
