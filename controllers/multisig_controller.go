package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/services"
	"github.com/tradeverity/governance-core/userctx"
)

// MultisigController handles the build-phase authority workflow requests
type MultisigController struct {
	services *services.Services
}

// NewMultisigController creates a new multisig controller
func NewMultisigController(services *services.Services) *MultisigController {
	return &MultisigController{
		services: services,
	}
}

// proposalCreateRequest is the POST body for a proposal draft
type proposalCreateRequest struct {
	Type            string               `json:"type"`
	Scope           models.ProposalScope `json:"scope"`
	Reason          string               `json:"reason"`
	EvidenceRefs    []string             `json:"evidenceRefs,omitempty"`
	ProposedChanges interface{}          `json:"proposedChanges"`
}

// approvalRequest is the POST body for an approval decision
type approvalRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// quorumRequest is the POST body for a quorum snapshot
type quorumRequest struct {
	RequiredApprovals int `json:"requiredApprovals"`
}

// planRequest is the POST body for an execution plan
type planRequest struct {
	Steps []models.ExecutionPlanStep `json:"steps"`
}

// CreateProposal handles POST /multisig/proposals
func (c *MultisigController) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var body proposalCreateRequest
	if !decodeBody(w, r, &body) {
		return
	}

	actor := userctx.GetActor(r.Context())
	proposal, err := c.services.Multisig.CreateProposalDraft(r.Context(), &models.CreateProposalInput{
		Type:            body.Type,
		Scope:           body.Scope,
		SubmittedBy:     models.Creator{UserID: actor.UserID, Role: actor.Role},
		Reason:          body.Reason,
		EvidenceRefs:    body.EvidenceRefs,
		ProposedChanges: body.ProposedChanges,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, proposal)
}

// RecordApproval handles POST /multisig/proposals/{proposalID}/approvals
func (c *MultisigController) RecordApproval(w http.ResponseWriter, r *http.Request) {
	var body approvalRequest
	if !decodeBody(w, r, &body) {
		return
	}

	actor := userctx.GetActor(r.Context())
	entry, err := c.services.Multisig.RecordApprovalDecision(r.Context(), &models.RecordApprovalInput{
		ProposalID:   chi.URLParam(r, "proposalID"),
		ApproverID:   actor.UserID,
		ApproverRole: actor.Role,
		Decision:     body.Decision,
		Reason:       body.Reason,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// ComputeQuorum handles POST /multisig/proposals/{proposalID}/quorum
func (c *MultisigController) ComputeQuorum(w http.ResponseWriter, r *http.Request) {
	var body quorumRequest
	if !decodeBody(w, r, &body) {
		return
	}

	snapshot, err := c.services.Multisig.ComputeQuorumSnapshot(r.Context(), &models.ComputeQuorumInput{
		ProposalID:        chi.URLParam(r, "proposalID"),
		RequiredApprovals: body.RequiredApprovals,
		RequestedBy:       userctx.GetActor(r.Context()),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, snapshot)
}

// BuildPlan handles POST /multisig/proposals/{proposalID}/plan
func (c *MultisigController) BuildPlan(w http.ResponseWriter, r *http.Request) {
	var body planRequest
	if !decodeBody(w, r, &body) {
		return
	}

	plan, err := c.services.Multisig.BuildExecutionPlan(r.Context(), &models.BuildPlanInput{
		ProposalID: chi.URLParam(r, "proposalID"),
		Steps:      body.Steps,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// TriggerActivation handles POST /multisig/activate. Permanently forbidden.
func (c *MultisigController) TriggerActivation(w http.ResponseWriter, r *http.Request) {
	respondError(w, c.services.Multisig.TriggerRuntimeActivation(r.Context()))
}

// Execute handles POST /multisig/execute. Permanently forbidden.
func (c *MultisigController) Execute(w http.ResponseWriter, r *http.Request) {
	respondError(w, c.services.Multisig.ExecuteWorkflow(r.Context()))
}
