// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type VotingHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewVotingHandler(e *election.Election, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{election: e, cfg: cfg}
}

// SubmitProposal handles POST /proposals
func (h *VotingHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := voterCaller(w, r, h.cfg)
	if !ok {
		return
	}

	// Parse request
	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ev, err := h.election.SubmitProposal(r.Context(), caller, req.Description)
	if err != nil {
		writeElectionError(w, "submit_proposal", err)
		return
	}

	slog.Info("proposal registered", "proposal_id", *ev.ProposalID, "voter", string(caller))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitProposalResponse{
		ProposalID: *ev.ProposalID,
		Event:      ev,
	})
}

// CastVote handles POST /votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	caller, ok := voterCaller(w, r, h.cfg)
	if !ok {
		return
	}

	// Parse request
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ProposalID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal_id is required")
		return
	}

	ev, err := h.election.CastVote(r.Context(), caller, *req.ProposalID)
	if err != nil {
		writeElectionError(w, "cast_vote", err)
		return
	}

	// Keyed like the voter tokens so the raw address never reaches the log
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.VoterTokenSalt)

	slog.Info("vote cast", "voter", string(caller), "proposal_id", *ev.ProposalID, "ip_hash", ipHash)

	middleware.JSONResponse(w, http.StatusCreated, models.EventResponse{
		Status: ev.Status,
		Event:  ev,
	})
}
