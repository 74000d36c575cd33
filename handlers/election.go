// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type ElectionHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewElectionHandler(e *election.Election, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{election: e, cfg: cfg}
}

// RegisterVoter handles POST /voters
func (h *ElectionHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := adminCaller(w, r, h.cfg)
	if !ok {
		return
	}

	// Parse request
	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ev, err := h.election.RegisterVoter(r.Context(), caller, election.Address(req.Address))
	if err != nil {
		writeElectionError(w, "register_voter", err)
		return
	}

	voter, err := h.election.Voter(ev.Voter)
	if err != nil {
		writeElectionError(w, "register_voter", err)
		return
	}

	slog.Info("voter registered", "address", string(ev.Voter), "seq", ev.Seq)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		Voter:      voter,
		VoterToken: auth.GenerateVoterToken(string(ev.Voter), h.cfg.VoterTokenSalt),
		Event:      ev,
	})
}

// OpenProposalRegistration handles POST /election/proposals/open
func (h *ElectionHandler) OpenProposalRegistration(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "open_proposal_registration", h.election.OpenProposalRegistration)
}

// CloseProposalRegistration handles POST /election/proposals/close
func (h *ElectionHandler) CloseProposalRegistration(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "close_proposal_registration", h.election.CloseProposalRegistration)
}

// OpenVoteSession handles POST /election/voting/open
func (h *ElectionHandler) OpenVoteSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "open_vote_session", h.election.OpenVoteSession)
}

// CloseVoteSession handles POST /election/voting/close
func (h *ElectionHandler) CloseVoteSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "close_vote_session", h.election.CloseVoteSession)
}

func (h *ElectionHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	advance func(context.Context, election.Address) (election.Event, error),
) {
	caller, ok := adminCaller(w, r, h.cfg)
	if !ok {
		return
	}

	ev, err := advance(r.Context(), caller)
	if err != nil {
		writeElectionError(w, op, err)
		return
	}

	slog.Info("workflow status changed", "op", op, "status", ev.Status.String(), "seq", ev.Seq)

	middleware.JSONResponse(w, http.StatusOK, models.EventResponse{
		Status: ev.Status,
		Event:  ev,
	})
}

// Tally handles POST /election/tally
func (h *ElectionHandler) Tally(w http.ResponseWriter, r *http.Request) {
	caller, ok := adminCaller(w, r, h.cfg)
	if !ok {
		return
	}

	ev, err := h.election.Tally(r.Context(), caller)
	if err != nil {
		writeElectionError(w, "tally", err)
		return
	}

	winner, err := h.election.WinningProposal()
	if err != nil {
		writeElectionError(w, "tally", err)
		return
	}

	slog.Info("votes tallied", "winning_proposal_id", winner.ID, "vote_count", winner.VoteCount)

	middleware.JSONResponse(w, http.StatusOK, models.TallyResponse{
		Winner: winner,
		Event:  ev,
	})
}
