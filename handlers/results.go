// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type ResultsHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewResultsHandler(e *election.Election, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{election: e, cfg: cfg}
}

// GetElection handles GET /election
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.election.Summary())
}

// GetVoter handles GET /voters/{address}
func (h *ResultsHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if address == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	voter, err := h.election.Voter(election.Address(address))
	if err != nil {
		writeElectionError(w, "get_voter", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voter)
}

// ListProposals handles GET /proposals
func (h *ResultsHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ProposalsResponse{
		Proposals: h.election.Proposals(),
	})
}

// GetProposal handles GET /proposals/{id}
func (h *ResultsHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	proposal, err := h.election.Proposal(id)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Proposal not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, proposal)
}

// GetWinner handles GET /results/winner
// Returns 409 until votes are tallied
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	winner, err := h.election.WinningProposal()
	if err != nil {
		writeElectionError(w, "get_winner", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		Winner:  winner,
		Summary: winnerSummary(winner),
	})
}

// GetEvents handles GET /election/events?after=N
func (h *ResultsHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	var after uint64
	if raw := r.URL.Query().Get("after"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "after must be a non-negative integer")
			return
		}
		after = parsed
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventsResponse{
		Events:  h.election.Events(after),
		LastSeq: h.election.Summary().LastSeq,
	})
}

// winnerSummary renders e.g. `1st proposal "Build a park" won with 1,204 votes`
func winnerSummary(p election.Proposal) string {
	return fmt.Sprintf("%s proposal %q won with %s %s",
		humanize.Ordinal(p.ID+1),
		p.Description,
		humanize.Comma(int64(p.VoteCount)),
		english.PluralWord(int(p.VoteCount), "vote", ""),
	)
}
