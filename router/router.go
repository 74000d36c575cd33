// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/handlers"
	"github.com/danielhkuo/quickly-elect/middleware"
)

func NewRouter(e *election.Election, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(e, cfg)
	votingHandler := handlers.NewVotingHandler(e, cfg)
	resultsHandler := handlers.NewResultsHandler(e, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Workflow (admin operations)
	mux.HandleFunc("POST /voters", middleware.WithLogging(electionHandler.RegisterVoter))
	mux.HandleFunc("POST /election/proposals/open", middleware.WithLogging(electionHandler.OpenProposalRegistration))
	mux.HandleFunc("POST /election/proposals/close", middleware.WithLogging(electionHandler.CloseProposalRegistration))
	mux.HandleFunc("POST /election/voting/open", middleware.WithLogging(electionHandler.OpenVoteSession))
	mux.HandleFunc("POST /election/voting/close", middleware.WithLogging(electionHandler.CloseVoteSession))
	mux.HandleFunc("POST /election/tally", middleware.WithLogging(electionHandler.Tally))

	// Voter operations
	mux.HandleFunc("POST /proposals", middleware.WithLogging(votingHandler.SubmitProposal))
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))

	// Public reads
	mux.HandleFunc("GET /election", middleware.WithLogging(resultsHandler.GetElection))
	mux.HandleFunc("GET /election/events", middleware.WithLogging(resultsHandler.GetEvents))
	mux.HandleFunc("GET /voters/{address}", middleware.WithLogging(resultsHandler.GetVoter))
	mux.HandleFunc("GET /proposals", middleware.WithLogging(resultsHandler.ListProposals))
	mux.HandleFunc("GET /proposals/{id}", middleware.WithLogging(resultsHandler.GetProposal))
	mux.HandleFunc("GET /results/winner", middleware.WithLogging(resultsHandler.GetWinner))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-elect API v1"))
	})

	return mux
}
