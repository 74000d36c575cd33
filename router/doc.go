// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Elect API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(engine, cfg)

# Endpoints

Health:

	GET /health

Workflow (admin, requires X-Admin-Key):

	POST /voters                    - Register voter, returns voter token
	POST /election/proposals/open   - Open proposal registration
	POST /election/proposals/close  - Close proposal registration
	POST /election/voting/open      - Open voting session
	POST /election/voting/close     - Close voting session
	POST /election/tally            - Compute winner

Voters (requires X-Voter-Address and X-Voter-Token):

	POST /proposals - Submit proposal
	POST /votes     - Cast vote

Reads (public):

	GET /election           - Status summary
	GET /election/events    - Event log (?after=seq)
	GET /voters/{address}   - Voter record
	GET /proposals          - All proposals in index order
	GET /proposals/{id}     - One proposal
	GET /results/winner     - Winner (after tally)

# Handler Initialization

The router creates handler instances with dependency injection:

	electionHandler := handlers.NewElectionHandler(engine, cfg)
	votingHandler := handlers.NewVotingHandler(engine, cfg)
	resultsHandler := handlers.NewResultsHandler(engine, cfg)

All handlers share the one election instance and the configuration.
*/
package router
