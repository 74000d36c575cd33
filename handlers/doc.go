// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickly-elect API.

# Handler Types

Each handler is a struct holding the shared *election.Election and the config:

  - ElectionHandler: voter registration, workflow transitions, tally
  - VotingHandler: proposal submission and vote casting
  - ResultsHandler: election summary, voters, proposals, winner, event feed

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(e, cfg)

# Workflow

The election moves through six states, one admin call per step:

	POST /voters                    → RegisterVoter (returns voter_token)
	POST /election/proposals/open   → OpenProposalRegistration
	POST /election/proposals/close  → CloseProposalRegistration
	POST /election/voting/open      → OpenVoteSession
	POST /election/voting/close     → CloseVoteSession
	POST /election/tally            → Tally

Admin operations require the X-Admin-Key header.

# Voting Flow

	POST /proposals → SubmitProposal
	POST /votes     → CastVote

Voter operations require X-Voter-Address and the X-Voter-Token issued at
registration.

# Errors

Engine errors map to status codes in caller.go: authorization failures are
403, unknown voters and proposals 404, bad input 400, and anything rejected
by the current state 409.
*/
package handlers
