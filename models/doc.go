// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing JSON request bodies:

  - RegisterVoterRequest: address
  - SubmitProposalRequest: description
  - CastVoteRequest: proposal_id

# Response Types

Types for JSON responses:

  - RegisterVoterResponse: voter, voter_token, event
  - SubmitProposalResponse: proposal_id, event
  - EventResponse: status, event
  - TallyResponse: winner, event
  - ProposalsResponse: proposals
  - WinnerResponse: winner, summary
  - EventsResponse: events, last_seq
  - ErrorResponse: error, message

Domain values (Voter, Proposal, Event, Summary) come from package election
and are embedded as-is.

# Headers

	HeaderAdminKey     = "X-Admin-Key"
	HeaderVoterAddress = "X-Voter-Address"
	HeaderVoterToken   = "X-Voter-Token"
*/
package models
