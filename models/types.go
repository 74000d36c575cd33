package models

import "github.com/danielhkuo/quickly-elect/election"

// Header names carrying the caller identity
const (
	HeaderAdminKey     = "X-Admin-Key"
	HeaderVoterAddress = "X-Voter-Address"
	HeaderVoterToken   = "X-Voter-Token"
)

// Request types

type RegisterVoterRequest struct {
	Address string `json:"address"`
}

type SubmitProposalRequest struct {
	Description string `json:"description"`
}

// Pointer so a missing proposal_id is distinguishable from proposal 0
type CastVoteRequest struct {
	ProposalID *int `json:"proposal_id"`
}

// Response types

type RegisterVoterResponse struct {
	Voter      election.Voter `json:"voter"`
	VoterToken string         `json:"voter_token"`
	Event      election.Event `json:"event"`
}

type SubmitProposalResponse struct {
	ProposalID int            `json:"proposal_id"`
	Event      election.Event `json:"event"`
}

// EventResponse is returned by workflow transitions and vote casting
type EventResponse struct {
	Status election.Status `json:"status"`
	Event  election.Event  `json:"event"`
}

type TallyResponse struct {
	Winner election.Proposal `json:"winner"`
	Event  election.Event    `json:"event"`
}

type ProposalsResponse struct {
	Proposals []election.Proposal `json:"proposals"`
}

type WinnerResponse struct {
	Winner  election.Proposal `json:"winner"`
	Summary string            `json:"summary"`
}

type EventsResponse struct {
	Events  []election.Event `json:"events"`
	LastSeq uint64           `json:"last_seq"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
