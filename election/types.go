// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"time"
)

// Address is an opaque caller identity.
type Address string

// Voter is created once by the admin and only mutated by casting a vote.
type Voter struct {
	Address         Address `json:"address"`
	IsRegistered    bool    `json:"is_registered"`
	HasVoted        bool    `json:"has_voted"`
	VotedProposalID *int    `json:"voted_proposal_id,omitempty"`
}

// Proposal is addressed by its insertion index.
type Proposal struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	VoteCount   uint64 `json:"vote_count"`
}

type EventKind string

const (
	EventVoterRegistered              EventKind = "VoterRegistered"
	EventProposalRegistered           EventKind = "ProposalRegistered"
	EventProposalsRegistrationStarted EventKind = "ProposalsRegistrationStarted"
	EventProposalsRegistrationEnded   EventKind = "ProposalsRegistrationEnded"
	EventVotingSessionStarted         EventKind = "VotingSessionStarted"
	EventVoteCast                     EventKind = "VoteCast"
	EventVotingSessionEnded           EventKind = "VotingSessionEnded"
	EventVotesTallied                 EventKind = "VotesTallied"
)

// Event records one accepted operation. Status is the workflow status after
// the operation. ProposalID is the new proposal for ProposalRegistered, the
// chosen proposal for VoteCast and the winner for VotesTallied; VoteCount is
// that proposal's count after the operation.
type Event struct {
	Seq         uint64    `json:"seq"`
	ID          string    `json:"id"`
	Kind        EventKind `json:"kind"`
	Actor       Address   `json:"actor"`
	At          time.Time `json:"at"`
	Status      Status    `json:"status"`
	Voter       Address   `json:"voter,omitempty"`
	ProposalID  *int      `json:"proposal_id,omitempty"`
	Description string    `json:"description,omitempty"`
	VoteCount   uint64    `json:"vote_count,omitempty"`
}

// Journal durably records events before they are applied.
type Journal interface {
	Append(ctx context.Context, ev Event) error
}

// Summary is a point-in-time view of the aggregate.
type Summary struct {
	Admin             Address `json:"admin"`
	Status            Status  `json:"status"`
	Voters            int     `json:"voters"`
	Proposals         int     `json:"proposals"`
	VotesCast         uint64  `json:"votes_cast"`
	WinningProposalID *int    `json:"winning_proposal_id,omitempty"`
	LastSeq           uint64  `json:"last_seq"`
}

func intPtr(v int) *int {
	return &v
}
