// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
)

// CastVote records caller's single vote for proposalID.
func (e *Election) CastVote(ctx context.Context, caller Address, proposalID int) (Event, error) {
	return e.execute(ctx, Event{Kind: EventVoteCast, Actor: caller, ProposalID: intPtr(proposalID)})
}

func (e *Election) prepareVote(ev Event) (Event, error) {
	v, err := e.requireVoter(ev.Actor)
	if err != nil {
		return Event{}, err
	}
	if err := e.requireStatus(VotingSessionStarted); err != nil {
		return Event{}, err
	}
	if v.HasVoted {
		return Event{}, fmt.Errorf("%w: %s", ErrAlreadyVoted, ev.Actor)
	}
	if ev.ProposalID == nil {
		return Event{}, fmt.Errorf("%w: proposal id is required", ErrInvalidProposal)
	}
	id := *ev.ProposalID
	if id < 0 || id >= len(e.proposals) {
		return Event{}, fmt.Errorf("%w: %d out of range [0, %d)", ErrInvalidProposal, id, len(e.proposals))
	}
	ev.Voter = ev.Actor
	ev.ProposalID = intPtr(id)
	ev.VoteCount = e.proposals[id].VoteCount + 1
	ev.Status = e.status
	return ev, nil
}
