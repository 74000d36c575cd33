// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
)

// Tally computes the winner and moves VotingSessionEnded → VotesTallied.
func (e *Election) Tally(ctx context.Context, caller Address) (Event, error) {
	return e.execute(ctx, Event{Kind: EventVotesTallied, Actor: caller})
}

func (e *Election) prepareTally(ev Event) (Event, error) {
	if err := e.requireAdmin(ev.Actor); err != nil {
		return Event{}, err
	}
	if err := e.requireStatus(VotingSessionEnded); err != nil {
		return Event{}, err
	}
	winner, ok := winningIndex(e.proposals)
	if !ok {
		return Event{}, fmt.Errorf("%w: voting session ended with 0 proposals", ErrNoProposals)
	}
	ev.ProposalID = intPtr(winner)
	ev.VoteCount = e.proposals[winner].VoteCount
	ev.Status = VotesTallied
	return ev, nil
}

// winningIndex returns the index with the strictly greatest vote count;
// the lowest index wins ties.
func winningIndex(proposals []Proposal) (int, bool) {
	if len(proposals) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(proposals); i++ {
		if proposals[i].VoteCount > proposals[best].VoteCount {
			best = i
		}
	}
	return best, true
}
