// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"strings"
)

// RegisterVoter admits voter. Admin only, while RegisteringVoters.
func (e *Election) RegisterVoter(ctx context.Context, caller, voter Address) (Event, error) {
	return e.execute(ctx, Event{Kind: EventVoterRegistered, Actor: caller, Voter: voter})
}

// SubmitProposal appends a proposal on behalf of a registered voter while
// proposal registration is open. The new index is in the returned event.
func (e *Election) SubmitProposal(ctx context.Context, caller Address, description string) (Event, error) {
	return e.execute(ctx, Event{Kind: EventProposalRegistered, Actor: caller, Description: description})
}

func (e *Election) prepareRegistration(ev Event) (Event, error) {
	if err := e.requireAdmin(ev.Actor); err != nil {
		return Event{}, err
	}
	if err := e.requireStatus(RegisteringVoters); err != nil {
		return Event{}, err
	}
	voter := Address(strings.TrimSpace(string(ev.Voter)))
	if voter == "" {
		return Event{}, fmt.Errorf("%w: voter address is required", ErrInvalidInput)
	}
	if _, ok := e.voters[voter]; ok {
		return Event{}, fmt.Errorf("%w: %s", ErrAlreadyRegistered, voter)
	}
	ev.Voter = voter
	ev.Status = e.status
	return ev, nil
}

func (e *Election) prepareProposal(ev Event) (Event, error) {
	if _, err := e.requireVoter(ev.Actor); err != nil {
		return Event{}, err
	}
	if err := e.requireStatus(ProposalsRegistrationStarted); err != nil {
		return Event{}, err
	}
	description := strings.TrimSpace(ev.Description)
	if description == "" {
		return Event{}, fmt.Errorf("%w: proposal description is required", ErrInvalidInput)
	}
	ev.Description = description
	ev.Voter = ev.Actor
	ev.ProposalID = intPtr(len(e.proposals))
	ev.Status = e.status
	return ev, nil
}
