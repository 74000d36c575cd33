// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
)

type transition struct {
	from Status
	to   Status
}

var transitions = map[EventKind]transition{
	EventProposalsRegistrationStarted: {RegisteringVoters, ProposalsRegistrationStarted},
	EventProposalsRegistrationEnded:   {ProposalsRegistrationStarted, ProposalsRegistrationEnded},
	EventVotingSessionStarted:         {ProposalsRegistrationEnded, VotingSessionStarted},
	EventVotingSessionEnded:           {VotingSessionStarted, VotingSessionEnded},
}

var logEventNames = map[EventKind]string{
	EventVoterRegistered:              "election_voter_registered",
	EventProposalRegistered:           "election_proposal_registered",
	EventProposalsRegistrationStarted: "election_proposals_registration_started",
	EventProposalsRegistrationEnded:   "election_proposals_registration_ended",
	EventVotingSessionStarted:         "election_voting_session_started",
	EventVoteCast:                     "election_vote_cast",
	EventVotingSessionEnded:           "election_voting_session_ended",
	EventVotesTallied:                 "election_votes_tallied",
}

func logEventName(kind EventKind) string {
	if name, ok := logEventNames[kind]; ok {
		return name
	}
	return "election_unknown_event"
}

// OpenProposalRegistration moves RegisteringVoters → ProposalsRegistrationStarted.
func (e *Election) OpenProposalRegistration(ctx context.Context, caller Address) (Event, error) {
	return e.execute(ctx, Event{Kind: EventProposalsRegistrationStarted, Actor: caller})
}

// CloseProposalRegistration moves ProposalsRegistrationStarted → ProposalsRegistrationEnded.
// It fails with ErrNoProposals while the proposal list is empty.
func (e *Election) CloseProposalRegistration(ctx context.Context, caller Address) (Event, error) {
	return e.execute(ctx, Event{Kind: EventProposalsRegistrationEnded, Actor: caller})
}

// OpenVoteSession moves ProposalsRegistrationEnded → VotingSessionStarted.
func (e *Election) OpenVoteSession(ctx context.Context, caller Address) (Event, error) {
	return e.execute(ctx, Event{Kind: EventVotingSessionStarted, Actor: caller})
}

// CloseVoteSession moves VotingSessionStarted → VotingSessionEnded.
func (e *Election) CloseVoteSession(ctx context.Context, caller Address) (Event, error) {
	return e.execute(ctx, Event{Kind: EventVotingSessionEnded, Actor: caller})
}

// prepare runs the guards for ev against the current state and fills in the
// fields derived from it. It never mutates e.
func (e *Election) prepare(ev Event) (Event, error) {
	switch ev.Kind {
	case EventVoterRegistered:
		return e.prepareRegistration(ev)
	case EventProposalRegistered:
		return e.prepareProposal(ev)
	case EventVoteCast:
		return e.prepareVote(ev)
	case EventVotesTallied:
		return e.prepareTally(ev)
	}

	t, ok := transitions[ev.Kind]
	if !ok {
		return Event{}, fmt.Errorf("%w: unknown event kind %q", ErrInvalidInput, ev.Kind)
	}
	if err := e.requireAdmin(ev.Actor); err != nil {
		return Event{}, err
	}
	if err := e.requireStatus(t.from); err != nil {
		return Event{}, err
	}
	if ev.Kind == EventProposalsRegistrationEnded && len(e.proposals) == 0 {
		return Event{}, fmt.Errorf("%w: registration stays open until one is submitted", ErrNoProposals)
	}
	ev.Status = t.to
	if ev.Kind == EventProposalsRegistrationStarted {
		ev.Description = e.baseline
	}
	return ev, nil
}

// apply mutates state for an already prepared event.
func (e *Election) apply(ev Event) {
	switch ev.Kind {
	case EventVoterRegistered:
		e.voters[ev.Voter] = &Voter{Address: ev.Voter, IsRegistered: true}
	case EventProposalRegistered:
		e.proposals = append(e.proposals, Proposal{ID: *ev.ProposalID, Description: ev.Description})
	case EventProposalsRegistrationStarted:
		if ev.Description != "" {
			e.proposals = append(e.proposals, Proposal{ID: len(e.proposals), Description: ev.Description})
		}
	case EventVoteCast:
		id := *ev.ProposalID
		e.proposals[id].VoteCount++
		v := e.voters[ev.Voter]
		v.HasVoted = true
		v.VotedProposalID = intPtr(id)
	case EventVotesTallied:
		e.winner = *ev.ProposalID
	}
	e.status = ev.Status
	e.events = append(e.events, copyEvent(ev))
}

func (e *Election) requireAdmin(caller Address) error {
	if caller != e.admin {
		return fmt.Errorf("%w: %s is not the admin", ErrNotAuthorized, caller)
	}
	return nil
}

func (e *Election) requireStatus(want Status) error {
	if e.status != want {
		return fmt.Errorf("%w: requires %s, status is %s", ErrIllegalStateTransition, want, e.status)
	}
	return nil
}

func (e *Election) requireVoter(caller Address) (*Voter, error) {
	v, ok := e.voters[caller]
	if !ok || !v.IsRegistered {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, caller)
	}
	return v, nil
}
