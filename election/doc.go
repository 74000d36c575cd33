// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements a single-election voting workflow.

An Election is one owned aggregate holding the whole lifecycle: the voter
registry, the ordered proposal list, the workflow status and the winning
proposal once tallied. Every public operation takes the caller identity
explicitly and is atomic: it either commits all of its effects and emits
exactly one Event, or fails with one of the sentinel errors and changes
nothing.

# Workflow

Statuses advance strictly one step at a time and never go backwards:

	RegisteringVoters
	  → ProposalsRegistrationStarted   (OpenProposalRegistration)
	  → ProposalsRegistrationEnded     (CloseProposalRegistration)
	  → VotingSessionStarted           (OpenVoteSession)
	  → VotingSessionEnded             (CloseVoteSession)
	  → VotesTallied                   (Tally)

CloseProposalRegistration fails with ErrNoProposals while no proposal exists,
leaving registration open for submissions. An election therefore never
reaches the voting session without a candidate to tally.

Transitions, voter registration and tallying are admin-only. Proposal
submission and vote casting require a registered voter.

# Tally

The winner is the proposal with the greatest vote count. Ties go to the
lowest proposal index:

	counts [3, 5, 5, 1] → winner 1

# Events and Journal

Each accepted operation appends one Event to the in-memory log, readable
through Events. When a Journal is configured the event is appended to it
before the state changes; a journal failure rejects the operation.

	e, err := election.New(admin, election.WithJournal(j))
	ev, err := e.RegisterVoter(ctx, admin, "0xA1")

Restore rebuilds an Election from a recorded event stream, validating every
event against the same guards the live operations use.

# Baseline Proposal

WithBaselineProposal seeds proposal 0 when proposal registration opens. It is
disabled by default. The seeded description travels in the
ProposalsRegistrationStarted event.
*/
package election
