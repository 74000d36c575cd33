// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// Restore rebuilds an election owned by admin from a recorded event stream.
// Events must be contiguous from sequence 1 and each must be legal in the
// state reached by its predecessors. The journal option, if given, is only
// used for operations after the restore.
func Restore(admin Address, events []Event, opts ...Option) (*Election, error) {
	e, err := New(admin, opts...)
	if err != nil {
		return nil, err
	}
	for _, rec := range events {
		if want := e.lastSeq() + 1; rec.Seq != want {
			return nil, fmt.Errorf("%w: got seq %d, want %d", ErrCorruptJournal, rec.Seq, want)
		}
		prepared, err := e.prepare(rec)
		if err != nil {
			return nil, fmt.Errorf("replay seq %d (%s): %w", rec.Seq, rec.Kind, err)
		}
		if rec.Kind == EventProposalsRegistrationStarted {
			prepared.Description = rec.Description
		}
		if err := matchRecorded(prepared, rec); err != nil {
			return nil, fmt.Errorf("replay seq %d (%s): %w", rec.Seq, rec.Kind, err)
		}
		prepared.Seq = rec.Seq
		prepared.ID = rec.ID
		prepared.At = rec.At
		e.apply(prepared)
	}
	e.logger.Info("election restored",
		"event", "election_restored",
		"events", len(events),
		"status", e.status.String(),
	)
	return e, nil
}

func matchRecorded(prepared, rec Event) error {
	if prepared.Status != rec.Status {
		return fmt.Errorf("%w: status %s, recorded %s", ErrCorruptJournal, prepared.Status, rec.Status)
	}
	if prepared.Voter != rec.Voter {
		return fmt.Errorf("%w: voter %q, recorded %q", ErrCorruptJournal, prepared.Voter, rec.Voter)
	}
	if !sameProposal(prepared.ProposalID, rec.ProposalID) {
		return fmt.Errorf("%w: proposal id mismatch", ErrCorruptJournal)
	}
	if prepared.VoteCount != rec.VoteCount {
		return fmt.Errorf("%w: vote count %d, recorded %d", ErrCorruptJournal, prepared.VoteCount, rec.VoteCount)
	}
	return nil
}

func sameProposal(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
