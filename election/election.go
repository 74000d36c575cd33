// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Election is the aggregate root. All methods are safe for concurrent use;
// each one holds the aggregate lock for its whole duration.
type Election struct {
	mu sync.RWMutex

	admin     Address
	status    Status
	voters    map[Address]*Voter
	proposals []Proposal
	winner    int // -1 until tallied
	events    []Event

	baseline string
	journal  Journal
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Election)

func WithJournal(j Journal) Option {
	return func(e *Election) { e.journal = j }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) { e.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(e *Election) { e.now = now }
}

// WithBaselineProposal seeds proposal 0 with description when proposal
// registration opens.
func WithBaselineProposal(description string) Option {
	return func(e *Election) { e.baseline = strings.TrimSpace(description) }
}

// New creates an election in RegisteringVoters owned by admin.
func New(admin Address, opts ...Option) (*Election, error) {
	admin = Address(strings.TrimSpace(string(admin)))
	if admin == "" {
		return nil, fmt.Errorf("%w: admin address is required", ErrInvalidInput)
	}
	e := &Election{
		admin:  admin,
		status: RegisteringVoters,
		voters: make(map[Address]*Voter),
		winner: -1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e, nil
}

// execute validates ev against the current state, journals it and applies
// it. Nothing is mutated unless every step succeeds.
func (e *Election) execute(ctx context.Context, ev Event) (Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	prepared, err := e.prepare(ev)
	if err != nil {
		e.logger.Warn("election operation rejected",
			"event", "election_operation_rejected",
			"kind", string(ev.Kind),
			"actor", string(ev.Actor),
			"status", e.status.String(),
			"error", err.Error(),
		)
		return Event{}, err
	}

	prepared.Seq = e.lastSeq() + 1
	prepared.ID = uuid.NewString()
	prepared.At = e.now().UTC()

	if e.journal != nil {
		if err := e.journal.Append(ctx, prepared); err != nil {
			e.logger.Error("election journal append failed",
				"event", "election_journal_append_failed",
				"kind", string(prepared.Kind),
				"seq", prepared.Seq,
				"error", err.Error(),
			)
			return Event{}, fmt.Errorf("journal append: %w", err)
		}
	}

	e.apply(prepared)

	e.logger.Info("election operation accepted",
		"event", logEventName(prepared.Kind),
		"seq", prepared.Seq,
		"actor", string(prepared.Actor),
		"status", prepared.Status.String(),
	)
	return copyEvent(prepared), nil
}

func (e *Election) lastSeq() uint64 {
	if len(e.events) == 0 {
		return 0
	}
	return e.events[len(e.events)-1].Seq
}

// Admin returns the fixed owner identity.
func (e *Election) Admin() Address {
	return e.admin
}

// Status returns the current workflow status.
func (e *Election) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

// Voter looks up a voter record. Any caller may query.
func (e *Election) Voter(addr Address) (Voter, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.voters[addr]
	if !ok {
		return Voter{}, fmt.Errorf("%w: %s", ErrUnknownVoter, addr)
	}
	return copyVoter(v), nil
}

// Proposals returns the proposals in index order.
func (e *Election) Proposals() []Proposal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Proposal, len(e.proposals))
	copy(out, e.proposals)
	return out
}

func (e *Election) Proposal(id int) (Proposal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if id < 0 || id >= len(e.proposals) {
		return Proposal{}, fmt.Errorf("%w: %d", ErrInvalidProposal, id)
	}
	return e.proposals[id], nil
}

// WinningProposal returns the tallied winner.
func (e *Election) WinningProposal() (Proposal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.status != VotesTallied {
		return Proposal{}, fmt.Errorf("%w: status is %s", ErrNotTalliedYet, e.status)
	}
	return e.proposals[e.winner], nil
}

// Events returns recorded events with a sequence number greater than after.
func (e *Election) Events(after uint64) []Event {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := []Event{}
	for _, ev := range e.events {
		if ev.Seq > after {
			out = append(out, copyEvent(ev))
		}
	}
	return out
}

func (e *Election) Summary() Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := Summary{
		Admin:     e.admin,
		Status:    e.status,
		Voters:    len(e.voters),
		Proposals: len(e.proposals),
		LastSeq:   e.lastSeq(),
	}
	for _, p := range e.proposals {
		s.VotesCast += p.VoteCount
	}
	if e.status == VotesTallied {
		s.WinningProposalID = intPtr(e.winner)
	}
	return s
}

func copyVoter(v *Voter) Voter {
	out := *v
	if v.VotedProposalID != nil {
		out.VotedProposalID = intPtr(*v.VotedProposalID)
	}
	return out
}

func copyEvent(ev Event) Event {
	if ev.ProposalID != nil {
		ev.ProposalID = intPtr(*ev.ProposalID)
	}
	return ev
}
