// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

var (
	ErrNotAuthorized          = errors.New("caller is not authorized")
	ErrAlreadyRegistered      = errors.New("voter is already registered")
	ErrUnknownVoter           = errors.New("unknown voter")
	ErrNotRegistered          = errors.New("caller is not a registered voter")
	ErrIllegalStateTransition = errors.New("operation not allowed in current workflow status")
	ErrAlreadyVoted           = errors.New("voter has already voted")
	ErrInvalidProposal        = errors.New("invalid proposal")
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotTalliedYet          = errors.New("votes are not tallied yet")
	ErrNoProposals            = errors.New("no proposals")
	ErrCorruptJournal         = errors.New("recorded event does not match election state")
)
