// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

// adminCaller resolves the admin identity from X-Admin-Key.
// Writes 401 and returns false when the key is missing or wrong.
func adminCaller(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (election.Address, bool) {
	adminKey := r.Header.Get(models.HeaderAdminKey)
	if err := auth.ValidateAdminKey(cfg.AdminAddress, adminKey, cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return "", false
	}
	return election.Address(cfg.AdminAddress), true
}

// voterCaller resolves a voter identity from X-Voter-Address and X-Voter-Token.
func voterCaller(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (election.Address, bool) {
	address := strings.TrimSpace(r.Header.Get(models.HeaderVoterAddress))
	if address == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.HeaderVoterAddress+" header required")
		return "", false
	}
	token := r.Header.Get(models.HeaderVoterToken)
	if err := auth.ValidateVoterToken(address, token, cfg.VoterTokenSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid voter token")
		return "", false
	}
	return election.Address(address), true
}

// electionErrorStatus maps engine errors to HTTP status codes
func electionErrorStatus(err error) int {
	switch {
	case errors.Is(err, election.ErrNotAuthorized), errors.Is(err, election.ErrNotRegistered):
		return http.StatusForbidden
	case errors.Is(err, election.ErrUnknownVoter):
		return http.StatusNotFound
	case errors.Is(err, election.ErrInvalidInput), errors.Is(err, election.ErrInvalidProposal):
		return http.StatusBadRequest
	case errors.Is(err, election.ErrAlreadyRegistered),
		errors.Is(err, election.ErrIllegalStateTransition),
		errors.Is(err, election.ErrAlreadyVoted),
		errors.Is(err, election.ErrNotTalliedYet),
		errors.Is(err, election.ErrNoProposals):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeElectionError(w http.ResponseWriter, op string, err error) {
	status := electionErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("election operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, status, "Failed to record election event")
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}
