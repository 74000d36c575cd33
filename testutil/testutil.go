// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/db"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/models"
)

// TestAdmin is the admin address used by GetTestConfig
const TestAdmin = "0xAdmin"

// SetupTestDB opens a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseType:   db.TypeSQLite,
		DatabaseURL:    ":memory:",
		AdminAddress:   TestAdmin,
		AdminKeySalt:   "test-admin-salt",
		VoterTokenSalt: "test-voter-salt",
	}
}

// QuietLogger discards everything
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestElection creates an election owned by the configured admin
func NewTestElection(t *testing.T, cfg cliparse.Config, opts ...election.Option) *election.Election {
	t.Helper()

	opts = append([]election.Option{election.WithLogger(QuietLogger())}, opts...)
	e, err := election.New(election.Address(cfg.AdminAddress), opts...)
	if err != nil {
		t.Fatalf("Failed to create election: %v", err)
	}
	return e
}

// AdminHeaders returns the headers identifying the admin
func AdminHeaders(cfg cliparse.Config) map[string]string {
	return map[string]string{
		models.HeaderAdminKey: auth.GenerateAdminKey(cfg.AdminAddress, cfg.AdminKeySalt),
	}
}

// VoterHeaders returns the headers identifying a voter
func VoterHeaders(cfg cliparse.Config, address string) map[string]string {
	return map[string]string{
		models.HeaderVoterAddress: address,
		models.HeaderVoterToken:   auth.GenerateVoterToken(address, cfg.VoterTokenSalt),
	}
}

// RegisterTestVoters registers each address directly on the engine
func RegisterTestVoters(t *testing.T, e *election.Election, addresses ...string) {
	t.Helper()

	for _, addr := range addresses {
		if _, err := e.RegisterVoter(context.Background(), e.Admin(), election.Address(addr)); err != nil {
			t.Fatalf("Failed to register test voter %s: %v", addr, err)
		}
	}
}

// SubmitTestProposal submits a proposal directly on the engine and returns its index
func SubmitTestProposal(t *testing.T, e *election.Election, voter, description string) int {
	t.Helper()

	ev, err := e.SubmitProposal(context.Background(), election.Address(voter), description)
	if err != nil {
		t.Fatalf("Failed to submit test proposal: %v", err)
	}
	return *ev.ProposalID
}

// AdvanceTo runs admin transitions until the election reaches status
func AdvanceTo(t *testing.T, e *election.Election, status election.Status) {
	t.Helper()

	ctx := context.Background()
	steps := map[election.Status]func(context.Context, election.Address) (election.Event, error){
		election.RegisteringVoters:            e.OpenProposalRegistration,
		election.ProposalsRegistrationStarted: e.CloseProposalRegistration,
		election.ProposalsRegistrationEnded:   e.OpenVoteSession,
		election.VotingSessionStarted:         e.CloseVoteSession,
		election.VotingSessionEnded:           e.Tally,
	}
	for e.Status() < status {
		step := steps[e.Status()]
		if _, err := step(ctx, e.Admin()); err != nil {
			t.Fatalf("Failed to advance from %s: %v", e.Status(), err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
