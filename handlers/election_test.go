// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/models"
	"github.com/danielhkuo/quickly-elect/testutil"
)

func TestRegisterVoter(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e := testutil.NewTestElection(t, cfg)
	handler := NewElectionHandler(e, cfg)

	testutil.RegisterTestVoters(t, e, "0xExisting")

	tests := []struct {
		name           string
		headers        map[string]string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.RegisterVoterResponse)
	}{
		{
			name:           "valid registration",
			headers:        testutil.AdminHeaders(cfg),
			requestBody:    models.RegisterVoterRequest{Address: "0xA1"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.RegisterVoterResponse) {
				if resp.Voter.Address != "0xA1" || !resp.Voter.IsRegistered || resp.Voter.HasVoted {
					t.Errorf("Unexpected voter record: %+v", resp.Voter)
				}
				if err := auth.ValidateVoterToken("0xA1", resp.VoterToken, cfg.VoterTokenSalt); err != nil {
					t.Errorf("Returned voter token does not validate: %v", err)
				}
				if resp.Event.Kind != election.EventVoterRegistered || resp.Event.Voter != "0xA1" {
					t.Errorf("Unexpected event: %+v", resp.Event)
				}

				// Verify voter was created in the engine
				if _, err := e.Voter("0xA1"); err != nil {
					t.Errorf("Voter was not registered: %v", err)
				}
			},
		},
		{
			name:           "missing admin key",
			headers:        nil,
			requestBody:    models.RegisterVoterRequest{Address: "0xA2"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong admin key",
			headers:        map[string]string{models.HeaderAdminKey: "not-the-key"},
			requestBody:    models.RegisterVoterRequest{Address: "0xA2"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "voter token is not an admin key",
			headers:        map[string]string{models.HeaderAdminKey: auth.GenerateVoterToken(cfg.AdminAddress, cfg.VoterTokenSalt)},
			requestBody:    models.RegisterVoterRequest{Address: "0xA2"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "already registered",
			headers:        testutil.AdminHeaders(cfg),
			requestBody:    models.RegisterVoterRequest{Address: "0xExisting"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing address",
			headers:        testutil.AdminHeaders(cfg),
			requestBody:    models.RegisterVoterRequest{Address: ""},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/voters", tt.requestBody, tt.headers)
			w := httptest.NewRecorder()

			handler.RegisterVoter(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil && w.Code == tt.expectedStatus {
				var resp models.RegisterVoterResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}

	t.Run("invalid JSON", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/voters", nil, testutil.AdminHeaders(cfg))
		w := httptest.NewRecorder()

		handler.RegisterVoter(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("registration closed", func(t *testing.T) {
		testutil.AdvanceTo(t, e, election.ProposalsRegistrationStarted)

		req := testutil.MakeRequest("POST", "/voters", models.RegisterVoterRequest{Address: "0xLate"}, testutil.AdminHeaders(cfg))
		w := httptest.NewRecorder()

		handler.RegisterVoter(w, req)

		testutil.AssertStatus(t, w, http.StatusConflict)
	})
}

func TestWorkflowTransitions(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e := testutil.NewTestElection(t, cfg)
	handler := NewElectionHandler(e, cfg)

	testutil.RegisterTestVoters(t, e, "0xA1")

	steps := []struct {
		name     string
		path     string
		call     http.HandlerFunc
		expected election.Status
	}{
		{"open proposals", "/election/proposals/open", handler.OpenProposalRegistration, election.ProposalsRegistrationStarted},
		{"close proposals", "/election/proposals/close", handler.CloseProposalRegistration, election.ProposalsRegistrationEnded},
		{"open voting", "/election/voting/open", handler.OpenVoteSession, election.VotingSessionStarted},
		{"close voting", "/election/voting/close", handler.CloseVoteSession, election.VotingSessionEnded},
	}

	for i, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			// Non-admin callers are rejected before the engine
			req := testutil.MakeRequest("POST", step.path, nil, testutil.VoterHeaders(cfg, "0xA1"))
			w := httptest.NewRecorder()
			step.call(w, req)
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			// Skipping ahead is rejected
			if i+1 < len(steps) {
				next := steps[i+1]
				req = testutil.MakeRequest("POST", next.path, nil, testutil.AdminHeaders(cfg))
				w = httptest.NewRecorder()
				next.call(w, req)
				testutil.AssertStatus(t, w, http.StatusConflict)
			}

			req = testutil.MakeRequest("POST", step.path, nil, testutil.AdminHeaders(cfg))
			w = httptest.NewRecorder()
			step.call(w, req)
			testutil.AssertStatus(t, w, http.StatusOK)

			if step.expected == election.ProposalsRegistrationStarted {
				testutil.SubmitTestProposal(t, e, "0xA1", "Park")
			}

			var resp models.EventResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Status != step.expected {
				t.Errorf("Expected status %s, got %s", step.expected, resp.Status)
			}
			if resp.Event.Status != step.expected {
				t.Errorf("Expected event status %s, got %s", step.expected, resp.Event.Status)
			}

			// Repeating the same transition is illegal
			req = testutil.MakeRequest("POST", step.path, nil, testutil.AdminHeaders(cfg))
			w = httptest.NewRecorder()
			step.call(w, req)
			testutil.AssertStatus(t, w, http.StatusConflict)
		})
	}
}

func TestTally(t *testing.T) {
	cfg := testutil.GetTestConfig()

	t.Run("before voting ends", func(t *testing.T) {
		e := testutil.NewTestElection(t, cfg)
		handler := NewElectionHandler(e, cfg)

		req := testutil.MakeRequest("POST", "/election/tally", nil, testutil.AdminHeaders(cfg))
		w := httptest.NewRecorder()
		handler.Tally(w, req)

		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("proposal registration cannot close empty", func(t *testing.T) {
		e := testutil.NewTestElection(t, cfg)
		handler := NewElectionHandler(e, cfg)
		testutil.AdvanceTo(t, e, election.ProposalsRegistrationStarted)

		req := testutil.MakeRequest("POST", "/election/proposals/close", nil, testutil.AdminHeaders(cfg))
		w := httptest.NewRecorder()
		handler.CloseProposalRegistration(w, req)

		testutil.AssertStatus(t, w, http.StatusConflict)
		if e.Status() != election.ProposalsRegistrationStarted {
			t.Errorf("Expected status unchanged, got %s", e.Status())
		}
	})

	t.Run("winner returned", func(t *testing.T) {
		e := testutil.NewTestElection(t, cfg)
		handler := NewElectionHandler(e, cfg)
		testutil.RegisterTestVoters(t, e, "0xA1", "0xA2", "0xA3")
		testutil.AdvanceTo(t, e, election.ProposalsRegistrationStarted)
		testutil.SubmitTestProposal(t, e, "0xA1", "Park")
		testutil.SubmitTestProposal(t, e, "0xA2", "Library")
		testutil.AdvanceTo(t, e, election.VotingSessionStarted)
		castTestVote(t, e, "0xA1", 1)
		castTestVote(t, e, "0xA2", 1)
		castTestVote(t, e, "0xA3", 0)
		testutil.AdvanceTo(t, e, election.VotingSessionEnded)

		req := testutil.MakeRequest("POST", "/election/tally", nil, testutil.AdminHeaders(cfg))
		w := httptest.NewRecorder()
		handler.Tally(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.TallyResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Winner.ID != 1 || resp.Winner.VoteCount != 2 {
			t.Errorf("Expected proposal 1 with 2 votes, got %+v", resp.Winner)
		}
		if resp.Event.Kind != election.EventVotesTallied {
			t.Errorf("Expected VotesTallied event, got %s", resp.Event.Kind)
		}
	})
}
