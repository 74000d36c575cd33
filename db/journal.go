// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-elect/election"
)

var ErrAdminMismatch = errors.New("database belongs to a different admin")

// Journal stores election events in the election_event table.
type Journal struct {
	db *sql.DB
}

func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

// Append inserts ev. The seq primary key rejects a second event with the
// same sequence number.
func (j *Journal) Append(ctx context.Context, ev election.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event %d: %w", ev.Seq, err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO election_event (seq, event_id, kind, actor, payload, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, int64(ev.Seq), ev.ID, string(ev.Kind), string(ev.Actor), string(payload), ev.At)
	if err != nil {
		return fmt.Errorf("failed to insert event %d: %w", ev.Seq, err)
	}
	return nil
}

// Load returns every recorded event in sequence order.
func (j *Journal) Load(ctx context.Context) ([]election.Event, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT payload FROM election_event ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []election.Event{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		var ev election.Event
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}

// EnsureElection records admin as the owner of this database on first use
// and refuses a different admin afterwards.
func EnsureElection(ctx context.Context, db *sql.DB, admin election.Address) error {
	var existing string
	err := db.QueryRowContext(ctx, `SELECT admin FROM election WHERE id = 1`).Scan(&existing)
	if err == sql.ErrNoRows {
		_, err = db.ExecContext(ctx, `
			INSERT INTO election (id, admin, created_at)
			VALUES (1, $1, $2)
		`, string(admin), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to record election admin: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to query election: %w", err)
	}

	if existing != string(admin) {
		return fmt.Errorf("%w: recorded %s, configured %s", ErrAdminMismatch, existing, admin)
	}
	return nil
}
