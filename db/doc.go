// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the election
event journal.

# Drivers

Open selects the driver from the configured database type:

	conn, err := db.Open(db.TypeSQLite, "file:election.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

sqlite uses modernc.org/sqlite (pure Go) and postgres uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election: single row holding the admin address
  - election_event: append-only journal, one row per accepted operation

# Journal

Journal implements election.Journal. Each event is stored as JSON next to its
sequence number, kind and actor:

	j := db.NewJournal(conn)
	events, err := j.Load(ctx)
	e, err := election.Restore(admin, events, election.WithJournal(j))

EnsureElection pins the database to one admin so a journal is never replayed
under a different owner.
*/
package db
