// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickly-elect API server.

quickly-elect runs a single admin-controlled election: the admin registers
voters, voters submit proposals and cast one vote each, and the admin
tallies the result. Every accepted operation is appended to an event
journal in the database; on startup the election is rebuilt by replaying
that journal.

# Starting the Server

With no database settings the server uses a local sqlite file:

	ADMIN_ADDRESS=0xAdmin ADMIN_KEY_SALT=... VOTER_TOKEN_SALT=... go run .

Or against PostgreSQL with flags:

	go run . -t postgres -d "postgres://..." -admin 0xAdmin

A .env file in the working directory is loaded first (-env selects another
file). Values already in the environment take precedence.

# Configuration

Required settings:

  - ADMIN_ADDRESS (-admin): The address that owns the election
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC
  - VOTER_TOKEN_SALT (-voter-salt): Secret for voter token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default for sqlite: file:election.db)
  - BASELINE_PROPOSAL (-baseline): Proposal seeded when registration opens

# Architecture

  - election: The voting engine (workflow, registry, ballots, tally, replay)
  - handlers: HTTP request handlers over the engine
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Admin key and voter token generation and validation
  - db: Schema, event journal, admin pinning
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
