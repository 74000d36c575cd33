// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default for sqlite: file:election.db)
  - AdminAddress: Identity allowed to drive the election (required)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - VoterTokenSalt: Secret for voter token HMAC (required)
  - BaselineProposal: Seeded proposal 0 description (optional)
  - EnvFile: Dotenv file read before the environment (default: .env)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-admin        Admin address
	-baseline     Baseline proposal description
	-admin-salt   Admin key salt
	-voter-salt   Voter token salt
	-env          Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	ADMIN_ADDRESS     → -admin
	BASELINE_PROPOSAL → -baseline
	ADMIN_KEY_SALT    → -admin-salt
	VOTER_TOKEN_SALT  → -voter-salt

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(engine, cfg)
*/
package cliparse
