// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides authentication and token generation utilities.

# Admin Key

The admin key is an HMAC-SHA256 of the configured admin address:

	adminKey := auth.GenerateAdminKey(adminAddress, salt)
	err := auth.ValidateAdminKey(adminAddress, adminKey, salt)

The key is URL-safe base64 encoded without padding. It is deterministic, so
it can be validated without being stored.

# Voter Tokens

Voter tokens are HMACs of the voter address under a separate purpose tag, so
a voter token never validates as an admin key:

	token := auth.GenerateVoterToken(address, salt)
	err := auth.ValidateVoterToken(address, token, salt)

The admin receives the token when registering the voter and passes it on.

# ID Generation

Random hex IDs for request correlation:

	id, err := auth.GenerateID(8)  // 16 hex characters

# IP Hashing

For privacy-preserving request logs:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
