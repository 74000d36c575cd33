// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAdminKey   = errors.New("invalid admin key")
	ErrInvalidVoterToken = errors.New("invalid voter token")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// sign returns URL-safe base64 HMAC-SHA256 of purpose:subject
func sign(purpose, subject, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(purpose + ":" + subject))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// GenerateAdminKey creates an HMAC-based key for the admin address.
// This is deterministic and verifiable
func GenerateAdminKey(adminAddress, salt string) string {
	return sign("admin", adminAddress, salt)
}

// ValidateAdminKey checks if the provided admin key is valid for the admin address
func ValidateAdminKey(adminAddress, adminKey, salt string) error {
	expected := GenerateAdminKey(adminAddress, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateVoterToken creates the token a voter presents with their address.
// It is handed out when the admin registers the address.
func GenerateVoterToken(voterAddress, salt string) string {
	return sign("voter", voterAddress, salt)
}

// ValidateVoterToken checks the token presented for a voter address
func ValidateVoterToken(voterAddress, token, salt string) error {
	if voterAddress == "" {
		return ErrInvalidVoterToken
	}
	expected := GenerateVoterToken(voterAddress, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidVoterToken
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
