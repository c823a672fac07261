// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Session is the result of a successful login against the device cloud.
//
// It is held in memory for the lifetime of the process and passed
// explicitly from the authentication step to the subscription step. The
// access token is opaque: it is neither parsed, persisted nor refreshed.
type Session struct {
	// AccessToken authorizes the event stream subscription.
	AccessToken string `json:"access_token"`

	// TokenType is the OAuth token type reported by the server
	// (normally "bearer").
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime of the token in seconds as reported by the
	// server. Informational only.
	ExpiresIn int64 `json:"expires_in"`
}

// String implements [fmt.Stringer] without revealing the access token, so a
// Session can be logged safely.
func (s Session) String() string {
	return fmt.Sprintf("Session{TokenType: %q, ExpiresIn: %d}", s.TokenType, s.ExpiresIn)
}
