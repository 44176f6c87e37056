// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "errors"

// Error taxonomy for rejected mutations. Every rejection wraps exactly
// one of these sentinels so handlers can map it to a status code with
// errors.Is.
var (
	// ErrNotFound covers unknown polls, options, and participants.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks a rating or veto attempt by a non-creator
	// while the poll is in princess mode.
	ErrForbidden = errors.New("forbidden")

	// ErrPollClosed marks any mutation attempted after reveal.
	ErrPollClosed = errors.New("poll closed")

	// ErrInvalidInput covers blank titles and labels, out-of-range
	// ratings, and malformed vote sets.
	ErrInvalidInput = errors.New("invalid input")
)
