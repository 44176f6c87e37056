// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package identity issues opaque participant identifiers. An identity
// is created once (name → id) and passed explicitly on every request;
// the server keeps no other per-user state.
package identity
