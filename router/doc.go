// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the Themis API using Go
1.22+ method patterns.

Routes are grouped by concern: identity, poll lifecycle, voting
operations, reads, and websocket channels. All JSON endpoints are
wrapped with request logging; the two websocket endpoints are not,
since a connection lives for the whole page visit.
*/
package router
