// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: logs request start/completion with method, path, duration
  - CORS: allows cross-origin requests from configured origins, handles
    preflight

# Helpers

  - JSONResponse: writes a JSON response with status code
  - ErrorResponse: writes a standardized error response
  - ParseJSONBody: decodes the request body into a struct
  - OriginAllowed: origin check shared with the websocket upgrader
*/
package middleware
