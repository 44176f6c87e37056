// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

Flags take precedence over environment variables; a .env file in the
working directory is loaded into the environment first.

Settings:

  - PORT (-p): server port (default: 8000)
  - ALLOWED_ORIGINS (-origins): comma-separated origins allowed for
    CORS and websocket upgrades (default: http://localhost:5173)
*/
package cliparse
