// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values shared by the
seeding tools and the development backend.

Categories:

  - REST Surface: path prefix, header names and default collection names.
  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and roles.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "jitata-seed"
	AppVersion = "0.1.0-dev"
)

// # REST Surface

const (
	// RESTPrefix is the path prefix under which collections are exposed.
	RESTPrefix = "/rest/v1"

	// DefaultSeriesCollection is the collection holding series records.
	DefaultSeriesCollection = "labubu_series"

	// DefaultModelsCollection is the collection holding model records.
	DefaultModelsCollection = "labubu_models"
)

// # Headers

const (
	HeaderAPIKey        = "apikey"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderPrefer        = "Prefer"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"

	// PreferReturnMinimal asks the backend not to echo inserted rows.
	PreferReturnMinimal = "return=minimal"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// MaxBodyBytes caps a single inserted record.
	MaxBodyBytes = 1 << 20
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "jitata-seed"

	// RoleServiceRole may read and write every collection.
	RoleServiceRole = "service_role"

	// RoleAnon may only read.
	RoleAnon = "anon"
)

// # JSON Field Identifiers

const (
	FieldID     = "id"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixCollection = "seed:collection:"
)
