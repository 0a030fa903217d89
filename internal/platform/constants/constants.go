// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package constants provides centralized, immutable values for the platform.

It defines default timeouts, rate limits, and cross-cutting keys that are
shared between layers, keeping magic strings and numbers out of business
logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "riwaya-api"
	AppVersion = "0.1.0-dev"
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

	// ShutdownTimeout is how long in-flight requests get to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often idle IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "riwaya.app"

	// AccessTokenTTL is the lifetime of an issued access token.
	AccessTokenTTL = 30 * 24 * time.Hour

	// SessionTTL bounds how long a login session record lives in Redis.
	SessionTTL = 30 * 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Uploads

const (
	// MaxUploadBytes caps multipart uploads (covers, avatars, generic files).
	MaxUploadBytes = 10 << 20
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession = "auth:session:"
)

// # JSON Field Identifiers

const (
	FieldMessage    = "message"
	FieldStatusCode = "statusCode"
	FieldData       = "data"
	FieldPagination = "pagination"
	FieldCode       = "code"
	FieldDetails    = "details"
)
