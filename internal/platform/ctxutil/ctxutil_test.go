// Copyright (c) 2026 Riwaya. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riwaya/riwaya/internal/platform/ctxutil"
	"github.com/riwaya/riwaya/internal/platform/sec"
)

/*
TestContext_RequestID verifies that request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies logger fallback behavior.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()

	// Without an injected logger, the default is returned (never nil).
	assert.NotNil(t, ctxutil.GetLogger(ctx))

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = ctxutil.WithLogger(ctx, custom)
	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies claims injection and the anonymous nil case.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	claims := &sec.AuthClaims{UserID: "user-1", Username: "reader"}
	ctx = ctxutil.WithAuthUser(ctx, claims)

	got := ctxutil.GetAuthUser(ctx)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "reader", got.Username)
}
