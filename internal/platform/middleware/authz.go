// Copyright (c) 2026 Riwaya. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/riwaya/riwaya/internal/platform/ctxutil"
	"github.com/riwaya/riwaya/internal/platform/sec"
)

// TokenVerifier validates a raw bearer token into claims.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// SessionChecker reports whether a login session is still live. A token that
// verifies cryptographically is rejected once its session has been revoked.
type SessionChecker interface {
	SessionExists(ctx context.Context, userID string) (bool, error)
}

// Authenticate extracts the bearer token, verifies it and, when valid, stores
// the claims in the request context. Requests without a token pass through
// anonymously; route-level guards decide whether that is acceptable.
func Authenticate(verifier TokenVerifier, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization header")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}

			if sessions != nil {
				live, err := sessions.SessionExists(request.Context(), claims.UserID)
				if err != nil || !live {
					writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Session expired")
					return
				}
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that did not authenticate.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if ctxutil.GetAuthUser(request.Context()) == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// RequireRole rejects authenticated users below the given role.
func RequireRole(minimum sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}
			if !sec.UserRole(claims.Role).AtLeast(minimum) {
				writeError(writer, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
