// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/jitata-seed/internal/platform/apperr"
	"github.com/taibuivan/jitata-seed/internal/platform/constants"
	"github.com/taibuivan/jitata-seed/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/jitata-seed/internal/platform/request"
	"github.com/taibuivan/jitata-seed/internal/platform/respond"
	"github.com/taibuivan/jitata-seed/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.Claims, error)
}

// Authenticate requires a verified bearer token on every request.
//
// # Flow
//  1. When apiKeyHash is set, the apikey header must match it under bcrypt.
//  2. Require an 'Authorization: Bearer <token>' header.
//  3. Verify the JWT via [TokenVerifier].
//  4. Inject [*sec.Claims] into the request context for downstream use.
func Authenticate(verifier TokenVerifier, apiKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. API Key ────────────────────────────────────────────────────
			if apiKeyHash != "" && !sec.CheckAPIKey(request.Header.Get(constants.HeaderAPIKey), apiKeyHash) {
				respond.Error(writer, request, apperr.Unauthorized("Invalid API key"))
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Fields(request.Header.Get(constants.HeaderAuthorization))
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Missing or malformed bearer token"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithClaims(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("role", string(claims.Role))))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireWrite rejects requests whose token role may not insert records.
// It must run after [Authenticate].
func RequireWrite() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, err := requestutil.RequiredClaims(request)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}
			if !claims.Role.CanWrite() {
				respond.Error(writer, request, apperr.Forbidden("Role is not allowed to write"))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
