// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/jitata-seed/internal/platform/sec"
)

/*
TestTokenService_RoundTrip signs and verifies a service role token.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "issuer")
	require.NoError(t, err)

	token, err := service.GenerateToken(sec.RoleServiceRole, time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleServiceRole, claims.Role)
	assert.True(t, claims.Role.CanWrite())
}

/*
TestTokenService_Rejects covers malformed tokens and foreign signers.
*/
func TestTokenService_Rejects(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "issuer")
	require.NoError(t, err)

	other, err := sec.NewTokenService("other-secret", "issuer")
	require.NoError(t, err)
	foreignSecret, err := other.GenerateToken(sec.RoleServiceRole, time.Hour)
	require.NoError(t, err)

	otherIssuer, err := sec.NewTokenService("test-secret", "someone-else")
	require.NoError(t, err)
	foreignIssuer, err := otherIssuer.GenerateToken(sec.RoleServiceRole, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"foreign_secret", foreignSecret},
		{"foreign_issuer", foreignIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "issuer")
	assert.ErrorIs(t, err, sec.ErrEmptySecret)
}

func TestRole(t *testing.T) {
	assert.True(t, sec.RoleAnon.Known())
	assert.False(t, sec.RoleAnon.CanWrite())
	assert.False(t, sec.Role("admin").Known())
}

func TestAPIKeyHash(t *testing.T) {
	hash, err := sec.HashAPIKey("key-123")
	require.NoError(t, err)

	assert.True(t, sec.CheckAPIKey("key-123", hash))
	assert.False(t, sec.CheckAPIKey("key-124", hash))
}
