package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/propertyhub/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist_JTI(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklisted jti is reported", func(t *testing.T) {
		bl := auth.NewInMemoryTokenBlacklist()
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Hour))

		revoked, err := bl.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)

		revoked, err = bl.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("entry expires with its ttl", func(t *testing.T) {
		bl := auth.NewInMemoryTokenBlacklist()
		require.NoError(t, bl.AddToBlacklist(ctx, "short", time.Millisecond))

		time.Sleep(10 * time.Millisecond)

		revoked, err := bl.IsBlacklisted(ctx, "short")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestInMemoryTokenBlacklist_UserRevocation(t *testing.T) {
	ctx := context.Background()
	bl := auth.NewInMemoryTokenBlacklist()

	old := time.Now().Add(-time.Hour)

	revoked, err := bl.IsUserTokenInvalidated(ctx, "user-1", old)
	require.NoError(t, err)
	assert.False(t, revoked, "no revocation recorded yet")

	require.NoError(t, bl.AddUserTokensToBlacklist(ctx, "user-1", time.Hour))

	tests := []struct {
		name     string
		userID   string
		issuedAt time.Time
		want     bool
	}{
		{"token issued before revocation", "user-1", old, true},
		{"token issued after revocation", "user-1", time.Now().Add(2 * time.Second), false},
		{"other user unaffected", "user-2", old, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bl.IsUserTokenInvalidated(ctx, tt.userID, tt.issuedAt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenBlacklistImplementations(t *testing.T) {
	var _ auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	var _ auth.TokenBlacklist = (*auth.RedisTokenBlacklist)(nil)
}
