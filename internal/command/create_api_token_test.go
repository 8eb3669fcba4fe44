package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/balancednews/news-feed/internal/datasources/mocks"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAPIToken_Execute(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 500, time.UTC)
	in30Days := time.Date(2025, 3, 31, 9, 0, 0, 0, time.UTC)
	name := "scripts"

	cases := []struct {
		name          string
		req           CreateAPITokenRequest
		wantExpiresAt *time.Time
	}{
		{
			name: "named_without_expiry",
			req:  CreateAPITokenRequest{UserID: "uid-1", Name: &name},
		},
		{
			name:          "expires_in_30_days",
			req:           CreateAPITokenRequest{UserID: "uid-1", ExpiresIn: 30 * 24 * time.Hour},
			wantExpiresAt: &in30Days,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counter := mocks.NewMockUserAPITokenCounter(t)
			creator := mocks.NewMockAPITokenCreator(t)

			var stored domain.APIToken
			counter.EXPECT().CountUserActiveAPITokens(mock.Anything, "uid-1").Return(3, nil)
			creator.EXPECT().
				CreateAPIToken(mock.Anything, mock.Anything).
				Run(func(_ context.Context, token domain.APIToken) { stored = token }).
				Return(nil)

			cmd := NewCreateAPIToken(counter, creator)
			cmd.Now = func() time.Time { return now }

			result, err := cmd.Execute(testContext(), tc.req)
			require.NoError(t, err)

			assert.True(t, domain.IsAPIToken(result.FullToken))
			assert.Equal(t, result.FullToken[:len(domain.APITokenPrefix)+8], result.Token.Prefix)
			assert.Equal(t, domain.APIToken{
				ID:        result.Token.ID,
				UserID:    "uid-1",
				TokenHash: domain.HashAPIToken(result.FullToken),
				Prefix:    result.Token.Prefix,
				Name:      tc.req.Name,
				ExpiresAt: tc.wantExpiresAt,
			}, stored)
			assert.Equal(t, stored, result.Token)
		})
	}
}

func TestCreateAPIToken_Execute_Errors(t *testing.T) {
	cases := []struct {
		name      string
		expiresIn time.Duration
		count     int
		countErr  error
		wantCount bool
		wantErr   error
	}{
		{name: "limit_reached", count: MaxAPITokensPerUser, wantCount: true, wantErr: ErrTokenLimitExceeded},
		{name: "count_error", countErr: errors.New("db down"), wantCount: true},
		{name: "negative_expiry", expiresIn: -time.Hour, wantErr: ErrInvalidTokenExpiry},
		{name: "expiry_too_long", expiresIn: MaxAPITokenLifetime + time.Hour, wantErr: ErrInvalidTokenExpiry},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counter := mocks.NewMockUserAPITokenCounter(t)
			if tc.wantCount {
				counter.EXPECT().CountUserActiveAPITokens(mock.Anything, "uid-1").Return(tc.count, tc.countErr)
			}

			cmd := NewCreateAPIToken(counter, mocks.NewMockAPITokenCreator(t))
			_, err := cmd.Execute(testContext(), CreateAPITokenRequest{UserID: "uid-1", ExpiresIn: tc.expiresIn})
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
