//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour, time.Hour)

	t.Run("round trips user id and role", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, user.RoleRecruiter)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, user.RoleRecruiter.String(), claims.Role)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour, time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute, time.Hour)
		token, err := expired.GenerateToken(uuid.New(), user.RoleRecruiter)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestPublicLinkToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour, time.Hour)

	t.Run("round trips candidate and schedule request ids", func(t *testing.T) {
		candidateID := uuid.New()
		requestID := uuid.New()
		token, err := svc.GeneratePublicLinkToken(candidateID, requestID)
		require.NoError(t, err)

		claims, err := svc.ValidatePublicLinkToken(token)
		require.NoError(t, err)
		assert.Equal(t, candidateID, claims.CandidateID)
		assert.Equal(t, requestID, claims.ScheduleRequestID)
	})

	t.Run("a session token is not a schedule link", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleRecruiter)
		require.NoError(t, err)

		_, err = svc.ValidatePublicLinkToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
