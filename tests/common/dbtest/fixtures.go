//go:build e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, pool *pgxpool.Pool, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	_, err := pool.Exec(context.Background(),
		"INSERT INTO users (id, email, name, password_hash, role) VALUES ($1, $2, $3, $4, $5)",
		userID, email, "Test "+role, passwordHash, role)
	require.NoError(t, err)

	return userID
}

func CreateTestStage(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	processID := uuid.New()
	_, err := pool.Exec(ctx,
		"INSERT INTO processes (id, name, created_by) VALUES ($1, $2, $3)",
		processID, "Engineering Hiring", createdBy)
	require.NoError(t, err)

	stageID := uuid.New()
	_, err = pool.Exec(ctx,
		"INSERT INTO stages (id, process_id, name, sort_order) VALUES ($1, $2, $3, $4)",
		stageID, processID, "Technical Interview", 1)
	require.NoError(t, err)

	return stageID
}

func CreateTestCandidate(t *testing.T, pool *pgxpool.Pool, stageID, createdBy uuid.UUID) uuid.UUID {
	t.Helper()

	candidateID := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO candidates (id, name, email, stage_id, created_by) VALUES ($1, $2, $3, $4, $5)",
		candidateID, "Jordan Lee", "jordan.lee+"+candidateID.String()[:8]+"@example.com", stageID, createdBy)
	require.NoError(t, err)

	return candidateID
}
