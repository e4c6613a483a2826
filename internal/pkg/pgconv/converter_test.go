//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"hireflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtrConversions(t *testing.T) {
	t.Run("invalid values map to nil", func(t *testing.T) {
		assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
		assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
		assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	})

	t.Run("valid values round trip", func(t *testing.T) {
		id := uuid.New()
		got := pgconv.UUIDPtrFromPgtype(pgtype.UUID{Bytes: id, Valid: true})
		require.NotNil(t, got)
		assert.Equal(t, id, *got)

		s := pgconv.StringPtrFromPgtype(pgtype.Text{String: "hello", Valid: true})
		require.NotNil(t, s)
		assert.Equal(t, "hello", *s)

		now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
		ts := pgconv.TimePtrFromPgtype(pgtype.Timestamptz{Time: now, Valid: true})
		require.NotNil(t, ts)
		assert.True(t, now.Equal(*ts))
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("connection reset")))
	assert.False(t, pgconv.IsNoRows(nil))
}
