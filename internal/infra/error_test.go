//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"hireflow/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unique violation classifies as duplicate key", func(t *testing.T) {
		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		err := infra.WrapRepoErr("failed to create schedule request", dup)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("foreign key violation classifies accordingly", func(t *testing.T) {
		fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		err := infra.WrapRepoErr("failed to attach interviewer", fk)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("anything else is a db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("query failed", errors.New("connection reset"))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("kind survives further wrapping", func(t *testing.T) {
		inner := infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
		outer := errors.Join(errors.New("outer"), inner)
		assert.True(t, infra.IsKind(outer, infra.KindNotFound))
	})
}
