package readstore

import (
	"context"

	"hireflow/internal/infra"
	"hireflow/internal/infra/db"
	"hireflow/internal/pkg/pgconv"
	"hireflow/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.TeamMemberView, error) {
	const q = `SELECT id, name, email, role, last_login_at, created_at FROM users ORDER BY created_at`

	return r.scanMembers(ctx, q)
}

func (r *UserReadStore) FindByRole(ctx context.Context, role string) ([]*queries.TeamMemberView, error) {
	const q = `SELECT id, name, email, role, last_login_at, created_at FROM users WHERE role = $1 ORDER BY created_at`

	return r.scanMembers(ctx, q, role)
}

func (r *UserReadStore) scanMembers(ctx context.Context, q string, args ...any) ([]*queries.TeamMemberView, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users", err)
	}
	defer rows.Close()

	var views []*queries.TeamMemberView
	for rows.Next() {
		var v queries.TeamMemberView
		var lastLogin pgtype.Timestamptz
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role, &lastLogin, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		v.LastLoginAt = pgconv.TimePtrFromPgtype(lastLogin)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read users", err)
	}

	return views, nil
}
