package repository

import (
	"context"

	"hireflow/internal/domain/user"
	"hireflow/internal/infra"
	"hireflow/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	const q = `INSERT INTO users (id, email, name, password_hash, role, created_at)
	    VALUES ($1,$2,$3,$4,$5,$6)`

	_, err := dbtx.Exec(ctx, q,
		u.ID(), u.Email(), u.Name(), u.PasswordHash(), u.Role().String(), u.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}

	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	const q = `UPDATE users SET last_login_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}
