package commands

import (
	"context"
	"log/slog"

	"hireflow/internal/domain/user"
	reqdto "hireflow/internal/handler/dto/request"
	"hireflow/internal/infra"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/pkg/password"
	"hireflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   string
	Token  string
}

type CurrentUser struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*CurrentUser, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same sentinel as a bad password so callers cannot probe emails.
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate session token")
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", snap.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID: snap.ID,
		Name:   snap.Name,
		Email:  snap.Email,
		Role:   snap.Role,
		Token:  token,
	}, nil
}

func (a *authCommandsImpl) Me(ctx context.Context, userID uuid.UUID) (*CurrentUser, error) {
	snap, err := a.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CurrentUser{
		ID:    snap.ID,
		Name:  snap.Name,
		Email: snap.Email,
		Role:  snap.Role,
	}, nil
}
