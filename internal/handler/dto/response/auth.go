package response

import (
	"hireflow/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Token  string    `json:"token"`
}

type CurrentUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID: r.UserID,
		Name:   r.Name,
		Email:  r.Email,
		Role:   r.Role,
		Token:  r.Token,
	}
}

func FromCurrentUser(u *commands.CurrentUser) *CurrentUserResponse {
	return &CurrentUserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
