package usecase

import (
	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides session token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

// ScheduleLinkValidator resolves a candidate-facing schedule link token to
// the candidate and schedule request it was issued for.
type ScheduleLinkValidator interface {
	ValidateScheduleLink(tokenString string) (candidateID, scheduleRequestID uuid.UUID, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}

type scheduleLinkValidatorImpl struct {
	jwtService *jwt.Service
}

func NewScheduleLinkValidator(jwtService *jwt.Service) ScheduleLinkValidator {
	return &scheduleLinkValidatorImpl{
		jwtService: jwtService,
	}
}

func (v *scheduleLinkValidatorImpl) ValidateScheduleLink(tokenString string) (uuid.UUID, uuid.UUID, error) {
	claims, err := v.jwtService.ValidatePublicLinkToken(tokenString)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return claims.CandidateID, claims.ScheduleRequestID, nil
}
