package jwt

import (
	"errors"
	"time"

	"hireflow/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// PublicLinkClaims identifies a candidate-facing schedule link. The token is
// the only credential a candidate presents; it resolves to a candidate and the
// schedule request it was issued for.
type PublicLinkClaims struct {
	CandidateID       uuid.UUID `json:"candidate_id"`
	ScheduleRequestID uuid.UUID `json:"schedule_request_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey          []byte
	sessionDuration    time.Duration
	publicLinkDuration time.Duration
}

func NewService(secretKey string, sessionDuration, publicLinkDuration time.Duration) *Service {
	return &Service{
		secretKey:          []byte(secretKey),
		sessionDuration:    sessionDuration,
		publicLinkDuration: publicLinkDuration,
	}
}

func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GeneratePublicLinkToken(candidateID, scheduleRequestID uuid.UUID) (string, error) {
	now := time.Now()
	claims := PublicLinkClaims{
		CandidateID:       candidateID,
		ScheduleRequestID: scheduleRequestID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "schedule_link",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.publicLinkDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidatePublicLinkToken(tokenString string) (*PublicLinkClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PublicLinkClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*PublicLinkClaims)
	if !ok || !token.Valid || claims.Subject != "schedule_link" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return s.secretKey, nil
}
