package usecase

import (
	"seating-service/internal/domain/user"
	"seating-service/internal/pkg/errs"
	"seating-service/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrAnonymousToken = errs.New("token carries no user id")

// TokenValidator turns a bearer token into the caller's identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	svc *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return jwtTokenValidator{svc: svc}
}

func (v jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.svc.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", ErrAnonymousToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "token role")
	}
	return claims.UserID, role, nil
}
