package usecase

import (
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/shared"
)

// TokenValidator turns an access token into the calling Actor.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	return shared.Actor{
		UserID:   claims.UserID,
		Username: claims.Username,
		Roles:    claims.Roles,
	}, nil
}
