package commands

import (
	"context"

	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/mock_auth.go -package=commands

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// UserFinder reads users outside a transaction.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      UserFinder
	hasher     password.Hasher
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, users UserFinder, hasher password.Hasher, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		users:      users,
		hasher:     hasher,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Register always creates a plain USER; roles are granted through UserCommands.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	return createUser(ctx, a.uow, a.hasher, a.clock, req, []user.Role{user.RoleUser})
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	// Unknown user and wrong password look the same to the caller.
	found, err := a.users.FindByUsername(ctx, credentials.Username().Value())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := a.hasher.Compare(found.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := a.issue(found)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: found.ID(), TokenPair: pair}, nil
}

// RefreshToken reloads the user so role changes and deletions take effect.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	found, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(err, ErrTokenValidation)
		}
		return nil, err
	}
	return a.issue(found)
}

func (a *authCommandsImpl) issue(u *user.User) (*TokenPair, error) {
	roles := user.RoleStrings(u.Roles())
	access, err := a.jwtService.GenerateAccessToken(u.ID(), u.Username().Value(), roles)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwtService.GenerateRefreshToken(u.ID(), u.Username().Value(), roles)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
