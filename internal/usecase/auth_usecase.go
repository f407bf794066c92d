package usecase

import (
	"context"
	"errors"
	"strings"

	"innosphere/internal/infrastructure/backend"
	"innosphere/internal/ledger"
	"innosphere/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (uuid.UUID, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, workerID uuid.UUID) error
}

// Auth verifies credentials against the core API and mints gateway session
// tokens. No credential is ever stored here.
type Auth struct {
	api   backend.AuthAPI
	jwt   jwt.Service
	rated ledger.Ledger
}

func NewAuthUsecase(api backend.AuthAPI, jwtSvc jwt.Service, rated ledger.Ledger) *Auth {
	return &Auth{api: api, jwt: jwtSvc, rated: rated}
}

func (u *Auth) Login(ctx context.Context, email, password string) (uuid.UUID, string, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return uuid.Nil, "", "", ErrInvalidInput
	}

	workerID, err := u.api.VerifyCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return uuid.Nil, "", "", ErrInvalidCredentials
		}
		return uuid.Nil, "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(workerID, email)
	if err != nil {
		return uuid.Nil, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(workerID)
	if err != nil {
		return uuid.Nil, "", "", ErrInternal
	}
	return workerID, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	access, err := u.jwt.GenerateAccessToken(claims.WorkerID, claims.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(claims.WorkerID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

// Logout drops the locally held rated set for the worker. The file ledger
// honors this; the account-scoped Postgres ledger keeps its rows.
func (u *Auth) Logout(ctx context.Context, workerID uuid.UUID) error {
	if u.rated == nil {
		return nil
	}
	return u.rated.Clear(ctx, workerID)
}
