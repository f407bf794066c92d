package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotPending     = errors.New("application is not pending")
	ErrNotRatable     = errors.New("application is not ratable")
	ErrAlreadyRated   = errors.New("application already rated")
	ErrActionInFlight = errors.New("action already in flight")
	ErrInternal       = errors.New("internal error")
)
