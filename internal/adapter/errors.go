package adapter

import "errors"

var (
	ErrBadRequest        = errors.New("remote rejected request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrNotFound          = errors.New("remote record not found")
	ErrConflict          = errors.New("remote version conflict")
	ErrRemoteUnavailable = errors.New("remote service unavailable")
)
