package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidDraft       = errors.New("invalid order draft")
	ErrUnknownProduct     = errors.New("unknown product")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrOrderTerminal      = errors.New("order status is terminal")
)
