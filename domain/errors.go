package domain

import "errors"

// Sentinel errors shared by services and repositories. Handlers map these
// to HTTP statuses with errors.Is; services may wrap them for detail.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateStand     = errors.New("seller already has a stand")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidTransition  = errors.New("illegal order status transition")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMenuUnavailable    = errors.New("menu is not available")
)
