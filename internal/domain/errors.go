package domain

import "errors"

// Sentinel errors shared by the store, auth and API layers
var (
	ErrValidation         = errors.New("validation failed")     // Malformed or missing input
	ErrUnauthenticated    = errors.New("not authenticated")     // No valid session
	ErrForbidden          = errors.New("admin access required") // Authenticated but not allowed
	ErrNotFound           = errors.New("not found")             // Row does not exist
	ErrConflict           = errors.New("conflict")              // Duplicate username or slNo
	ErrInvalidCredentials = errors.New("invalid credentials")   // Unknown user or bad password
)
