package service

import "errors"

var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrPitchNotFound  = errors.New("pitch not found")
	ErrPitchNameTaken = errors.New("a pitch with this name already exists")
	ErrNotPitchOwner  = errors.New("pitch belongs to another founder")

	ErrOAuthNotConfigured = errors.New("google oauth is not configured")
	ErrInvalidOAuthState  = errors.New("invalid or expired oauth state")
	ErrOAuthEmailMissing  = errors.New("google account has no email")

	ErrOAuthEmailUnverified = errors.New("google account email is not verified")
)
