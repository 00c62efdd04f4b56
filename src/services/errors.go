package services

import "errors"

// Sentinel errors for explicit error handling.
// Handlers map these to HTTP status codes using errors.Is()
// instead of string matching.

var (
	// ErrInvalidCredentials indicates login failed (unknown email or wrong
	// password — deliberately the same error for both)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserBanned indicates the account status is BANNED
	ErrUserBanned = errors.New("account banned")

	// ErrUserNotFound indicates the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword indicates the current password did not match on a
	// password change
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrEmailTaken indicates a registration conflict on email
	ErrEmailTaken = errors.New("user already exists")

	// ErrSuperAdminImmutable indicates an attempt to ban or unban the super admin
	ErrSuperAdminImmutable = errors.New("super admin cannot be banned or unbanned")

	// ErrProductNotFound indicates the product does not exist (or, for
	// owner-scoped operations, is not owned by the caller)
	ErrProductNotFound = errors.New("product not found")

	// ErrTokenExpired indicates a structurally valid token past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a malformed token or bad signature
	ErrTokenInvalid = errors.New("invalid token")
)
