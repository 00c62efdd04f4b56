package models

// UserRole determines which protected routes an account may call
type UserRole string

const (
	// RoleUser is the default role for self-registered accounts
	RoleUser UserRole = "USER"
	// RoleAdmin may moderate accounts and approve products
	RoleAdmin UserRole = "ADMIN"
	// RoleSuperAdmin is the single bootstrap account; it may create admins
	// and can never be banned
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

// IsValid reports whether the role is one of the known roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// UserStatus represents the moderation state of an account
type UserStatus string

const (
	// UserStatusActive indicates the account may authenticate
	UserStatusActive UserStatus = "ACTIVE"
	// UserStatusBanned indicates the account is blocked, including
	// mid-session for previously issued tokens
	UserStatusBanned UserStatus = "BANNED"
)

// IsValid reports whether the status is one of the known statuses
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusBanned
}
