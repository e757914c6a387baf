package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user account.
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked"
	UserStatusDeactivated UserStatus = "deactivated"
)

const bcryptCost = 12

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// User is the aggregate root for an operator account.
type User struct {
	shared.TenantAggregateRoot
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"display_name"`
	PasswordHash   string     `json:"-"`
	Status         UserStatus `json:"status"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP    string     `json:"last_login_ip,omitempty"`
	FailedAttempts int        `json:"-"`
	LockedUntil    *time.Time `json:"-"`
}

// NewUser creates an active user with a bcrypt password hash.
func NewUser(tenantID uuid.UUID, actor, username, email, password string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if email != "" && !emailRegex.MatchString(email) {
		return nil, shared.NewValidationError("invalid email format")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewInternalError("hash password", err)
	}

	return &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		Username:            strings.ToLower(strings.TrimSpace(username)),
		Email:               strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:        string(hash),
		Status:              UserStatusActive,
	}, nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword verifies the current password before setting a new one.
func (u *User) ChangePassword(actor, oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewValidationError("current password is incorrect")
	}
	return u.SetPassword(actor, newPassword)
}

// SetPassword sets a new password without checking the old one (admin reset).
func (u *User) SetPassword(actor, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return shared.NewInternalError("hash password", err)
	}
	u.PasswordHash = string(hash)
	u.Touch(actor)
	return nil
}

// SetProfile updates the display name and email.
func (u *User) SetProfile(actor, displayName, email string) error {
	if email != "" && !emailRegex.MatchString(email) {
		return shared.NewValidationError("invalid email format")
	}
	u.DisplayName = strings.TrimSpace(displayName)
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.Touch(actor)
	return nil
}

// RecordLoginSuccess resets the failure counter and stamps the login.
func (u *User) RecordLoginSuccess(ip string) {
	now := time.Now()
	u.LastLoginAt = &now
	u.LastLoginIP = ip
	u.FailedAttempts = 0
	u.Touch(u.Username)
}

// RecordLoginFailure counts a failed attempt and locks the account once
// maxAttempts is reached. Returns true when the account got locked.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.Touch(u.Username)
	if u.FailedAttempts >= maxAttempts {
		until := time.Now().Add(lockDuration)
		u.Status = UserStatusLocked
		u.LockedUntil = &until
		return true
	}
	return false
}

// Unlock clears a lock and reactivates the account.
func (u *User) Unlock(actor string) error {
	if u.Status != UserStatusLocked {
		return shared.NewConflictError("user %s is not locked", u.Username)
	}
	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.Touch(actor)
	return nil
}

// Deactivate disables the account until explicitly reactivated.
func (u *User) Deactivate(actor string) error {
	if u.Status == UserStatusDeactivated {
		return shared.NewConflictError("user %s is already deactivated", u.Username)
	}
	u.Status = UserStatusDeactivated
	u.Touch(actor)
	return nil
}

// IsLocked reports whether the account is currently locked. An expired
// lock no longer counts.
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}
	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}
	return true
}

// CanLogin reports whether the account may authenticate right now.
func (u *User) CanLogin() bool {
	return u.Status != UserStatusDeactivated && !u.IsLocked()
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return shared.NewValidationError("username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewValidationError("username cannot exceed 100 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewValidationError("username can only contain letters, numbers, underscores, hyphens, and dots")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewValidationError("password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewValidationError("password cannot exceed 128 characters")
	}
	hasLetter := strings.IndexFunc(password, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}) >= 0
	hasNumber := strings.IndexFunc(password, func(r rune) bool {
		return r >= '0' && r <= '9'
	}) >= 0
	if !hasLetter || !hasNumber {
		return shared.NewValidationError("password must contain at least one letter and one number")
	}
	return nil
}
