package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(uuid.New(), "admin", "Alice.W", "Alice@Example.COM", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "alice.w", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, UserStatusActive, u.Status)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.True(t, u.VerifyPassword("secret123"))
	assert.False(t, u.VerifyPassword("wrong1234"))
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser(uuid.New(), "admin", "ab", "", "secret123")
	assert.Error(t, err, "username too short")

	_, err = NewUser(uuid.New(), "admin", "alice", "", "short1")
	assert.Error(t, err, "password too short")

	_, err = NewUser(uuid.New(), "admin", "alice", "", "passwordonly")
	assert.Error(t, err, "password needs a number")

	_, err = NewUser(uuid.New(), "admin", "alice", "not-an-email", "secret123")
	assert.Error(t, err)

	_, err = NewUser(uuid.New(), "admin", "bad user!", "", "secret123")
	assert.Error(t, err)
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser(uuid.New(), "admin", "alice", "", "secret123")
	require.NoError(t, err)

	assert.Error(t, u.ChangePassword("alice", "wrong1234", "newpass456"))
	require.NoError(t, u.ChangePassword("alice", "secret123", "newpass456"))
	assert.True(t, u.VerifyPassword("newpass456"))
	assert.False(t, u.VerifyPassword("secret123"))
}

func TestUser_LockAfterFailedAttempts(t *testing.T) {
	u, err := NewUser(uuid.New(), "admin", "alice", "", "secret123")
	require.NoError(t, err)

	assert.False(t, u.RecordLoginFailure(3, time.Hour))
	assert.False(t, u.RecordLoginFailure(3, time.Hour))
	assert.True(t, u.RecordLoginFailure(3, time.Hour))

	assert.True(t, u.IsLocked())
	assert.False(t, u.CanLogin())

	require.NoError(t, u.Unlock("admin"))
	assert.True(t, u.CanLogin())
	assert.Equal(t, 0, u.FailedAttempts)
}

func TestUser_ExpiredLockDoesNotBlockLogin(t *testing.T) {
	u, err := NewUser(uuid.New(), "admin", "alice", "", "secret123")
	require.NoError(t, err)

	u.RecordLoginFailure(1, -time.Minute)
	assert.False(t, u.IsLocked())
	assert.True(t, u.CanLogin())
}

func TestUser_Deactivate(t *testing.T) {
	u, err := NewUser(uuid.New(), "admin", "alice", "", "secret123")
	require.NoError(t, err)

	require.NoError(t, u.Deactivate("admin"))
	assert.False(t, u.CanLogin())
	assert.Error(t, u.Deactivate("admin"))
}

func TestUser_RecordLoginSuccess(t *testing.T) {
	u, err := NewUser(uuid.New(), "admin", "alice", "", "secret123")
	require.NoError(t, err)
	u.FailedAttempts = 2

	u.RecordLoginSuccess("10.0.0.1")
	assert.Equal(t, 0, u.FailedAttempts)
	assert.Equal(t, "10.0.0.1", u.LastLoginIP)
	require.NotNil(t, u.LastLoginAt)
}
