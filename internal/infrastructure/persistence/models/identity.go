package models

import (
	"time"

	"github.com/finvoice/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User aggregate root.
// PasswordHash never leaves the persistence and domain layers.
type UserModel struct {
	TenantAggregateModel
	Username       string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_tenant_username,priority:2"`
	Email          string     `gorm:"type:varchar(200)"`
	DisplayName    string     `gorm:"type:varchar(200)"`
	PasswordHash   string     `gorm:"type:varchar(200);not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt    *time.Time ``
	LastLoginIP    string     `gorm:"type:varchar(45)"`
	FailedAttempts int        `gorm:"not null;default:0"`
	LockedUntil    *time.Time ``
}

// TableName returns the table name for GORM
func (UserModel) TableName() string { return "users" }

// ToDomain converts the persistence model to a domain User.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Username:            m.Username,
		Email:               m.Email,
		DisplayName:         m.DisplayName,
		PasswordHash:        m.PasswordHash,
		Status:              identity.UserStatus(m.Status),
		LastLoginAt:         m.LastLoginAt,
		LastLoginIP:         m.LastLoginIP,
		FailedAttempts:      m.FailedAttempts,
		LockedUntil:         m.LockedUntil,
	}
}

// UserModelFromDomain converts a domain User to its persistence model.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Username:       u.Username,
		Email:          u.Email,
		DisplayName:    u.DisplayName,
		PasswordHash:   u.PasswordHash,
		Status:         string(u.Status),
		LastLoginAt:    u.LastLoginAt,
		LastLoginIP:    u.LastLoginIP,
		FailedAttempts: u.FailedAttempts,
		LockedUntil:    u.LockedUntil,
	}
	m.FromDomainTenantAggregateRoot(u.TenantAggregateRoot)
	return m
}
