package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stec/tenet/internal/security/password"
)

// EncryptionMode identifies the password hashing scheme of a user record.
// Closed enum with a single current variant, stored as its canonical string.
type EncryptionMode string

const (
	EncryptionModeArgon2 EncryptionMode = "Argon2"
)

// ParseEncryptionMode parses the canonical string form of an encryption
// mode. Unknown input is an error, never a silent default.
func ParseEncryptionMode(s string) (EncryptionMode, error) {
	switch s {
	case string(EncryptionModeArgon2):
		return EncryptionModeArgon2, nil
	}
	return "", fmt.Errorf("%w: encryption mode %q", ErrUnknownEnum, s)
}

// String returns the canonical string form.
func (m EncryptionMode) String() string {
	return string(m)
}

// User represents an account within a tenant. The email doubles as the
// username. Password holds an encoded argon2 hash after persistence,
// never the plaintext.
type User struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email          string         `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	EmailVerified  bool           `json:"email_verified"`
	Password       string         `json:"-" gorm:"type:varchar(255);not null"`
	EncryptionMode EncryptionMode `json:"encryption_mode" gorm:"type:varchar(32);not null"`
	FullName       string         `json:"full_name" gorm:"type:varchar(255)"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt      *time.Time     `json:"updated_at" gorm:"autoUpdateTime:false"`
	TenantID       *uuid.UUID     `json:"tenant_id" gorm:"type:uuid;index"`
}

// TableName returns the table name for the User model.
func (User) TableName() string {
	return "users"
}

// VerifyPassword checks a candidate plaintext against the stored hash.
// A wrong password is a false result; a malformed stored hash is an error.
func (u *User) VerifyPassword(plain string) (bool, error) {
	return password.Verify(plain, u.Password)
}

// UserMessage carries the fields of a user for create and update
// operations. Password is plaintext here; the repository hashes it
// before the row is persisted.
type UserMessage struct {
	Email          string         `json:"email" validate:"required,email"`
	EmailVerified  bool           `json:"email_verified"`
	Password       string         `json:"password" validate:"required,min=6"`
	EncryptionMode EncryptionMode `json:"encryption_mode" validate:"required"`
	FullName       string         `json:"full_name" validate:"required,max=255"`
	TenantID       *uuid.UUID     `json:"tenant_id"`
}

// NewUser maps a create message to a fresh row. The caller is expected to
// replace Password with its encoded hash before inserting.
func NewUser(m UserMessage) User {
	return User{
		ID:             uuid.New(),
		Email:          m.Email,
		EmailVerified:  m.EmailVerified,
		Password:       m.Password,
		EncryptionMode: m.EncryptionMode,
		FullName:       m.FullName,
		CreatedAt:      time.Now().UTC(),
		TenantID:       m.TenantID,
	}
}
