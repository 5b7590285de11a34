package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoleType identifies the permission level a user has within an
// application. Closed, ordered enum: Administrator outranks User.
type RoleType string

const (
	RoleTypeAdministrator RoleType = "Administrator"
	RoleTypeUser          RoleType = "User"
)

// ParseRoleType parses the canonical string form of a role type.
// Unknown input is an error, never a silent default.
func ParseRoleType(s string) (RoleType, error) {
	switch s {
	case string(RoleTypeAdministrator):
		return RoleTypeAdministrator, nil
	case string(RoleTypeUser):
		return RoleTypeUser, nil
	}
	return "", fmt.Errorf("%w: role type %q", ErrUnknownEnum, s)
}

// String returns the canonical string form.
func (t RoleType) String() string {
	return string(t)
}

// rank orders role types by permission level.
func (t RoleType) rank() int {
	switch t {
	case RoleTypeAdministrator:
		return 2
	case RoleTypeUser:
		return 1
	}
	return 0
}

// Outranks reports whether t grants a strictly higher permission level
// than other.
func (t RoleType) Outranks(other RoleType) bool {
	return t.rank() > other.rank()
}

// Role states that a user holds a permission level within an application.
// User, application and role all belong to the same tenant; the repository
// layer enforces that by scoping every lookup, not the storage engine.
type Role struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	RoleType      RoleType   `json:"role_type" gorm:"type:varchar(32);not null"`
	UserID        *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	ApplicationID *uuid.UUID `json:"application_id" gorm:"type:uuid;index"`
	TenantID      *uuid.UUID `json:"tenant_id" gorm:"type:uuid;index"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt     *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// TableName returns the table name for the Role model.
func (Role) TableName() string {
	return "roles"
}

// RoleMessage carries the fields of a role for create and update
// operations.
type RoleMessage struct {
	RoleType      RoleType   `json:"role_type" validate:"required"`
	UserID        *uuid.UUID `json:"user_id" validate:"required"`
	ApplicationID *uuid.UUID `json:"application_id" validate:"required"`
	TenantID      *uuid.UUID `json:"tenant_id"`
}

// NewRole maps a create message to a fresh row.
func NewRole(m RoleMessage) Role {
	return Role{
		ID:            uuid.New(),
		RoleType:      m.RoleType,
		UserID:        m.UserID,
		ApplicationID: m.ApplicationID,
		TenantID:      m.TenantID,
		CreatedAt:     time.Now().UTC(),
	}
}
