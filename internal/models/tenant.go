package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is the root of isolation. Every user, application, storage and
// role belongs to exactly one tenant.
type Tenant struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string     `json:"title" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// TableName returns the table name for the Tenant model.
func (Tenant) TableName() string {
	return "tenants"
}

// TenantMessage carries the mutable fields of a tenant for create and
// update operations.
type TenantMessage struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

// NewTenant maps a create message to a fresh row. The id and creation
// timestamp are assigned here; UpdatedAt stays nil until the first update.
func NewTenant(m TenantMessage) Tenant {
	return Tenant{
		ID:        uuid.New(),
		Title:     m.Title,
		CreatedAt: time.Now().UTC(),
	}
}
