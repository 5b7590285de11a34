package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ApplicationType identifies what kind of application a tenant runs.
// Closed enum, currently a single variant, designed for extension.
type ApplicationType string

const (
	ApplicationTypeShop ApplicationType = "Shop"
)

// ParseApplicationType parses the canonical string form of an application
// type. Unknown input is an error, never a silent default.
func ParseApplicationType(s string) (ApplicationType, error) {
	switch s {
	case string(ApplicationTypeShop):
		return ApplicationTypeShop, nil
	}
	return "", fmt.Errorf("%w: application type %q", ErrUnknownEnum, s)
}

// String returns the canonical string form.
func (t ApplicationType) String() string {
	return string(t)
}

// Application represents a configured application of a tenant, optionally
// backed by a storage.
type Application struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	ApplicationType ApplicationType `json:"application_type" gorm:"type:varchar(32);not null"`
	StorageID       *uuid.UUID      `json:"storage_id" gorm:"type:uuid"`
	TenantID        *uuid.UUID      `json:"tenant_id" gorm:"type:uuid;index"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt       *time.Time      `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// TableName returns the table name for the Application model.
func (Application) TableName() string {
	return "applications"
}

// ApplicationMessage carries the fields of an application for create and
// update operations.
type ApplicationMessage struct {
	ApplicationType ApplicationType `json:"application_type" validate:"required"`
	StorageID       *uuid.UUID      `json:"storage_id"`
	TenantID        *uuid.UUID      `json:"tenant_id"`
}

// NewApplication maps a create message to a fresh row.
func NewApplication(m ApplicationMessage) Application {
	return Application{
		ID:              uuid.New(),
		ApplicationType: m.ApplicationType,
		StorageID:       m.StorageID,
		TenantID:        m.TenantID,
		CreatedAt:       time.Now().UTC(),
	}
}
