package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StorageType identifies how a tenant's application data is stored.
// Closed enum stored as its canonical string.
type StorageType string

const (
	StorageTypeJSONFile            StorageType = "JsonFile"
	StorageTypeSqliteDatabase      StorageType = "SqliteDatabase"
	StorageTypePostgresDatabase    StorageType = "PostgreSqlDatabase"
	StorageTypePostgresSchema      StorageType = "PostgreSqlSchema"
	StorageTypePostgresTablePrefix StorageType = "PostgreSqlTablePrefix"
)

// ParseStorageType parses the canonical string form of a storage type.
// Unknown input is an error, never a silent default.
func ParseStorageType(s string) (StorageType, error) {
	switch s {
	case string(StorageTypeJSONFile):
		return StorageTypeJSONFile, nil
	case string(StorageTypeSqliteDatabase):
		return StorageTypeSqliteDatabase, nil
	case string(StorageTypePostgresDatabase):
		return StorageTypePostgresDatabase, nil
	case string(StorageTypePostgresSchema):
		return StorageTypePostgresSchema, nil
	case string(StorageTypePostgresTablePrefix):
		return StorageTypePostgresTablePrefix, nil
	}
	return "", fmt.Errorf("%w: storage type %q", ErrUnknownEnum, s)
}

// String returns the canonical string form.
func (t StorageType) String() string {
	return string(t)
}

// Storage represents where a tenant's application keeps its data. Only the
// fields relevant to the storage type are populated; the rest stay nil.
type Storage struct {
	ID               uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID         *uuid.UUID  `json:"tenant_id" gorm:"type:uuid;index"`
	StorageType      StorageType `json:"storage_type" gorm:"type:varchar(32);not null"`
	Path             *string     `json:"path,omitempty" gorm:"type:text"`
	ConnectionString *string     `json:"connection_string,omitempty" gorm:"type:text"`
	Schema           *string     `json:"schema,omitempty" gorm:"type:text"`
	TablePrefix      *string     `json:"table_prefix,omitempty" gorm:"type:text"`
	CreatedAt        time.Time   `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt        *time.Time  `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// TableName returns the table name for the Storage model.
func (Storage) TableName() string {
	return "storages"
}

// StorageMessage carries the fields of a storage for create and update
// operations. Use the New*Storage constructors to get a message with
// exactly the fields its storage type needs.
type StorageMessage struct {
	StorageType      StorageType `json:"storage_type" validate:"required"`
	Path             *string     `json:"path,omitempty"`
	ConnectionString *string     `json:"connection_string,omitempty"`
	Schema           *string     `json:"schema,omitempty"`
	TablePrefix      *string     `json:"table_prefix,omitempty"`
	TenantID         *uuid.UUID  `json:"tenant_id"`
}

// NewStorage maps a create message to a fresh row.
func NewStorage(m StorageMessage) Storage {
	return Storage{
		ID:               uuid.New(),
		TenantID:         m.TenantID,
		StorageType:      m.StorageType,
		Path:             m.Path,
		ConnectionString: m.ConnectionString,
		Schema:           m.Schema,
		TablePrefix:      m.TablePrefix,
		CreatedAt:        time.Now().UTC(),
	}
}

// NewJSONFileStorage builds a message for a JSON file backed storage.
func NewJSONFileStorage(path string, tenantID uuid.UUID) StorageMessage {
	return StorageMessage{
		StorageType: StorageTypeJSONFile,
		Path:        &path,
		TenantID:    &tenantID,
	}
}

// NewSqliteStorage builds a message for an SQLite file backed storage.
func NewSqliteStorage(path string, tenantID uuid.UUID) StorageMessage {
	return StorageMessage{
		StorageType: StorageTypeSqliteDatabase,
		Path:        &path,
		TenantID:    &tenantID,
	}
}

// NewPostgresDatabaseStorage builds a message for a dedicated PostgreSQL
// database storage.
func NewPostgresDatabaseStorage(connectionString string, tenantID uuid.UUID) StorageMessage {
	return StorageMessage{
		StorageType:      StorageTypePostgresDatabase,
		ConnectionString: &connectionString,
		TenantID:         &tenantID,
	}
}

// NewPostgresSchemaStorage builds a message for a PostgreSQL storage
// isolated by schema.
func NewPostgresSchemaStorage(connectionString, schema string, tenantID uuid.UUID) StorageMessage {
	return StorageMessage{
		StorageType:      StorageTypePostgresSchema,
		ConnectionString: &connectionString,
		Schema:           &schema,
		TenantID:         &tenantID,
	}
}

// NewPostgresTablePrefixStorage builds a message for a PostgreSQL storage
// isolated by table prefix.
func NewPostgresTablePrefixStorage(connectionString, tablePrefix string, tenantID uuid.UUID) StorageMessage {
	return StorageMessage{
		StorageType:      StorageTypePostgresTablePrefix,
		ConnectionString: &connectionString,
		TablePrefix:      &tablePrefix,
		TenantID:         &tenantID,
	}
}
