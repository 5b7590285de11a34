package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stec/tenet/internal/models"
)

func TestStorageConstructorsPopulateOnlyRelevantFields(t *testing.T) {
	tenantID := uuid.New()

	t.Run("json file", func(t *testing.T) {
		msg := models.NewJSONFileStorage("/data/shop.json", tenantID)
		assert.Equal(t, models.StorageTypeJSONFile, msg.StorageType)
		require.NotNil(t, msg.Path)
		assert.Equal(t, "/data/shop.json", *msg.Path)
		assert.Nil(t, msg.ConnectionString)
		assert.Nil(t, msg.Schema)
		assert.Nil(t, msg.TablePrefix)
	})

	t.Run("sqlite file", func(t *testing.T) {
		msg := models.NewSqliteStorage("/data/shop.db", tenantID)
		assert.Equal(t, models.StorageTypeSqliteDatabase, msg.StorageType)
		require.NotNil(t, msg.Path)
		assert.Nil(t, msg.ConnectionString)
		assert.Nil(t, msg.Schema)
		assert.Nil(t, msg.TablePrefix)
	})

	t.Run("postgres database", func(t *testing.T) {
		msg := models.NewPostgresDatabaseStorage("postgres://localhost/shop", tenantID)
		assert.Equal(t, models.StorageTypePostgresDatabase, msg.StorageType)
		assert.Nil(t, msg.Path)
		require.NotNil(t, msg.ConnectionString)
		assert.Nil(t, msg.Schema)
		assert.Nil(t, msg.TablePrefix)
	})

	t.Run("postgres schema", func(t *testing.T) {
		msg := models.NewPostgresSchemaStorage("postgres://localhost/shared", "tenant_a", tenantID)
		assert.Equal(t, models.StorageTypePostgresSchema, msg.StorageType)
		assert.Nil(t, msg.Path)
		require.NotNil(t, msg.ConnectionString)
		require.NotNil(t, msg.Schema)
		assert.Equal(t, "tenant_a", *msg.Schema)
		assert.Nil(t, msg.TablePrefix)
	})

	t.Run("postgres table prefix", func(t *testing.T) {
		msg := models.NewPostgresTablePrefixStorage("postgres://localhost/shared", "ta_", tenantID)
		assert.Equal(t, models.StorageTypePostgresTablePrefix, msg.StorageType)
		assert.Nil(t, msg.Path)
		require.NotNil(t, msg.ConnectionString)
		assert.Nil(t, msg.Schema)
		require.NotNil(t, msg.TablePrefix)
		assert.Equal(t, "ta_", *msg.TablePrefix)
	})

	for _, msg := range []models.StorageMessage{
		models.NewJSONFileStorage("p", tenantID),
		models.NewPostgresTablePrefixStorage("c", "px_", tenantID),
	} {
		require.NotNil(t, msg.TenantID)
		assert.Equal(t, tenantID, *msg.TenantID)
	}
}

func TestNewStorageAssignsIdentityAndTimestamps(t *testing.T) {
	msg := models.NewJSONFileStorage("/data/a.json", uuid.New())
	storage := models.NewStorage(msg)

	assert.NotEqual(t, uuid.Nil, storage.ID)
	assert.False(t, storage.CreatedAt.IsZero())
	assert.Nil(t, storage.UpdatedAt, "UpdatedAt must stay nil until the first update")

	other := models.NewStorage(msg)
	assert.NotEqual(t, storage.ID, other.ID)
}

func TestNewTenantAndNewUserMapping(t *testing.T) {
	tenant := models.NewTenant(models.TenantMessage{Title: "Acme"})
	assert.NotEqual(t, uuid.Nil, tenant.ID)
	assert.Equal(t, "Acme", tenant.Title)
	assert.False(t, tenant.CreatedAt.IsZero())
	assert.Nil(t, tenant.UpdatedAt)

	tenantID := tenant.ID
	user := models.NewUser(models.UserMessage{
		Email:          "a@acme.com",
		EmailVerified:  true,
		Password:       "plaintext",
		EncryptionMode: models.EncryptionModeArgon2,
		FullName:       "Ada Acme",
		TenantID:       &tenantID,
	})
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "a@acme.com", user.Email)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, models.EncryptionModeArgon2, user.EncryptionMode)
	assert.Equal(t, "Ada Acme", user.FullName)
	require.NotNil(t, user.TenantID)
	assert.Equal(t, tenantID, *user.TenantID)
	assert.Nil(t, user.UpdatedAt)
}
