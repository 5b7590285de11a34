package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stec/tenet/internal/database"
	"github.com/stec/tenet/internal/models"
	"github.com/stec/tenet/internal/repositories"
	"github.com/stec/tenet/internal/services"
)

// newTestService wires the full facade against a private in-memory
// SQLite database.
func newTestService(t *testing.T) *services.TenetService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return services.NewTenetService(
		repositories.NewGORMTenantRepository(db),
		repositories.NewGORMUserRepository(db),
		repositories.NewGORMApplicationRepository(db),
		repositories.NewGORMStorageRepository(db),
		repositories.NewGORMRoleRepository(db),
		nil,
	)
}

func TestAddUserThenGetUserByIDPreservesFields(t *testing.T) {
	svc := newTestService(t)

	tenant, err := svc.CreateTenant("Acme")
	require.NoError(t, err)

	msg := models.UserMessage{
		Email:          "a@acme.com",
		EmailVerified:  true,
		Password:       "secure_password123",
		EncryptionMode: models.EncryptionModeArgon2,
		FullName:       "Ada Acme",
	}
	created, err := tenant.AddUser(msg)
	require.NoError(t, err)

	loaded, err := tenant.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, msg.Email, loaded.Email)
	assert.Equal(t, msg.EmailVerified, loaded.EmailVerified)
	assert.Equal(t, msg.EncryptionMode, loaded.EncryptionMode)
	assert.Equal(t, msg.FullName, loaded.FullName)
	require.NotNil(t, loaded.TenantID)
	assert.Equal(t, tenant.ID, *loaded.TenantID)
	assert.NotEqual(t, msg.Password, loaded.Password, "stored password must be the hash")
}

func TestVerifyUserPasswordThroughAggregate(t *testing.T) {
	svc := newTestService(t)

	tenant, err := svc.CreateTenant("Password Test Tenant")
	require.NoError(t, err)

	user, err := tenant.AddUser(models.UserMessage{
		Email:          "password.test@example.com",
		EmailVerified:  true,
		Password:       "secure_password123",
		EncryptionMode: models.EncryptionModeArgon2,
		FullName:       "Password Tester",
	})
	require.NoError(t, err)

	ok, err := tenant.VerifyUserPassword(user.ID, "secure_password123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tenant.VerifyUserPassword(user.ID, "wrong_password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContainsUsernameIsTenantScoped(t *testing.T) {
	svc := newTestService(t)

	acme, err := svc.CreateTenant("Acme")
	require.NoError(t, err)
	other, err := svc.CreateTenant("Other")
	require.NoError(t, err)

	_, err = acme.AddUser(models.UserMessage{
		Email:          "a@acme.com",
		EmailVerified:  true,
		Password:       "secure_password123",
		EncryptionMode: models.EncryptionModeArgon2,
		FullName:       "Ada Acme",
	})
	require.NoError(t, err)

	assert.True(t, acme.ContainsUsername("a@acme.com"))
	assert.False(t, other.ContainsUsername("a@acme.com"))
}

func TestCrossTenantLookupsFail(t *testing.T) {
	svc := newTestService(t)

	acme, err := svc.CreateTenant("Acme")
	require.NoError(t, err)
	other, err := svc.CreateTenant("Other")
	require.NoError(t, err)

	user, err := acme.AddUser(models.UserMessage{
		Email:          "iso@acme.com",
		EmailVerified:  true,
		Password:       "secure_password123",
		EncryptionMode: models.EncryptionModeArgon2,
		FullName:       "Iso",
	})
	require.NoError(t, err)

	_, err = other.GetUserByID(user.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestApplicationReferencesStorage(t *testing.T) {
	svc := newTestService(t)

	tenant, err := svc.CreateTenant("TenantTitle")
	require.NoError(t, err)

	storage, err := tenant.AddStorage(models.NewJSONFileStorage("some_path", tenant.ID))
	require.NoError(t, err)

	application, err := tenant.AddApplication(models.ApplicationMessage{
		ApplicationType: models.ApplicationTypeShop,
		StorageID:       &storage.ID,
	})
	require.NoError(t, err)

	loaded, err := tenant.GetApplicationByID(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationTypeShop, loaded.ApplicationType)
	require.NotNil(t, loaded.StorageID)
	assert.Equal(t, storage.ID, *loaded.StorageID)

	loadedStorage, err := tenant.GetStorageByID(storage.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StorageTypeJSONFile, loadedStorage.StorageType)
}

func TestRolesForUserIncludeBothAssignedTypes(t *testing.T) {
	svc := newTestService(t)

	tenant, err := svc.CreateTenant("Role Test Tenant")
	require.NoError(t, err)

	storage, err := tenant.AddStorage(models.NewJSONFileStorage("role_test_path", tenant.ID))
	require.NoError(t, err)
	application, err := tenant.AddApplication(models.ApplicationMessage{
		ApplicationType: models.ApplicationTypeShop,
		StorageID:       &storage.ID,
	})
	require.NoError(t, err)
	user, err := tenant.AddUser(models.UserMessage{
		Email:          "role.test@example.com",
		EmailVerified:  true,
		Password:       "secure_password123",
		EncryptionMode: models.EncryptionModeArgon2,
		FullName:       "Role Tester",
	})
	require.NoError(t, err)

	initial, err := tenant.GetRolesForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, initial)

	for _, roleType := range []models.RoleType{models.RoleTypeAdministrator, models.RoleTypeUser} {
		_, err = tenant.AddRole(models.RoleMessage{
			RoleType:      roleType,
			UserID:        &user.ID,
			ApplicationID: &application.ID,
		})
		require.NoError(t, err)
	}

	held, err := tenant.GetRolesForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, held, 2)
	types := []models.RoleType{held[0].RoleType, held[1].RoleType}
	assert.Contains(t, types, models.RoleTypeAdministrator)
	assert.Contains(t, types, models.RoleTypeUser)
}

func TestDeleteTenantRemovesItFromListing(t *testing.T) {
	svc := newTestService(t)

	tenant, err := svc.CreateTenant("Tenant to Delete")
	require.NoError(t, err)

	before, err := svc.GetTenantIDs()
	require.NoError(t, err)
	assert.Contains(t, before, tenant.ID)

	deleted, err := svc.DeleteTenant(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	after, err := svc.GetTenantIDs()
	require.NoError(t, err)
	assert.NotContains(t, after, tenant.ID)

	_, err = svc.GetTenantByID(tenant.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Deleting a nonexistent tenant reports zero affected rows.
	deleted, err = svc.DeleteTenant(uuid.New())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestSetTenantTitlePersists(t *testing.T) {
	svc := newTestService(t)

	tenant, err := svc.CreateTenant("Initial Title")
	require.NoError(t, err)
	assert.Nil(t, tenant.UpdatedAt)

	updated, err := svc.SetTenantTitle(tenant.ID, "Updated Title")
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.NotNil(t, updated.UpdatedAt)

	fetched, err := svc.GetTenantByID(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", fetched.Title)
}

func TestGetTenantByUsernameResolvesLogin(t *testing.T) {
	svc := newTestService(t)

	tenant, err := svc.CreateTenant("User's Tenant")
	require.NoError(t, err)
	_, err = svc.CreateTenant("Decoy Tenant")
	require.NoError(t, err)

	_, err = tenant.AddUser(models.UserMessage{
		Email:          "test.user@example.com",
		EmailVerified:  true,
		Password:       "password123",
		EncryptionMode: models.EncryptionModeArgon2,
		FullName:       "Test User",
	})
	require.NoError(t, err)

	resolved, err := svc.GetTenantByUsername("test.user@example.com")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, resolved.ID)
	assert.Equal(t, tenant.Title, resolved.Title)

	id, err := svc.GetTenantIDByUsername("test.user@example.com")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, id)

	_, err = svc.GetTenantByUsername("missing@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetUserIDsListsTenantUsers(t *testing.T) {
	svc := newTestService(t)

	tenant, err := svc.CreateTenant("Listing Tenant")
	require.NoError(t, err)

	var want []uuid.UUID
	for _, email := range []string{"one@list.example", "two@list.example"} {
		user, err := tenant.AddUser(models.UserMessage{
			Email:          email,
			EmailVerified:  false,
			Password:       "password123",
			EncryptionMode: models.EncryptionModeArgon2,
			FullName:       "Listed User",
		})
		require.NoError(t, err)
		want = append(want, user.ID)
	}

	ids, err := tenant.GetUserIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, want, ids)
}
