package services

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stec/tenet/internal/models"
)

// Tenant is the aggregate handle for one tenant. It is the only
// sanctioned facade for tenant-scoped operations: every Add stamps the
// owning tenant id into the message before delegating, and every lookup
// is double-scoped by tenant id and entity id. The handle itself is
// stateless; all state lives in the database.
type Tenant struct {
	models.Tenant
	svc *TenetService
}

/* Users */

// AddUser creates a user under this tenant. The message's plaintext
// password is hashed inside the create path.
func (t *Tenant) AddUser(msg models.UserMessage) (*models.User, error) {
	msg.TenantID = &t.ID
	if err := t.svc.validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("validate user: %w", err)
	}

	user, err := t.svc.users.Create(msg)
	if err != nil {
		return nil, err
	}
	t.svc.log.Info("user created",
		zap.String("tenant_id", t.ID.String()),
		zap.String("user_id", user.ID.String()))
	return user, nil
}

// GetUsers retrieves all users of this tenant.
func (t *Tenant) GetUsers() ([]models.User, error) {
	return t.svc.users.FindByTenant(t.ID)
}

// GetUserIDs retrieves the ids of all users of this tenant.
func (t *Tenant) GetUserIDs() ([]uuid.UUID, error) {
	users, err := t.svc.users.FindByTenant(t.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// GetUserByID retrieves one user of this tenant. A user id that exists
// under a different tenant is not found.
func (t *Tenant) GetUserByID(userID uuid.UUID) (*models.User, error) {
	return t.svc.users.Find(t.ID, userID)
}

// DeleteUser removes a user. Zero deleted rows is not an error.
func (t *Tenant) DeleteUser(userID uuid.UUID) (int64, error) {
	return t.svc.users.Delete(userID)
}

// ContainsUsername reports whether a user with the given email exists
// under this tenant.
func (t *Tenant) ContainsUsername(username string) bool {
	_, err := t.svc.users.FindByTenantAndEmail(t.ID, username)
	return err == nil
}

// VerifyUserPassword checks a candidate password for one of this
// tenant's users. A wrong password is a false result, not an error.
func (t *Tenant) VerifyUserPassword(userID uuid.UUID, plain string) (bool, error) {
	user, err := t.svc.users.Find(t.ID, userID)
	if err != nil {
		return false, err
	}
	return user.VerifyPassword(plain)
}

/* Applications */

// AddApplication creates an application under this tenant.
func (t *Tenant) AddApplication(msg models.ApplicationMessage) (*models.Application, error) {
	msg.TenantID = &t.ID
	if err := t.svc.validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("validate application: %w", err)
	}
	return t.svc.applications.Create(msg)
}

// GetApplications retrieves all applications of this tenant.
func (t *Tenant) GetApplications() ([]models.Application, error) {
	return t.svc.applications.FindByTenant(t.ID)
}

// GetApplicationByID retrieves one application of this tenant.
func (t *Tenant) GetApplicationByID(applicationID uuid.UUID) (*models.Application, error) {
	return t.svc.applications.Find(t.ID, applicationID)
}

// DeleteApplication removes an application. Zero deleted rows is not an
// error.
func (t *Tenant) DeleteApplication(applicationID uuid.UUID) (int64, error) {
	return t.svc.applications.Delete(applicationID)
}

/* Storages */

// AddStorage creates a storage under this tenant.
func (t *Tenant) AddStorage(msg models.StorageMessage) (*models.Storage, error) {
	msg.TenantID = &t.ID
	if err := t.svc.validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("validate storage: %w", err)
	}
	return t.svc.storages.Create(msg)
}

// GetStorages retrieves all storages of this tenant.
func (t *Tenant) GetStorages() ([]models.Storage, error) {
	return t.svc.storages.FindByTenant(t.ID)
}

// GetStorageByID retrieves one storage of this tenant.
func (t *Tenant) GetStorageByID(storageID uuid.UUID) (*models.Storage, error) {
	return t.svc.storages.Find(t.ID, storageID)
}

// DeleteStorage removes a storage. Zero deleted rows is not an error.
func (t *Tenant) DeleteStorage(storageID uuid.UUID) (int64, error) {
	return t.svc.storages.Delete(storageID)
}

/* Roles */

// AddRole grants a user a permission level within an application of this
// tenant.
func (t *Tenant) AddRole(msg models.RoleMessage) (*models.Role, error) {
	msg.TenantID = &t.ID
	if err := t.svc.validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("validate role: %w", err)
	}
	return t.svc.roles.Create(msg)
}

// GetRoles retrieves all roles of this tenant.
func (t *Tenant) GetRoles() ([]models.Role, error) {
	return t.svc.roles.FindByTenant(t.ID)
}

// GetRoleByID retrieves one role of this tenant.
func (t *Tenant) GetRoleByID(roleID uuid.UUID) (*models.Role, error) {
	return t.svc.roles.Find(t.ID, roleID)
}

// GetRolesForUser retrieves every role a user holds within this tenant,
// in no particular order.
func (t *Tenant) GetRolesForUser(userID uuid.UUID) ([]models.Role, error) {
	return t.svc.roles.FindByUser(t.ID, userID)
}

// DeleteRole removes a role. Zero deleted rows is not an error.
func (t *Tenant) DeleteRole(roleID uuid.UUID) (int64, error) {
	return t.svc.roles.Delete(roleID)
}
