package repositories

import (
	"github.com/google/uuid"

	"github.com/stec/tenet/internal/models"
)

// TenantRepository defines the interface for tenant data access.
// Tenants are the isolation root, so lookups here take a bare id.
type TenantRepository interface {
	FindAll() ([]models.Tenant, error)
	FindAllIDs() ([]uuid.UUID, error)
	Find(id uuid.UUID) (*models.Tenant, error)
	FindByTitle(title string) (*models.Tenant, error)
	Create(msg models.TenantMessage) (*models.Tenant, error)
	Update(id uuid.UUID, msg models.TenantMessage) (*models.Tenant, error)
	// Delete removes the tenant and all of its users, applications,
	// storages and roles in one transaction. It returns the number of
	// deleted tenant rows; zero means there was nothing to delete.
	Delete(id uuid.UUID) (int64, error)
}
