package repositories

import (
	"github.com/google/uuid"

	"github.com/stec/tenet/internal/models"
)

// RoleRepository defines the interface for role data access.
type RoleRepository interface {
	FindByTenant(tenantID uuid.UUID) ([]models.Role, error)
	Find(tenantID, roleID uuid.UUID) (*models.Role, error)
	// FindByUser retrieves every role a user holds, scoped to the tenant.
	FindByUser(tenantID, userID uuid.UUID) ([]models.Role, error)
	Create(msg models.RoleMessage) (*models.Role, error)
	Update(id uuid.UUID, msg models.RoleMessage) (*models.Role, error)
	Delete(id uuid.UUID) (int64, error)
}
