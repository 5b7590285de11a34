package repositories

import (
	"github.com/google/uuid"

	"github.com/stec/tenet/internal/models"
)

// StorageRepository defines the interface for storage data access.
type StorageRepository interface {
	FindByTenant(tenantID uuid.UUID) ([]models.Storage, error)
	Find(tenantID, storageID uuid.UUID) (*models.Storage, error)
	Create(msg models.StorageMessage) (*models.Storage, error)
	Update(id uuid.UUID, msg models.StorageMessage) (*models.Storage, error)
	Delete(id uuid.UUID) (int64, error)
}
