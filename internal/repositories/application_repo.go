package repositories

import (
	"github.com/google/uuid"

	"github.com/stec/tenet/internal/models"
)

// ApplicationRepository defines the interface for application data access.
type ApplicationRepository interface {
	FindByTenant(tenantID uuid.UUID) ([]models.Application, error)
	Find(tenantID, applicationID uuid.UUID) (*models.Application, error)
	Create(msg models.ApplicationMessage) (*models.Application, error)
	Update(id uuid.UUID, msg models.ApplicationMessage) (*models.Application, error)
	Delete(id uuid.UUID) (int64, error)
}
