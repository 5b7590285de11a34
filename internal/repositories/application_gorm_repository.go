package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stec/tenet/internal/models"
)

// GORMApplicationRepository is a GORM implementation of ApplicationRepository.
type GORMApplicationRepository struct {
	db *gorm.DB
}

// NewGORMApplicationRepository creates a new instance of GORMApplicationRepository.
func NewGORMApplicationRepository(db *gorm.DB) *GORMApplicationRepository {
	return &GORMApplicationRepository{
		db: db,
	}
}

// FindByTenant retrieves all applications scoped to the tenant.
func (r *GORMApplicationRepository) FindByTenant(tenantID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.Find(&applications, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, fmt.Errorf("find applications of tenant %s: %w", tenantID, translate(err))
	}
	return applications, nil
}

// Find retrieves a single application matching both the tenant and the
// application id.
func (r *GORMApplicationRepository) Find(tenantID, applicationID uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := r.db.First(&application, "id = ? AND tenant_id = ?", applicationID, tenantID).Error; err != nil {
		return nil, fmt.Errorf("find application %s in tenant %s: %w", applicationID, tenantID, translate(err))
	}
	return &application, nil
}

// Create inserts a new application row mapped from the message.
func (r *GORMApplicationRepository) Create(msg models.ApplicationMessage) (*models.Application, error) {
	application := models.NewApplication(msg)
	if err := r.db.Create(&application).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", translate(err))
	}
	return &application, nil
}

// Update replaces the message fields of the application and stamps UpdatedAt.
func (r *GORMApplicationRepository) Update(id uuid.UUID, msg models.ApplicationMessage) (*models.Application, error) {
	now := time.Now().UTC()
	res := r.db.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"application_type": msg.ApplicationType.String(),
		"storage_id":       msg.StorageID,
		"tenant_id":        msg.TenantID,
		"updated_at":       &now,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update application %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update application %s: %w", id, ErrNotFound)
	}

	var application models.Application
	if err := r.db.First(&application, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload application %s: %w", id, translate(err))
	}
	return &application, nil
}

// Delete removes an application by id. Zero deleted rows is not an error.
func (r *GORMApplicationRepository) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete application %s: %w", id, translate(res.Error))
	}
	return res.RowsAffected, nil
}
