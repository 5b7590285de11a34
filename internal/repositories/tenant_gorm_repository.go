package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stec/tenet/internal/models"
)

// GORMTenantRepository is a GORM implementation of TenantRepository.
type GORMTenantRepository struct {
	db *gorm.DB
}

// NewGORMTenantRepository creates a new instance of GORMTenantRepository.
func NewGORMTenantRepository(db *gorm.DB) *GORMTenantRepository {
	return &GORMTenantRepository{
		db: db,
	}
}

// FindAll retrieves all tenants.
func (r *GORMTenantRepository) FindAll() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := r.db.Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("find all tenants: %w", translate(err))
	}
	return tenants, nil
}

// FindAllIDs retrieves the ids of all tenants.
func (r *GORMTenantRepository) FindAllIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.Tenant{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("find tenant ids: %w", translate(err))
	}
	return ids, nil
}

// Find retrieves a single tenant by its id.
func (r *GORMTenantRepository) Find(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("find tenant %s: %w", id, translate(err))
	}
	return &tenant, nil
}

// FindByTitle retrieves the first tenant with the given title.
func (r *GORMTenantRepository) FindByTitle(title string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, "title = ?", title).Error; err != nil {
		return nil, fmt.Errorf("find tenant by title %q: %w", title, translate(err))
	}
	return &tenant, nil
}

// Create inserts a new tenant row mapped from the message.
func (r *GORMTenantRepository) Create(msg models.TenantMessage) (*models.Tenant, error) {
	tenant := models.NewTenant(msg)
	if err := r.db.Create(&tenant).Error; err != nil {
		return nil, fmt.Errorf("create tenant: %w", translate(err))
	}
	return &tenant, nil
}

// Update replaces the message fields of the tenant and stamps UpdatedAt.
func (r *GORMTenantRepository) Update(id uuid.UUID, msg models.TenantMessage) (*models.Tenant, error) {
	now := time.Now().UTC()
	res := r.db.Model(&models.Tenant{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":      msg.Title,
		"updated_at": &now,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update tenant %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update tenant %s: %w", id, ErrNotFound)
	}
	return r.Find(id)
}

// Delete removes the tenant together with every child entity scoped to
// it, inside a single transaction. Zero deleted rows is not an error.
func (r *GORMTenantRepository) Delete(id uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Role{}, "tenant_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Application{}, "tenant_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Storage{}, "tenant_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, "tenant_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Tenant{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete tenant %s: %w", id, translate(err))
	}
	return deleted, nil
}
