package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stec/tenet/internal/models"
)

// GORMStorageRepository is a GORM implementation of StorageRepository.
type GORMStorageRepository struct {
	db *gorm.DB
}

// NewGORMStorageRepository creates a new instance of GORMStorageRepository.
func NewGORMStorageRepository(db *gorm.DB) *GORMStorageRepository {
	return &GORMStorageRepository{
		db: db,
	}
}

// FindByTenant retrieves all storages scoped to the tenant.
func (r *GORMStorageRepository) FindByTenant(tenantID uuid.UUID) ([]models.Storage, error) {
	var storages []models.Storage
	if err := r.db.Find(&storages, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, fmt.Errorf("find storages of tenant %s: %w", tenantID, translate(err))
	}
	return storages, nil
}

// Find retrieves a single storage matching both the tenant and the
// storage id.
func (r *GORMStorageRepository) Find(tenantID, storageID uuid.UUID) (*models.Storage, error) {
	var storage models.Storage
	if err := r.db.First(&storage, "id = ? AND tenant_id = ?", storageID, tenantID).Error; err != nil {
		return nil, fmt.Errorf("find storage %s in tenant %s: %w", storageID, tenantID, translate(err))
	}
	return &storage, nil
}

// Create inserts a new storage row mapped from the message.
func (r *GORMStorageRepository) Create(msg models.StorageMessage) (*models.Storage, error) {
	storage := models.NewStorage(msg)
	if err := r.db.Create(&storage).Error; err != nil {
		return nil, fmt.Errorf("create storage: %w", translate(err))
	}
	return &storage, nil
}

// Update replaces the message fields of the storage and stamps UpdatedAt.
// Fields irrelevant to the storage type are written as NULL, not as empty
// strings.
func (r *GORMStorageRepository) Update(id uuid.UUID, msg models.StorageMessage) (*models.Storage, error) {
	now := time.Now().UTC()
	res := r.db.Model(&models.Storage{}).Where("id = ?", id).Updates(map[string]interface{}{
		"storage_type":      msg.StorageType.String(),
		"path":              msg.Path,
		"connection_string": msg.ConnectionString,
		"schema":            msg.Schema,
		"table_prefix":      msg.TablePrefix,
		"tenant_id":         msg.TenantID,
		"updated_at":        &now,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update storage %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update storage %s: %w", id, ErrNotFound)
	}

	var storage models.Storage
	if err := r.db.First(&storage, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload storage %s: %w", id, translate(err))
	}
	return &storage, nil
}

// Delete removes a storage by id. Zero deleted rows is not an error.
func (r *GORMStorageRepository) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.Storage{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete storage %s: %w", id, translate(res.Error))
	}
	return res.RowsAffected, nil
}
