package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stec/tenet/internal/models"
)

// GORMRoleRepository is a GORM implementation of RoleRepository.
type GORMRoleRepository struct {
	db *gorm.DB
}

// NewGORMRoleRepository creates a new instance of GORMRoleRepository.
func NewGORMRoleRepository(db *gorm.DB) *GORMRoleRepository {
	return &GORMRoleRepository{
		db: db,
	}
}

// FindByTenant retrieves all roles scoped to the tenant.
func (r *GORMRoleRepository) FindByTenant(tenantID uuid.UUID) ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Find(&roles, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, fmt.Errorf("find roles of tenant %s: %w", tenantID, translate(err))
	}
	return roles, nil
}

// Find retrieves a single role matching both the tenant and the role id.
func (r *GORMRoleRepository) Find(tenantID, roleID uuid.UUID) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, "id = ? AND tenant_id = ?", roleID, tenantID).Error; err != nil {
		return nil, fmt.Errorf("find role %s in tenant %s: %w", roleID, tenantID, translate(err))
	}
	return &role, nil
}

// FindByUser retrieves every role the user holds within the tenant, in no
// particular order.
func (r *GORMRoleRepository) FindByUser(tenantID, userID uuid.UUID) ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Find(&roles, "tenant_id = ? AND user_id = ?", tenantID, userID).Error; err != nil {
		return nil, fmt.Errorf("find roles of user %s in tenant %s: %w", userID, tenantID, translate(err))
	}
	return roles, nil
}

// Create inserts a new role row mapped from the message.
func (r *GORMRoleRepository) Create(msg models.RoleMessage) (*models.Role, error) {
	role := models.NewRole(msg)
	if err := r.db.Create(&role).Error; err != nil {
		return nil, fmt.Errorf("create role: %w", translate(err))
	}
	return &role, nil
}

// Update replaces the message fields of the role and stamps UpdatedAt.
func (r *GORMRoleRepository) Update(id uuid.UUID, msg models.RoleMessage) (*models.Role, error) {
	now := time.Now().UTC()
	res := r.db.Model(&models.Role{}).Where("id = ?", id).Updates(map[string]interface{}{
		"role_type":      msg.RoleType.String(),
		"user_id":        msg.UserID,
		"application_id": msg.ApplicationID,
		"tenant_id":      msg.TenantID,
		"updated_at":     &now,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update role %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update role %s: %w", id, ErrNotFound)
	}

	var role models.Role
	if err := r.db.First(&role, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload role %s: %w", id, translate(err))
	}
	return &role, nil
}

// Delete removes a role by id. Zero deleted rows is not an error.
func (r *GORMRoleRepository) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.Role{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete role %s: %w", id, translate(res.Error))
	}
	return res.RowsAffected, nil
}
