package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stec/tenet/internal/models"
	"github.com/stec/tenet/internal/security/password"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// FindByTenant retrieves all users scoped to the tenant. An unknown
// tenant yields an empty result, not an error.
func (r *GORMUserRepository) FindByTenant(tenantID uuid.UUID) ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, fmt.Errorf("find users of tenant %s: %w", tenantID, translate(err))
	}
	return users, nil
}

// Find retrieves a single user matching both the tenant and the user id.
func (r *GORMUserRepository) Find(tenantID, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ? AND tenant_id = ?", userID, tenantID).Error; err != nil {
		return nil, fmt.Errorf("find user %s in tenant %s: %w", userID, tenantID, translate(err))
	}
	return &user, nil
}

// FindByEmail retrieves a user by email across all tenants.
func (r *GORMUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("find user by email %s: %w", email, translate(err))
	}
	return &user, nil
}

// FindByTenantAndEmail retrieves a user by email within one tenant.
func (r *GORMUserRepository) FindByTenantAndEmail(tenantID uuid.UUID, email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "tenant_id = ? AND email = ?", tenantID, email).Error; err != nil {
		return nil, fmt.Errorf("find user by email %s in tenant %s: %w", email, tenantID, translate(err))
	}
	return &user, nil
}

// Create hashes the message password and inserts a new user row. A
// duplicate email surfaces as ErrConflict.
func (r *GORMUserRepository) Create(msg models.UserMessage) (*models.User, error) {
	hash, err := password.Hash(password.Default, msg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(msg)
	user.Password = hash
	if err := r.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", translate(err))
	}
	return &user, nil
}

// Update replaces the message fields of the user and stamps UpdatedAt.
// The password is re-hashed so the stored value never regresses to
// plaintext.
func (r *GORMUserRepository) Update(id uuid.UUID, msg models.UserMessage) (*models.User, error) {
	hash, err := password.Hash(password.Default, msg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email":           msg.Email,
		"email_verified":  msg.EmailVerified,
		"password":        hash,
		"encryption_mode": msg.EncryptionMode.String(),
		"full_name":       msg.FullName,
		"tenant_id":       msg.TenantID,
		"updated_at":      &now,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update user %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update user %s: %w", id, ErrNotFound)
	}

	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload user %s: %w", id, translate(err))
	}
	return &user, nil
}

// Delete removes a user by id. Zero deleted rows is not an error.
func (r *GORMUserRepository) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete user %s: %w", id, translate(res.Error))
	}
	return res.RowsAffected, nil
}
