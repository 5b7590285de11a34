package repositories

import (
	"github.com/google/uuid"

	"github.com/stec/tenet/internal/models"
)

// UserRepository defines the interface for user data access. Every lookup
// except FindByEmail is bound to a tenant; an id alone is never enough to
// retrieve a record.
type UserRepository interface {
	FindByTenant(tenantID uuid.UUID) ([]models.User, error)
	Find(tenantID, userID uuid.UUID) (*models.User, error)
	// FindByEmail is the one global lookup. It resolves which tenant a
	// login belongs to.
	FindByEmail(email string) (*models.User, error)
	FindByTenantAndEmail(tenantID uuid.UUID, email string) (*models.User, error)
	// Create hashes the plaintext password of the message before the row
	// is inserted; the stored password is always an encoded hash.
	Create(msg models.UserMessage) (*models.User, error)
	Update(id uuid.UUID, msg models.UserMessage) (*models.User, error)
	Delete(id uuid.UUID) (int64, error)
}
