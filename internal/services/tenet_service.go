package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stec/tenet/internal/models"
	"github.com/stec/tenet/internal/repositories"
)

// TenetService is the root entry point of the data layer. It manages
// tenants and hands out Tenant aggregates through which all child-entity
// operations run.
type TenetService struct {
	tenants      repositories.TenantRepository
	users        repositories.UserRepository
	applications repositories.ApplicationRepository
	storages     repositories.StorageRepository
	roles        repositories.RoleRepository
	validate     *validator.Validate
	log          *zap.Logger
}

// NewTenetService creates a new TenetService on top of the given
// repositories.
func NewTenetService(
	tenants repositories.TenantRepository,
	users repositories.UserRepository,
	applications repositories.ApplicationRepository,
	storages repositories.StorageRepository,
	roles repositories.RoleRepository,
	log *zap.Logger,
) *TenetService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TenetService{
		tenants:      tenants,
		users:        users,
		applications: applications,
		storages:     storages,
		roles:        roles,
		validate:     validator.New(),
		log:          log,
	}
}

// CreateTenant creates a tenant with the given title and returns its
// aggregate.
func (s *TenetService) CreateTenant(title string) (*Tenant, error) {
	msg := models.TenantMessage{Title: title}
	if err := s.validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("validate tenant: %w", err)
	}

	tenant, err := s.tenants.Create(msg)
	if err != nil {
		return nil, err
	}
	s.log.Info("tenant created", zap.String("tenant_id", tenant.ID.String()))
	return s.wrap(tenant), nil
}

// GetTenants retrieves all tenants.
func (s *TenetService) GetTenants() ([]models.Tenant, error) {
	return s.tenants.FindAll()
}

// GetTenantIDs retrieves the ids of all tenants. Storage failures
// propagate; they are never folded into an empty result.
func (s *TenetService) GetTenantIDs() ([]uuid.UUID, error) {
	return s.tenants.FindAllIDs()
}

// GetTenantByID retrieves a tenant aggregate by id.
func (s *TenetService) GetTenantByID(tenantID uuid.UUID) (*Tenant, error) {
	tenant, err := s.tenants.Find(tenantID)
	if err != nil {
		return nil, err
	}
	return s.wrap(tenant), nil
}

// GetTenantByTitle retrieves the first tenant with the given title.
func (s *TenetService) GetTenantByTitle(title string) (*Tenant, error) {
	tenant, err := s.tenants.FindByTitle(title)
	if err != nil {
		return nil, err
	}
	return s.wrap(tenant), nil
}

// GetTenantByUsername resolves which tenant the user with the given email
// belongs to. This is the login-routing lookup and is deliberately global.
func (s *TenetService) GetTenantByUsername(username string) (*Tenant, error) {
	user, err := s.users.FindByEmail(username)
	if err != nil {
		return nil, err
	}
	if user.TenantID == nil {
		return nil, fmt.Errorf("user %s has no tenant: %w", user.ID, repositories.ErrNotFound)
	}
	return s.GetTenantByID(*user.TenantID)
}

// GetTenantIDByUsername resolves the tenant id for the user with the
// given email.
func (s *TenetService) GetTenantIDByUsername(username string) (uuid.UUID, error) {
	tenant, err := s.GetTenantByUsername(username)
	if err != nil {
		return uuid.Nil, err
	}
	return tenant.ID, nil
}

// SetTenantTitle updates the title of a tenant.
func (s *TenetService) SetTenantTitle(tenantID uuid.UUID, title string) (*Tenant, error) {
	msg := models.TenantMessage{Title: title}
	if err := s.validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("validate tenant: %w", err)
	}

	tenant, err := s.tenants.Update(tenantID, msg)
	if err != nil {
		return nil, err
	}
	return s.wrap(tenant), nil
}

// DeleteTenant removes a tenant and everything scoped to it. It returns
// the number of deleted tenant rows; zero means there was nothing to
// delete.
func (s *TenetService) DeleteTenant(tenantID uuid.UUID) (int64, error) {
	deleted, err := s.tenants.Delete(tenantID)
	if err != nil {
		return 0, err
	}
	s.log.Info("tenant deleted",
		zap.String("tenant_id", tenantID.String()),
		zap.Int64("rows", deleted))
	return deleted, nil
}

// wrap binds a tenant row to the service as an aggregate handle.
func (s *TenetService) wrap(row *models.Tenant) *Tenant {
	return &Tenant{Tenant: *row, svc: s}
}
