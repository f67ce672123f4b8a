package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// TenantUseCase alta y consulta de tenants (organizaciones).
type TenantUseCase struct {
	tenantRepo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(tenantRepo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{tenantRepo: tenantRepo}
}

// Create registra un tenant activo.
func (uc *TenantUseCase) Create(name, document string) (*entity.Tenant, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  document,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tenantRepo.Create(tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// GetByID tenant por id.
func (uc *TenantUseCase) GetByID(id string) (*entity.Tenant, error) {
	tenant, err := uc.tenantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return tenant, nil
}

// List tenants registrados.
func (uc *TenantUseCase) List(limit, offset int) ([]*entity.Tenant, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.tenantRepo.List(limit, offset)
}
