package repository

import "github.com/jhoicas/Fieldservice-api/internal/domain/entity"

// UserRepository puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndTenant(email, tenantID string) (*entity.User, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
}

// TenantRepository puerto de persistencia para Tenant (DIP).
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	List(limit, offset int) ([]*entity.Tenant, error)
}
