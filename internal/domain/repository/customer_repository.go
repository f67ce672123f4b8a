package repository

import "github.com/jhoicas/Fieldservice-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(tenantID, id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	ListByTenant(tenantID string, search string, limit, offset int) ([]*entity.Customer, error)
}
