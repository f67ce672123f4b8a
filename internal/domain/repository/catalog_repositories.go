package repository

import "github.com/jhoicas/Fieldservice-api/internal/domain/entity"

// WarehouseRepository puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(tenantID, id string) (*entity.Warehouse, error)
	GetByName(tenantID, name string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Warehouse, error)
	Deactivate(tenantID, id string) error
}

// StoreroomRepository puerto de persistencia para Storeroom (DIP).
type StoreroomRepository interface {
	Create(storeroom *entity.Storeroom) error
	GetByID(tenantID, id string) (*entity.Storeroom, error)
	GetByName(tenantID, name string) (*entity.Storeroom, error)
	Update(storeroom *entity.Storeroom) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Storeroom, error)
	Deactivate(tenantID, id string) error
}

// ProductRepository puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(tenantID, id string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByTenant(tenantID string, search string, limit, offset int) ([]*entity.Product, error)
	Deactivate(tenantID, id string) error
}
