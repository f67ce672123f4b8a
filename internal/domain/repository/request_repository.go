package repository

import "github.com/jhoicas/Fieldservice-api/internal/domain/entity"

// InventoryRequestRepository puerto de persistencia para solicitudes (DIP).
type InventoryRequestRepository interface {
	Create(request *entity.InventoryRequest) error
	GetByID(tenantID, id string) (*entity.InventoryRequest, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.InventoryRequest, error)
	Update(request *entity.InventoryRequest) error
}
