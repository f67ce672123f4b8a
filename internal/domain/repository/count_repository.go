package repository

import "github.com/jhoicas/Fieldservice-api/internal/domain/entity"

// InventoryCountRepository puerto de persistencia para contagens (DIP).
type InventoryCountRepository interface {
	Create(count *entity.InventoryCount) error
	GetByID(tenantID, id string) (*entity.InventoryCount, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.InventoryCount, error)
	Update(count *entity.InventoryCount) error
}
