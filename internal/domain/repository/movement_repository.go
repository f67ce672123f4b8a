package repository

import "github.com/jhoicas/Fieldservice-api/internal/domain/entity"

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID  string
	LocationID string // coincide contra origen o destino
}

// InventoryMovementRepository puerto de persistencia para movimientos (DIP).
// Los movimientos son inmutables: no hay Update ni Delete.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(tenantID, id string) (*entity.InventoryMovement, error)
	List(tenantID string, filter MovementFilter, limit, offset int) ([]*entity.InventoryMovement, error)
}
