package inventory

import (
	"context"

	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura sobre el ledger y el log de
// movimientos. Cada lectura va al almacén de registro: no hay caché de saldos
// en memoria entre requests.
type StockQueryUseCase struct {
	stockRepo repository.StockLevelRepository
	movRepo   repository.InventoryMovementRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(stockRepo repository.StockLevelRepository, movRepo repository.InventoryMovementRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// GetStock saldos actuales de todos los productos en una ubicación.
func (uc *StockQueryUseCase) GetStock(_ context.Context, tenantID, locationType, locationID string) ([]*entity.StockLevel, error) {
	if !entity.ValidLocationType(locationType) || locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.ListByLocation(tenantID, entity.LocationRef{Type: locationType, ID: locationID})
}

// ListMovements histórico de movimientos con filtros opcionales.
func (uc *StockQueryUseCase) ListMovements(_ context.Context, tenantID string, filter repository.MovementFilter, limit, offset int) ([]*entity.InventoryMovement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movRepo.List(tenantID, filter, limit, offset)
}
