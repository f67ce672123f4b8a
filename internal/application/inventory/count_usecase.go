package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// CountUseCase gestión de contagens mientras están abiertas: creación con
// snapshot del ledger y captura de cantidades contadas. El cierre vive en
// FinalizeCountUseCase.
type CountUseCase struct {
	countRepo repository.InventoryCountRepository
	stockRepo repository.StockLevelRepository
}

// NewCountUseCase construye el caso de uso.
func NewCountUseCase(countRepo repository.InventoryCountRepository, stockRepo repository.StockLevelRepository) *CountUseCase {
	return &CountUseCase{countRepo: countRepo, stockRepo: stockRepo}
}

// CreateCountInput entrada para abrir una contagem.
type CreateCountInput struct {
	TenantID      string
	Location      entity.LocationRef
	Description   string
	ResponsibleID string
	ProductIDs    []string // productos a contar
}

// Create abre una contagem con CurrentStock tomado del ledger en ese momento.
// Productos sin registro en la ubicación entran con saldo 0.
func (uc *CountUseCase) Create(_ context.Context, in CreateCountInput) (*entity.InventoryCount, error) {
	if in.Description == "" || in.ResponsibleID == "" || len(in.ProductIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Location.Type != entity.LocationWarehouse && in.Location.Type != entity.LocationStoreroom {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.InventoryCountItem, 0, len(in.ProductIDs))
	for _, productID := range in.ProductIDs {
		level, err := uc.stockRepo.Get(in.TenantID, in.Location, productID)
		if err != nil {
			return nil, err
		}
		var current int64
		if level != nil {
			current = level.Quantity
		}
		items = append(items, entity.InventoryCountItem{ProductID: productID, CurrentStock: current})
	}

	now := time.Now()
	count := &entity.InventoryCount{
		ID:            uuid.New().String(),
		TenantID:      in.TenantID,
		Location:      in.Location,
		Description:   in.Description,
		Status:        entity.CountStatusOpen,
		Items:         items,
		ResponsibleID: in.ResponsibleID,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.countRepo.Create(count); err != nil {
		return nil, err
	}
	return count, nil
}

// CountedItemInput cantidad contada de un producto.
type CountedItemInput struct {
	ProductID    string
	CountedStock int64
	Notes        string
}

// EnterCounted registra cantidades contadas y calcula diff = contado - sistema.
// Rechaza contagens ya COMPLETED: después del cierre no hay más ediciones.
func (uc *CountUseCase) EnterCounted(_ context.Context, tenantID, countID string, entries []CountedItemInput) (*entity.InventoryCount, error) {
	count, err := uc.countRepo.GetByID(tenantID, countID)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, domain.ErrNotFound
	}
	if count.Status == entity.CountStatusCompleted || count.Status == entity.CountStatusCancelled {
		return nil, domain.ErrInvalidState
	}

	byProduct := make(map[string]*entity.InventoryCountItem, len(count.Items))
	for i := range count.Items {
		byProduct[count.Items[i].ProductID] = &count.Items[i]
	}
	for _, e := range entries {
		item, ok := byProduct[e.ProductID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		counted := e.CountedStock
		diff := counted - item.CurrentStock
		item.CountedStock = &counted
		item.Diff = &diff
		if e.Notes != "" {
			item.Notes = e.Notes
		}
	}

	count.Status = entity.CountStatusOpen
	count.UpdatedAt = time.Now()
	if err := uc.countRepo.Update(count); err != nil {
		return nil, err
	}
	return count, nil
}

// GetByID contagem por id dentro del tenant.
func (uc *CountUseCase) GetByID(_ context.Context, tenantID, countID string) (*entity.InventoryCount, error) {
	count, err := uc.countRepo.GetByID(tenantID, countID)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, domain.ErrNotFound
	}
	return count, nil
}

// List contagens del tenant, más recientes primero.
func (uc *CountUseCase) List(_ context.Context, tenantID string, limit, offset int) ([]*entity.InventoryCount, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.countRepo.ListByTenant(tenantID, limit, offset)
}
