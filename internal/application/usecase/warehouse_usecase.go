package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// WarehouseUseCase CRUD de almacenes y almoxarifados.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	storeroomRepo repository.StoreroomRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, storeroomRepo repository.StoreroomRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, storeroomRepo: storeroomRepo}
}

// CreateWarehouse crea un almacén; nombre único por tenant entre los activos.
func (uc *WarehouseUseCase) CreateWarehouse(tenantID, name, address string) (*entity.Warehouse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.warehouseRepo.GetByName(tenantID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Address:   address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// ListWarehouses almacenes activos del tenant.
func (uc *WarehouseUseCase) ListWarehouses(tenantID string, limit, offset int) ([]*entity.Warehouse, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.warehouseRepo.ListByTenant(tenantID, limit, offset)
}

// DeleteWarehouse borrado lógico (active = false).
func (uc *WarehouseUseCase) DeleteWarehouse(tenantID, id string) error {
	return uc.warehouseRepo.Deactivate(tenantID, id)
}

// CreateStoreroom crea un almoxarifado ligado a un almacén existente.
func (uc *WarehouseUseCase) CreateStoreroom(tenantID, warehouseID, name, responsibleID string) (*entity.Storeroom, error) {
	if name == "" || warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(tenantID, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.storeroomRepo.GetByName(tenantID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	storeroom := &entity.Storeroom{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		WarehouseID:   warehouseID,
		Name:          name,
		ResponsibleID: responsibleID,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.storeroomRepo.Create(storeroom); err != nil {
		return nil, err
	}
	return storeroom, nil
}

// ListStorerooms almoxarifados activos del tenant.
func (uc *WarehouseUseCase) ListStorerooms(tenantID string, limit, offset int) ([]*entity.Storeroom, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.storeroomRepo.ListByTenant(tenantID, limit, offset)
}

// DeleteStoreroom borrado lógico (active = false).
func (uc *WarehouseUseCase) DeleteStoreroom(tenantID, id string) error {
	return uc.storeroomRepo.Deactivate(tenantID, id)
}
