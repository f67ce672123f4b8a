package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos de inventario.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProductInput entrada para crear un producto.
type CreateProductInput struct {
	TenantID   string
	Name       string
	PartNumber string
	Unit       string
	UnitValue  decimal.Decimal
	MinStock   int64
}

// Create crea un producto activo.
func (uc *ProductUseCase) Create(in CreateProductInput) (*entity.Product, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "UN"
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		TenantID:   in.TenantID,
		Name:       in.Name,
		PartNumber: in.PartNumber,
		Unit:       unit,
		UnitValue:  in.UnitValue,
		MinStock:   in.MinStock,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID producto por id dentro del tenant.
func (uc *ProductUseCase) GetByID(tenantID, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List productos activos, con búsqueda opcional por nombre o part number.
func (uc *ProductUseCase) List(tenantID, search string, limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.ListByTenant(tenantID, search, limit, offset)
}

// Update actualiza los campos editables de un producto.
func (uc *ProductUseCase) Update(tenantID, id string, in CreateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.PartNumber != "" {
		product.PartNumber = in.PartNumber
	}
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	if !in.UnitValue.IsZero() {
		product.UnitValue = in.UnitValue
	}
	if in.MinStock > 0 {
		product.MinStock = in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete borrado lógico (active = false).
func (uc *ProductUseCase) Delete(tenantID, id string) error {
	return uc.productRepo.Deactivate(tenantID, id)
}
