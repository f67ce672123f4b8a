package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes del proveedor de servicios. Las direcciones
// llegan pre-geocodificadas; el optimizador de rutas solo las consume.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// CreateCustomerInput entrada para crear un cliente.
type CreateCustomerInput struct {
	TenantID  string
	Name      string
	Document  string
	Email     string
	Phone     string
	Addresses []entity.CustomerAddress
}

// Create crea un cliente activo.
func (uc *CustomerUseCase) Create(in CreateCustomerInput) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		TenantID:  in.TenantID,
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		Addresses: in.Addresses,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID cliente por id dentro del tenant.
func (uc *CustomerUseCase) GetByID(tenantID, id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List clientes del tenant con búsqueda opcional por nombre o documento.
func (uc *CustomerUseCase) List(tenantID, search string, limit, offset int) ([]*entity.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.customerRepo.ListByTenant(tenantID, search, limit, offset)
}

// Update reemplaza datos de contacto y direcciones del cliente.
func (uc *CustomerUseCase) Update(tenantID, id string, in CreateCustomerInput) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.Document != "" {
		customer.Document = in.Document
	}
	if in.Email != "" {
		customer.Email = in.Email
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.Addresses != nil {
		customer.Addresses = in.Addresses
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
