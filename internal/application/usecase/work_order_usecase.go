package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// WorkOrderUseCase gestión de órdenes de servicio (lo suficiente para
// alimentar la planeación de rutas).
type WorkOrderUseCase struct {
	workOrderRepo repository.WorkOrderRepository
	customerRepo  repository.CustomerRepository
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(workOrderRepo repository.WorkOrderRepository, customerRepo repository.CustomerRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{workOrderRepo: workOrderRepo, customerRepo: customerRepo}
}

// CreateWorkOrderInput entrada para crear una orden de servicio.
type CreateWorkOrderInput struct {
	TenantID        string
	Type            string
	Priority        string
	CustomerID      string
	TechnicianID    string
	LocationAddress string
	LocationLat     *float64
	LocationLng     *float64
	ScheduledAt     *time.Time
	Notes           string
	CreatedBy       string
}

// Create crea una orden de servicio con código secuencial por tenant.
func (uc *WorkOrderUseCase) Create(in CreateWorkOrderInput) (*entity.WorkOrder, error) {
	if in.CustomerID == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.TenantID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	n, err := uc.workOrderRepo.CountByTenant(in.TenantID)
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	now := time.Now()
	workOrder := &entity.WorkOrder{
		ID:              uuid.New().String(),
		TenantID:        in.TenantID,
		Code:            fmt.Sprintf("OS-%05d", n+1),
		Type:            in.Type,
		Status:          entity.WorkOrderStatusOpen,
		Priority:        priority,
		CustomerID:      in.CustomerID,
		TechnicianID:    in.TechnicianID,
		LocationAddress: in.LocationAddress,
		LocationLat:     in.LocationLat,
		LocationLng:     in.LocationLng,
		ScheduledAt:     in.ScheduledAt,
		Notes:           in.Notes,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.workOrderRepo.Create(workOrder); err != nil {
		return nil, err
	}
	return workOrder, nil
}

// GetByID orden por id dentro del tenant.
func (uc *WorkOrderUseCase) GetByID(tenantID, id string) (*entity.WorkOrder, error) {
	workOrder, err := uc.workOrderRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if workOrder == nil {
		return nil, domain.ErrNotFound
	}
	return workOrder, nil
}

// List órdenes del tenant, opcionalmente filtradas por estado.
func (uc *WorkOrderUseCase) List(tenantID, status string, limit, offset int) ([]*entity.WorkOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.workOrderRepo.ListByTenant(tenantID, status, limit, offset)
}
