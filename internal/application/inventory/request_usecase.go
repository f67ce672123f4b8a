package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// RequestUseCase creación y consulta de solicitudes de material. La aprobación
// (que sí mueve stock) vive en ApproveRequestUseCase.
type RequestUseCase struct {
	requestRepo repository.InventoryRequestRepository
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(requestRepo repository.InventoryRequestRepository) *RequestUseCase {
	return &RequestUseCase{requestRepo: requestRepo}
}

// CreateRequestInput entrada para crear una solicitud.
type CreateRequestInput struct {
	TenantID    string
	RequesterID string
	Type        string
	Priority    string
	Source      *entity.LocationRef
	Target      entity.LocationRef
	Items       []entity.InventoryRequestItem
	Notes       string
}

// Create crea la solicitud en estado PENDING.
func (uc *RequestUseCase) Create(_ context.Context, in CreateRequestInput) (*entity.InventoryRequest, error) {
	if !entity.ValidRequestType(in.Type) || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Target.IsZero() || !entity.ValidLocationType(in.Target.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Source != nil && !entity.ValidLocationType(in.Source.Type) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	now := time.Now()
	request := &entity.InventoryRequest{
		ID:          uuid.New().String(),
		TenantID:    in.TenantID,
		RequesterID: in.RequesterID,
		Type:        in.Type,
		Status:      entity.RequestStatusPending,
		Priority:    priority,
		Source:      in.Source,
		Target:      in.Target,
		Items:       in.Items,
		Notes:       in.Notes,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// GetByID solicitud por id dentro del tenant.
func (uc *RequestUseCase) GetByID(_ context.Context, tenantID, requestID string) (*entity.InventoryRequest, error) {
	request, err := uc.requestRepo.GetByID(tenantID, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	return request, nil
}

// List solicitudes del tenant, más recientes primero.
func (uc *RequestUseCase) List(_ context.Context, tenantID string, limit, offset int) ([]*entity.InventoryRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.requestRepo.ListByTenant(tenantID, limit, offset)
}
