package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/geo"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// RouteUseCase creación y gestión de rutas diarias.
type RouteUseCase struct {
	routeRepo repository.RouteRepository
	optimizer *OptimizeUseCase
}

// NewRouteUseCase construye el caso de uso.
func NewRouteUseCase(routeRepo repository.RouteRepository, optimizer *OptimizeUseCase) *RouteUseCase {
	return &RouteUseCase{routeRepo: routeRepo, optimizer: optimizer}
}

// CreateRouteInput entrada para crear una ruta.
type CreateRouteInput struct {
	TenantID     string
	Date         time.Time
	VehicleID    string
	TechnicianID string
	WorkOrderIDs []string
	Notes        string
	Optimize     bool       // reordenar paradas con vecino-más-cercano
	Start        *geo.Point // ancla inicial opcional (ej. la bodega de salida)
}

// Create crea una ruta en estado draft. Con Optimize, las órdenes se
// reordenan antes de numerar las paradas; sin él, conservan el orden recibido.
func (uc *RouteUseCase) Create(ctx context.Context, in CreateRouteInput) (*entity.Route, error) {
	if len(in.WorkOrderIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	ids := in.WorkOrderIDs
	if in.Optimize {
		ordered, err := uc.optimizer.Optimize(ctx, in.TenantID, ids, in.Start)
		if err != nil {
			return nil, err
		}
		ids = ordered
	}

	stops := make([]entity.RouteStop, 0, len(ids))
	for i, workOrderID := range ids {
		stops = append(stops, entity.RouteStop{
			WorkOrderID: workOrderID,
			Order:       i + 1,
			Status:      entity.StopStatusPending,
		})
	}

	code, err := uc.nextCode(in.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	route := &entity.Route{
		ID:           uuid.New().String(),
		TenantID:     in.TenantID,
		Code:         code,
		Status:       entity.RouteStatusDraft,
		Date:         in.Date,
		VehicleID:    in.VehicleID,
		TechnicianID: in.TechnicianID,
		Stops:        stops,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.routeRepo.Create(route); err != nil {
		return nil, err
	}
	return route, nil
}

// GetByID ruta por id dentro del tenant.
func (uc *RouteUseCase) GetByID(_ context.Context, tenantID, routeID string) (*entity.Route, error) {
	route, err := uc.routeRepo.GetByID(tenantID, routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.ErrNotFound
	}
	return route, nil
}

// List rutas del tenant, opcionalmente filtradas por estado.
func (uc *RouteUseCase) List(_ context.Context, tenantID, status string, limit, offset int) ([]*entity.Route, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.routeRepo.ListByTenant(tenantID, status, limit, offset)
}

// UpdateStatus cambia el estado de la ruta (draft, planned, in_progress...).
func (uc *RouteUseCase) UpdateStatus(_ context.Context, tenantID, routeID, status string) (*entity.Route, error) {
	switch status {
	case entity.RouteStatusDraft, entity.RouteStatusPlanned, entity.RouteStatusInProgress,
		entity.RouteStatusCompleted, entity.RouteStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	route, err := uc.routeRepo.GetByID(tenantID, routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.ErrNotFound
	}
	route.Status = status
	route.UpdatedAt = time.Now()
	if err := uc.routeRepo.Update(route); err != nil {
		return nil, err
	}
	return route, nil
}

// nextCode código secuencial por tenant: RT-0001, RT-0002, ...
func (uc *RouteUseCase) nextCode(tenantID string) (string, error) {
	n, err := uc.routeRepo.CountByTenant(tenantID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RT-%04d", n+1), nil
}
