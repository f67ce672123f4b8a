package repository

import "github.com/jhoicas/Fieldservice-api/internal/domain/entity"

// WorkOrderRepository puerto de persistencia para WorkOrder (DIP).
type WorkOrderRepository interface {
	Create(workOrder *entity.WorkOrder) error
	GetByID(tenantID, id string) (*entity.WorkOrder, error)
	Update(workOrder *entity.WorkOrder) error
	ListByTenant(tenantID string, status string, limit, offset int) ([]*entity.WorkOrder, error)
	CountByTenant(tenantID string) (int, error)
}

// RouteRepository puerto de persistencia para Route (DIP).
type RouteRepository interface {
	Create(route *entity.Route) error
	GetByID(tenantID, id string) (*entity.Route, error)
	Update(route *entity.Route) error
	ListByTenant(tenantID string, status string, limit, offset int) ([]*entity.Route, error)
	CountByTenant(tenantID string) (int, error)
}
