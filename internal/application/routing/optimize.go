package routing

import (
	"context"

	"github.com/jhoicas/Fieldservice-api/internal/domain/geo"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// OptimizeUseCase secuencia paradas de ruta con la heurística golosa
// vecino-más-cercano sobre direcciones geocodificadas.
type OptimizeUseCase struct {
	workOrderRepo repository.WorkOrderRepository
	customerRepo  repository.CustomerRepository
}

// NewOptimizeUseCase construye el caso de uso.
func NewOptimizeUseCase(workOrderRepo repository.WorkOrderRepository, customerRepo repository.CustomerRepository) *OptimizeUseCase {
	return &OptimizeUseCase{workOrderRepo: workOrderRepo, customerRepo: customerRepo}
}

// Optimize reordena workOrderIDs minimizando distancia entre paradas
// consecutivas. La coordenada de cada orden sale de la dirección principal del
// cliente (la marcada primary, o la primera) con fallback a la coordenada
// propia de la orden. Órdenes sin coordenadas completas van al final en su
// orden relativo original. Con start, el ancla inicial es ese punto y ninguna
// orden se consume como inicio. Las distancias no se persisten.
func (uc *OptimizeUseCase) Optimize(_ context.Context, tenantID string, workOrderIDs []string, start *geo.Point) ([]string, error) {
	var withCoords []string
	var points []geo.Point
	var withoutCoords []string

	for _, id := range workOrderIDs {
		p, err := uc.resolvePoint(tenantID, id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			withCoords = append(withCoords, id)
			points = append(points, *p)
		} else {
			withoutCoords = append(withoutCoords, id)
		}
	}

	if len(withCoords) == 0 {
		return workOrderIDs, nil
	}

	order := geo.NearestNeighbor(points, start)
	result := make([]string, 0, len(workOrderIDs))
	for _, idx := range order {
		result = append(result, withCoords[idx])
	}
	return append(result, withoutCoords...), nil
}

// resolvePoint coordenada de una orden de servicio, o nil si no tiene lat y
// lng completas en ninguna fuente. Órdenes inexistentes cuentan como sin
// coordenadas: conservan su posición relativa en vez de abortar la ruta.
func (uc *OptimizeUseCase) resolvePoint(tenantID, workOrderID string) (*geo.Point, error) {
	wo, err := uc.workOrderRepo.GetByID(tenantID, workOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, nil
	}

	if wo.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(tenantID, wo.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			if addr := customer.PrimaryAddress(); addr != nil && addr.Lat != nil && addr.Lng != nil {
				return &geo.Point{Lat: *addr.Lat, Lng: *addr.Lng}, nil
			}
		}
	}
	if wo.LocationLat != nil && wo.LocationLng != nil {
		return &geo.Point{Lat: *wo.LocationLat, Lng: *wo.LocationLng}, nil
	}
	return nil, nil
}
