package dto

import "time"

// OptimizeRouteRequest body para POST /api/routes/optimize.
// StartLat/StartLng definen el ancla inicial (ej. la bodega de salida);
// si faltan, la primera orden con coordenadas hace de inicio.
type OptimizeRouteRequest struct {
	WorkOrderIDs []string `json:"work_order_ids"`
	StartLat     *float64 `json:"start_lat,omitempty"`
	StartLng     *float64 `json:"start_lng,omitempty"`
}

// OptimizeRouteResponse orden de visita resultante.
type OptimizeRouteResponse struct {
	WorkOrderIDs []string `json:"work_order_ids"`
}

// CreateRouteRequest body para POST /api/routes.
type CreateRouteRequest struct {
	Date         string   `json:"date"` // YYYY-MM-DD
	VehicleID    string   `json:"vehicle_id,omitempty"`
	TechnicianID string   `json:"technician_id,omitempty"`
	WorkOrderIDs []string `json:"work_order_ids"`
	Notes        string   `json:"notes,omitempty"`
	Optimize     bool     `json:"optimize,omitempty"`
	StartLat     *float64 `json:"start_lat,omitempty"`
	StartLng     *float64 `json:"start_lng,omitempty"`
}

// RouteStopResponse parada de ruta en respuestas del API.
type RouteStopResponse struct {
	WorkOrderID string     `json:"work_order_id"`
	Order       int        `json:"order"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RouteResponse ruta con sus paradas.
type RouteResponse struct {
	ID           string              `json:"id"`
	Code         string              `json:"code"`
	Status       string              `json:"status"`
	Date         time.Time           `json:"date"`
	VehicleID    string              `json:"vehicle_id,omitempty"`
	TechnicianID string              `json:"technician_id,omitempty"`
	Stops        []RouteStopResponse `json:"stops"`
	TotalStops   int                 `json:"total_stops"`
	Notes        string              `json:"notes,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// UpdateRouteStatusRequest body para PATCH /api/routes/:id/status.
type UpdateRouteStatusRequest struct {
	Status string `json:"status"`
}
