package entity

import "time"

// Estados de ruta.
const (
	RouteStatusDraft      = "draft"
	RouteStatusPlanned    = "planned"
	RouteStatusInProgress = "in_progress"
	RouteStatusCompleted  = "completed"
	RouteStatusCancelled  = "cancelled"
)

// Estados de parada.
const (
	StopStatusPending   = "pending"
	StopStatusCompleted = "completed"
	StopStatusSkipped   = "skipped"
)

// RouteStop parada de una ruta: referencia a una orden de servicio más su
// posición en la secuencia (1-based).
type RouteStop struct {
	WorkOrderID string     `json:"work_order_id"`
	Order       int        `json:"order"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Route ruta diaria de un técnico/vehículo con sus paradas ordenadas.
type Route struct {
	ID           string
	TenantID     string
	Code         string
	Status       string
	Date         time.Time
	VehicleID    string
	TechnicianID string
	Stops        []RouteStop
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
