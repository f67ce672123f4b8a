package entity

import "time"

// Tipos de orden de servicio.
const (
	WorkOrderInstallation = "installation"
	WorkOrderMaintenance  = "maintenance"
	WorkOrderRemoval      = "removal"
	WorkOrderInspection   = "inspection"
	WorkOrderOther        = "other"
)

// Estados de orden de servicio.
const (
	WorkOrderStatusOpen       = "open"
	WorkOrderStatusScheduled  = "scheduled"
	WorkOrderStatusInProgress = "in_progress"
	WorkOrderStatusCompleted  = "completed"
	WorkOrderStatusCancelled  = "cancelled"
)

// WorkOrder orden de servicio en campo. LocationLat/Lng son coordenadas
// opcionales del punto de atención cuando difiere de la dirección del cliente.
type WorkOrder struct {
	ID              string
	TenantID        string
	Code            string
	Type            string
	Status          string
	Priority        string // LOW, MEDIUM, HIGH
	CustomerID      string
	TechnicianID    string
	LocationAddress string
	LocationLat     *float64
	LocationLng     *float64
	ScheduledAt     *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
