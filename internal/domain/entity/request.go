package entity

import "time"

// Tipos de solicitud de inventario.
const (
	RequestTypeRestock    = "RESTOCK"    // reposición hacia un storeroom/técnico
	RequestTypeDeployment = "DEPLOYMENT" // despliegue hacia un cliente
	RequestTypeReturn     = "RETURN"     // devolución hacia bodega
)

// Estados de una solicitud.
const (
	RequestStatusPending   = "PENDING"
	RequestStatusApproved  = "APPROVED"
	RequestStatusRejected  = "REJECTED"
	RequestStatusFulfilled = "FULFILLED"
)

// Prioridades de solicitud.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// InventoryRequestItem renglón de una solicitud. ApprovedQuantity permite al
// aprobador conceder menos de lo pedido; nil significa "lo solicitado".
type InventoryRequestItem struct {
	ProductID        string `json:"product_id"`
	Quantity         int64  `json:"quantity"`
	ApprovedQuantity *int64 `json:"approved_quantity,omitempty"`
}

// InventoryRequest solicitud de material. Nace PENDING; la aprobación es una
// transición de una sola vía y el único disparador de movimientos realizados.
type InventoryRequest struct {
	ID          string
	TenantID    string
	RequesterID string
	Type        string // RESTOCK, DEPLOYMENT, RETURN
	Status      string // PENDING, APPROVED, REJECTED, FULFILLED
	Priority    string // LOW, MEDIUM, HIGH
	Source      *LocationRef
	Target      LocationRef
	Items       []InventoryRequestItem
	Notes       string
	ApprovedBy  string
	ApprovedAt  *time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidRequestType verifica que el tipo pertenezca al conjunto permitido.
func ValidRequestType(t string) bool {
	switch t {
	case RequestTypeRestock, RequestTypeDeployment, RequestTypeReturn:
		return true
	}
	return false
}
