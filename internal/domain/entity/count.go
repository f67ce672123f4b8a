package entity

import "time"

// Estados de una contagem (balanço) de inventario.
const (
	CountStatusDraft     = "DRAFT"
	CountStatusOpen      = "OPEN"
	CountStatusCompleted = "COMPLETED"
	CountStatusCancelled = "CANCELLED"
)

// InventoryCountItem renglón de una contagem: saldo de sistema al abrir,
// cantidad contada físicamente y diferencia (contado - sistema).
type InventoryCountItem struct {
	ProductID    string `json:"product_id"`
	CurrentStock int64  `json:"current_stock"` // snapshot del ledger al abrir
	CountedStock *int64 `json:"counted_stock,omitempty"`
	Diff         *int64 `json:"diff,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// InventoryCount contagem física de inventario sobre una ubicación.
// Los items viven embebidos en el padre (agregado documental); la transición a
// COMPLETED es terminal y es el único paso que emite movimientos normalizados.
type InventoryCount struct {
	ID            string
	TenantID      string
	Location      LocationRef // Warehouse o Storeroom
	Description   string
	Status        string // DRAFT, OPEN, COMPLETED, CANCELLED
	Items         []InventoryCountItem
	ResponsibleID string
	FinalizedAt   *time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
