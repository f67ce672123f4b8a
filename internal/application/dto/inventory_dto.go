package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/inventory/movements.
// Al menos uno de source/target debe estar presente.
type RecordMovementRequest struct {
	Type          string           `json:"type"` // IN, OUT, TRANSFER, ADJUSTMENT, RETURN
	ProductID     string           `json:"product_id"`
	Quantity      int64            `json:"quantity"`
	UnitValue     *decimal.Decimal `json:"unit_value,omitempty"`
	Source        *LocationDTO     `json:"source,omitempty"`
	Target        *LocationDTO     `json:"target,omitempty"`
	ReferenceType string           `json:"reference_type,omitempty"`
	ReferenceID   string           `json:"reference_id,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// MovementResponse movimiento en respuestas del API.
type MovementResponse struct {
	ID            string           `json:"id"`
	Type          string           `json:"type"`
	ProductID     string           `json:"product_id"`
	Quantity      int64            `json:"quantity"`
	UnitValue     *decimal.Decimal `json:"unit_value,omitempty"`
	Source        *LocationDTO     `json:"source,omitempty"`
	Target        *LocationDTO     `json:"target,omitempty"`
	ReferenceType string           `json:"reference_type,omitempty"`
	ReferenceID   string           `json:"reference_id,omitempty"`
	ActorID       string           `json:"actor_id"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// StockLevelResponse saldo de un producto en una ubicación.
type StockLevelResponse struct {
	ProductID     string     `json:"product_id"`
	Quantity      int64      `json:"quantity"`
	LastCountDate *time.Time `json:"last_count_date,omitempty"`
}

// CreateCountRequest body para POST /api/inventory/counts.
// Si responsible_id falta, el responsable es el usuario autenticado.
type CreateCountRequest struct {
	Location      LocationDTO `json:"location"`
	Description   string      `json:"description"`
	ResponsibleID string      `json:"responsible_id,omitempty"`
	ProductIDs    []string    `json:"product_ids"`
}

// CountedItemRequest cantidad contada de un producto en una contagem abierta.
type CountedItemRequest struct {
	ProductID    string `json:"product_id"`
	CountedStock int64  `json:"counted_stock"`
	Notes        string `json:"notes,omitempty"`
}

// EnterCountedRequest body para PUT /api/inventory/counts/:id/items.
type EnterCountedRequest struct {
	Items []CountedItemRequest `json:"items"`
}

// CountItemResponse renglón de contagem en respuestas del API.
type CountItemResponse struct {
	ProductID    string `json:"product_id"`
	CurrentStock int64  `json:"current_stock"`
	CountedStock *int64 `json:"counted_stock,omitempty"`
	Diff         *int64 `json:"diff,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// CountResponse contagem con sus renglones.
type CountResponse struct {
	ID            string              `json:"id"`
	Location      LocationDTO         `json:"location"`
	Description   string              `json:"description"`
	Status        string              `json:"status"`
	Items         []CountItemResponse `json:"items"`
	ResponsibleID string              `json:"responsible_id"`
	FinalizedAt   *time.Time          `json:"finalized_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// RequestItemDTO renglón de una solicitud de material.
type RequestItemDTO struct {
	ProductID        string `json:"product_id"`
	Quantity         int64  `json:"quantity"`
	ApprovedQuantity *int64 `json:"approved_quantity,omitempty"`
}

// CreateRequestRequest body para POST /api/inventory/requests.
type CreateRequestRequest struct {
	Type     string           `json:"type"` // RESTOCK, DEPLOYMENT, RETURN
	Priority string           `json:"priority,omitempty"`
	Source   *LocationDTO     `json:"source,omitempty"`
	Target   LocationDTO      `json:"target"`
	Items    []RequestItemDTO `json:"items"`
	Notes    string           `json:"notes,omitempty"`
}

// RequestResponse solicitud con sus renglones.
type RequestResponse struct {
	ID          string           `json:"id"`
	RequesterID string           `json:"requester_id"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	Source      *LocationDTO     `json:"source,omitempty"`
	Target      LocationDTO      `json:"target"`
	Items       []RequestItemDTO `json:"items"`
	Notes       string           `json:"notes,omitempty"`
	ApprovedBy  string           `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time       `json:"approved_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
