package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product ítem de inventario (equipo, material o consumible de campo).
type Product struct {
	ID         string
	TenantID   string
	Name       string
	PartNumber string
	Unit       string // unidad de medida: UN, M, CX...
	UnitValue  decimal.Decimal
	MinStock   int64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
