package entity

import "time"

// StockLevel saldo actual de un producto en una ubicación (caché derivada del
// log de movimientos). Como máximo existe un registro por la tripleta
// (tenant, ubicación, producto); se crea con el primer movimiento que la toca.
type StockLevel struct {
	TenantID      string
	Location      LocationRef
	ProductID     string
	Quantity      int64
	LastCountDate *time.Time // última conciliación física, si hubo
	UpdatedAt     time.Time
}
