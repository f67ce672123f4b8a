package entity

import "time"

// Warehouse almacén central de un tenant.
type Warehouse struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Storeroom almoxarifado: sub-bodega ligada a un almacén, usualmente con un
// responsable (técnico o supervisor de campo).
type Storeroom struct {
	ID            string
	TenantID      string
	WarehouseID   string
	Name          string
	ResponsibleID string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
