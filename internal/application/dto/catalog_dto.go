package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// CreateStoreroomRequest body para POST /api/storerooms.
type CreateStoreroomRequest struct {
	WarehouseID   string `json:"warehouse_id"`
	Name          string `json:"name"`
	ResponsibleID string `json:"responsible_id,omitempty"`
}

// CreateProductRequest body para POST /api/products (y PUT /api/products/:id).
type CreateProductRequest struct {
	Name       string          `json:"name"`
	PartNumber string          `json:"part_number,omitempty"`
	Unit       string          `json:"unit,omitempty"`
	UnitValue  decimal.Decimal `json:"unit_value,omitempty"`
	MinStock   int64           `json:"min_stock,omitempty"`
}

// AddressDTO dirección de cliente con coordenadas opcionales.
type AddressDTO struct {
	Label     string   `json:"label,omitempty"`
	Street    string   `json:"street,omitempty"`
	Number    string   `json:"number,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	ZipCode   string   `json:"zip_code,omitempty"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	IsPrimary bool     `json:"is_primary"`
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name      string       `json:"name"`
	Document  string       `json:"document,omitempty"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Addresses []AddressDTO `json:"addresses,omitempty"`
}

// CreateWorkOrderRequest body para POST /api/work-orders.
type CreateWorkOrderRequest struct {
	Type            string     `json:"type"`
	Priority        string     `json:"priority,omitempty"`
	CustomerID      string     `json:"customer_id"`
	TechnicianID    string     `json:"technician_id,omitempty"`
	LocationAddress string     `json:"location_address,omitempty"`
	LocationLat     *float64   `json:"location_lat,omitempty"`
	LocationLng     *float64   `json:"location_lng,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}
