package entity

import "time"

// CustomerAddress dirección de un cliente. Lat/Lng llegan pre-geocodificadas
// (el núcleo no geocodifica); pueden faltar.
type CustomerAddress struct {
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

// Customer cliente del proveedor de servicios. También puede actuar como
// ubicación de inventario (equipos instalados en el domicilio).
type Customer struct {
	ID        string
	TenantID  string
	Name      string
	Document  string
	Email     string
	Phone     string
	Addresses []CustomerAddress
	Status    string // active, suspended, cancelled
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrimaryAddress devuelve la dirección marcada como principal, o la primera
// si ninguna lo está. nil si el cliente no tiene direcciones.
func (c *Customer) PrimaryAddress() *CustomerAddress {
	for i := range c.Addresses {
		if c.Addresses[i].IsPrimary {
			return &c.Addresses[i]
		}
	}
	if len(c.Addresses) > 0 {
		return &c.Addresses[0]
	}
	return nil
}
