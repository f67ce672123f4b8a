package entity

import "time"

// Tenant organización aislada dentro del sistema. Todas las entidades del
// núcleo se escopan por TenantID.
type Tenant struct {
	ID        string
	Name      string
	Document  string // CNPJ/NIT del proveedor de servicios
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
