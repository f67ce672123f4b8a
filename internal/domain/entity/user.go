package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleTecnico    = "tecnico"
)

// User usuario del sistema (pertenece a un Tenant). Un técnico también actúa
// como ubicación de inventario (LocationUser).
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, supervisor, tecnico
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
