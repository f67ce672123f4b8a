package repository

import (
	"time"

	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
)

// StockLevelRepository puerto de persistencia para el ledger de stock (DIP).
// Nadie aplica deltas fuera del camino de movimientos; ForceSet existe solo
// para la conciliación de contagens.
type StockLevelRepository interface {
	// ApplyDelta suma delta (puede ser negativo) al saldo de la tripleta,
	// creando el registro si no existe (upsert). Debe ser un incremento
	// atómico en el motor de datos, no read-modify-write. Devuelve el saldo
	// resultante.
	ApplyDelta(tenantID string, location entity.LocationRef, productID string, delta int64) (int64, error)
	// ForceSet fija el saldo al valor contado (sobrescribe, no compone) y
	// actualiza la fecha de última contagem.
	ForceSet(tenantID string, location entity.LocationRef, productID string, quantity int64, countedAt time.Time) error
	Get(tenantID string, location entity.LocationRef, productID string) (*entity.StockLevel, error)
	ListByLocation(tenantID string, location entity.LocationRef) ([]*entity.StockLevel, error)
}
