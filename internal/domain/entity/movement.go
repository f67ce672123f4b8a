package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre ubicaciones
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste por conciliación
	MovementTypeRETURN     = "RETURN"     // devolución
)

// Orígenes de referencia de un movimiento.
const (
	ReferenceOrder          = "Order"
	ReferencePurchase       = "Purchase"
	ReferenceInventoryCount = "InventoryCount"
	ReferenceRequest        = "Request"
	ReferenceManual         = "Manual"
)

// InventoryMovement registro inmutable de inventario moviéndose hacia, desde o
// entre ubicaciones. Es la pista de auditoría y el único camino legítimo para
// alterar un StockLevel: solo origen = decremento, solo destino = incremento,
// ambos = traslado.
type InventoryMovement struct {
	ID            string
	TenantID      string
	Type          string // IN, OUT, TRANSFER, ADJUSTMENT, RETURN
	ProductID     string
	Quantity      int64            // siempre positiva; la dirección la dan las ubicaciones
	UnitValue     *decimal.Decimal // valor unitario al momento del movimiento
	Source        *LocationRef
	Target        *LocationRef
	ReferenceType string // ver constantes Reference*
	ReferenceID   string
	ActorID       string // quién lo realizó
	Notes         string
	CreatedAt     time.Time
}

// ValidMovementType verifica que el tipo pertenezca al conjunto permitido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeTRANSFER, MovementTypeADJUSTMENT, MovementTypeRETURN:
		return true
	}
	return false
}
