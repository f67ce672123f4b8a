package entity

// Tipos de ubicación donde puede residir inventario.
// El inventario puede estar en un almacén, un almoxarifado (storeroom),
// en poder de un técnico (User) o instalado en un cliente (Customer).
const (
	LocationWarehouse = "Warehouse"
	LocationStoreroom = "Storeroom"
	LocationUser      = "User"
	LocationCustomer  = "Customer"
)

// LocationRef referencia polimórfica a una ubicación de inventario.
// No implica propiedad ni integridad referencial: es solo una llave de búsqueda;
// validar la existencia del referente es responsabilidad de la capa que llama.
type LocationRef struct {
	Type string // Warehouse, Storeroom, User, Customer
	ID   string
}

// IsZero indica si la referencia está vacía (lado ausente de un movimiento).
func (l LocationRef) IsZero() bool {
	return l.Type == "" && l.ID == ""
}

// ValidLocationType verifica que el tipo pertenezca al conjunto permitido.
func ValidLocationType(t string) bool {
	switch t {
	case LocationWarehouse, LocationStoreroom, LocationUser, LocationCustomer:
		return true
	}
	return false
}

// Direction clasifica un movimiento según los lados presentes.
// Elimina del sistema de tipos el estado inválido "sin origen ni destino".
type Direction int

const (
	DirectionInbound  Direction = iota + 1 // solo destino: incremento puro
	DirectionOutbound                      // solo origen: decremento puro
	DirectionTransfer                      // ambos: traslado entre ubicaciones
)

// DirectionOf deriva la dirección de un movimiento a partir de sus lados.
// ok es false cuando no hay ni origen ni destino.
func DirectionOf(source, target *LocationRef) (Direction, bool) {
	switch {
	case source != nil && target != nil:
		return DirectionTransfer, true
	case target != nil:
		return DirectionInbound, true
	case source != nil:
		return DirectionOutbound, true
	}
	return 0, false
}
