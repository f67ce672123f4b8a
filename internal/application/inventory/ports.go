package inventory

import (
	"context"

	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad multi-documento del
// motor de inventario: movimiento + deltas de ledger + cambio de estado se
// confirman o revierten como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockLevelRepository,
		countRepo repository.InventoryCountRepository,
		requestRepo repository.InventoryRequestRepository,
	) error) error
}
