package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la pieza
// que da atomicidad multi-documento al motor de inventario: movimiento, deltas
// de ledger y cambio de estado confirman o revierten juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un fallo en cualquier paso no deja rastro parcial.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockLevelRepository,
	countRepo repository.InventoryCountRepository,
	requestRepo repository.InventoryRequestRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewInventoryMovementRepository(tx)
	stockRepo := NewStockLevelRepository(tx)
	countRepo := NewInventoryCountRepository(tx)
	requestRepo := NewInventoryRequestRepository(tx)

	if err := fn(movRepo, stockRepo, countRepo, requestRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
