package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// FinalizeCountUseCase concilia una contagem física contra el ledger: emite un
// movimiento ADJUSTMENT por cada diferencia y fija el saldo al valor contado.
type FinalizeCountUseCase struct {
	txRunner  TxRunner
	countRepo repository.InventoryCountRepository
}

// NewFinalizeCountUseCase construye el caso de uso.
func NewFinalizeCountUseCase(txRunner TxRunner, countRepo repository.InventoryCountRepository) *FinalizeCountUseCase {
	return &FinalizeCountUseCase{txRunner: txRunner, countRepo: countRepo}
}

// Finalize cierra la contagem. COMPLETED es terminal: una segunda llamada
// devuelve ErrInvalidState y el ledger refleja exactamente un juego de ajustes.
//
// El saldo se sobrescribe con el valor contado (ForceSet) en lugar de componer
// con el delta del ajuste: la contagem física es autoritativa y absorbe
// cualquier deriva acumulada. Movimientos ocurridos entre la apertura y el
// cierre de la contagem sobre la misma ubicación/producto quedan absorbidos
// por esa sobrescritura.
func (uc *FinalizeCountUseCase) Finalize(ctx context.Context, tenantID, countID, actorID string) (*entity.InventoryCount, error) {
	count, err := uc.countRepo.GetByID(tenantID, countID)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, domain.ErrNotFound
	}
	if count.Status == entity.CountStatusCompleted {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockLevelRepository,
		countRepo repository.InventoryCountRepository,
		_ repository.InventoryRequestRepository,
	) error {
		for _, item := range count.Items {
			if item.Diff == nil || *item.Diff == 0 || item.CountedStock == nil {
				continue
			}
			diff := *item.Diff

			adjustment := &entity.InventoryMovement{
				TenantID:      tenantID,
				Type:          entity.MovementTypeADJUSTMENT,
				ProductID:     item.ProductID,
				Quantity:      abs(diff),
				ReferenceType: entity.ReferenceInventoryCount,
				ReferenceID:   count.ID,
				ActorID:       actorID,
				Notes:         adjustmentNote(item.Notes),
				CreatedAt:     now,
			}
			loc := count.Location
			if diff > 0 {
				adjustment.Target = &loc // sobró físico: entrada
			} else {
				adjustment.Source = &loc // faltó físico: salida
			}
			if err := movRepo.Create(adjustment); err != nil {
				return err
			}

			// Sobrescritura deliberada: el valor contado manda sobre la suma
			// de deltas.
			if err := stockRepo.ForceSet(tenantID, count.Location, item.ProductID, *item.CountedStock, now); err != nil {
				return err
			}
		}

		count.Status = entity.CountStatusCompleted
		count.FinalizedAt = &now
		count.UpdatedAt = now
		return countRepo.Update(count)
	})
	if err != nil {
		return nil, err
	}
	return count, nil
}

func adjustmentNote(itemNotes string) string {
	if itemNotes == "" {
		itemNotes = "diferencia identificada"
	}
	return fmt.Sprintf("ajuste de inventario: %s", itemNotes)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
