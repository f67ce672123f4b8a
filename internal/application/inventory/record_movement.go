package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de inventario de forma
// transaccional. El movimiento es el hecho durable: se persiste primero y los
// deltas del ledger se aplican en la misma transacción (todo o nada).
type RecordMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento manual.
// Source/Target son opcionales pero al menos uno debe estar presente:
// solo Source = decremento puro, solo Target = incremento puro, ambos = traslado.
type MovementInput struct {
	TenantID      string
	ActorID       string
	Type          string
	ProductID     string
	Quantity      int64
	UnitValue     *decimal.Decimal
	Source        *entity.LocationRef
	Target        *entity.LocationRef
	ReferenceType string
	ReferenceID   string
	Notes         string
}

// Record valida la entrada, persiste el movimiento y aplica los deltas del
// ledger dentro de una transacción. No hay chequeo bloqueante de saldo: una
// salida mayor al disponible produce un saldo negativo aritméticamente
// correcto, nunca un recorte silencioso.
func (uc *RecordMovementUseCase) Record(ctx context.Context, in MovementInput) (*entity.InventoryMovement, error) {
	if !entity.ValidMovementType(in.Type) || in.ProductID == "" {
		return nil, domain.ErrInvalidMovement
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidMovement
	}
	if _, ok := entity.DirectionOf(in.Source, in.Target); !ok {
		return nil, domain.ErrInvalidMovement
	}
	if in.Source != nil && !entity.ValidLocationType(in.Source.Type) {
		return nil, domain.ErrInvalidMovement
	}
	if in.Target != nil && !entity.ValidLocationType(in.Target.Type) {
		return nil, domain.ErrInvalidMovement
	}

	// El producto sí se valida dentro del tenant; la existencia de las
	// ubicaciones referenciadas es responsabilidad de la capa que llama.
	product, err := uc.productRepo.GetByID(in.TenantID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	movement := &entity.InventoryMovement{
		TenantID:      in.TenantID,
		Type:          in.Type,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		UnitValue:     in.UnitValue,
		Source:        in.Source,
		Target:        in.Target,
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		ActorID:       in.ActorID,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockLevelRepository,
		_ repository.InventoryCountRepository,
		_ repository.InventoryRequestRepository,
	) error {
		return applyMovement(movRepo, stockRepo, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// applyMovement persiste el movimiento y aplica sus deltas sobre el ledger.
// Debe invocarse siempre con repositorios atados a una transacción: un
// movimiento sin sus deltas (o al revés) corrompe la pista de auditoría.
func applyMovement(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockLevelRepository,
	movement *entity.InventoryMovement,
) error {
	if err := movRepo.Create(movement); err != nil {
		return err
	}
	if movement.Source != nil {
		if _, err := stockRepo.ApplyDelta(movement.TenantID, *movement.Source, movement.ProductID, -movement.Quantity); err != nil {
			return err
		}
	}
	if movement.Target != nil {
		if _, err := stockRepo.ApplyDelta(movement.TenantID, *movement.Target, movement.ProductID, movement.Quantity); err != nil {
			return err
		}
	}
	return nil
}
