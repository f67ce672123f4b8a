package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// ApproveRequestUseCase convierte una solicitud PENDING en movimientos
// realizados, exactamente una vez.
type ApproveRequestUseCase struct {
	txRunner    TxRunner
	requestRepo repository.InventoryRequestRepository
}

// NewApproveRequestUseCase construye el caso de uso.
func NewApproveRequestUseCase(txRunner TxRunner, requestRepo repository.InventoryRequestRepository) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{txRunner: txRunner, requestRepo: requestRepo}
}

// Approve aprueba la solicitud y emite un movimiento por renglón con cantidad
// aprobada (o la solicitada si no se ajustó); renglones con cantidad <= 0 se
// omiten. RESTOCK y DEPLOYMENT generan OUT; RETURN genera IN porque mueve
// stock hacia una ubicación, inverso semántico de los otros dos. Todo dentro
// de una transacción: aprobar una solicitud no-PENDING es un error.
func (uc *ApproveRequestUseCase) Approve(ctx context.Context, tenantID, requestID, approverID string) (*entity.InventoryRequest, error) {
	request, err := uc.requestRepo.GetByID(tenantID, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if request.Status != entity.RequestStatusPending {
		return nil, domain.ErrInvalidState
	}

	movType := entity.MovementTypeOUT
	if request.Type == entity.RequestTypeReturn {
		movType = entity.MovementTypeIN
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockLevelRepository,
		_ repository.InventoryCountRepository,
		requestRepo repository.InventoryRequestRepository,
	) error {
		for _, item := range request.Items {
			qty := item.Quantity
			if item.ApprovedQuantity != nil {
				qty = *item.ApprovedQuantity
			}
			if qty <= 0 {
				continue
			}

			target := request.Target
			movement := &entity.InventoryMovement{
				TenantID:      tenantID,
				Type:          movType,
				ProductID:     item.ProductID,
				Quantity:      qty,
				Source:        request.Source,
				Target:        &target,
				ReferenceType: entity.ReferenceRequest,
				ReferenceID:   request.ID,
				ActorID:       approverID,
				CreatedAt:     now,
			}
			if err := applyMovement(movRepo, stockRepo, movement); err != nil {
				return err
			}
		}

		request.Status = entity.RequestStatusApproved
		request.ApprovedBy = approverID
		request.ApprovedAt = &now
		request.UpdatedAt = now
		return requestRepo.Update(request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Reject rechaza una solicitud PENDING sin emitir movimientos.
func (uc *ApproveRequestUseCase) Reject(ctx context.Context, tenantID, requestID, approverID string) (*entity.InventoryRequest, error) {
	request, err := uc.requestRepo.GetByID(tenantID, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if request.Status != entity.RequestStatusPending {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	request.Status = entity.RequestStatusRejected
	request.ApprovedBy = approverID
	request.ApprovedAt = &now
	request.UpdatedAt = now
	if err := uc.requestRepo.Update(request); err != nil {
		return nil, err
	}
	return request, nil
}
