package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del log de movimientos sobre
// PostgreSQL (usable con pool o tx). Solo inserta y lee: los movimientos son
// inmutables una vez creados.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements
			(id, tenant_id, type, product_id, quantity, unit_value,
			 source_location_type, source_location_id, target_location_type, target_location_id,
			 reference_type, reference_id, actor_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	var srcType, srcID, tgtType, tgtID *string
	if m.Source != nil {
		srcType, srcID = &m.Source.Type, &m.Source.ID
	}
	if m.Target != nil {
		tgtType, tgtID = &m.Target.Type, &m.Target.ID
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TenantID, m.Type, m.ProductID, m.Quantity, m.UnitValue,
		srcType, srcID, tgtType, tgtID,
		nullable(m.ReferenceType), nullable(m.ReferenceID), m.ActorID, nullable(m.Notes), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID dentro del tenant.
func (r *InventoryMovementRepo) GetByID(tenantID, id string) (*entity.InventoryMovement, error) {
	query := movementSelect + ` WHERE tenant_id = $1 AND id = $2`
	row := r.q.QueryRow(context.Background(), query, tenantID, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List movimientos del tenant, más recientes primero, con filtros opcionales
// por producto y por ubicación (origen o destino).
func (r *InventoryMovementRepo) List(tenantID string, filter repository.MovementFilter, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := movementSelect + ` WHERE tenant_id = $1`
	args := []any{tenantID}
	pos := 2
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND (source_location_id = $%d OR target_location_id = $%d)", pos, pos)
		args = append(args, filter.LocationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

const movementSelect = `
	SELECT id, tenant_id, type, product_id, quantity, unit_value,
	       source_location_type, source_location_id, target_location_type, target_location_id,
	       reference_type, reference_id, actor_id, notes, created_at
	FROM inventory_movements`

func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	var srcType, srcID, tgtType, tgtID, refType, refID, notes *string
	if err := row.Scan(&m.ID, &m.TenantID, &m.Type, &m.ProductID, &m.Quantity, &m.UnitValue,
		&srcType, &srcID, &tgtType, &tgtID, &refType, &refID, &m.ActorID, &notes, &m.CreatedAt); err != nil {
		return nil, err
	}
	if srcType != nil && srcID != nil {
		m.Source = &entity.LocationRef{Type: *srcType, ID: *srcID}
	}
	if tgtType != nil && tgtID != nil {
		m.Target = &entity.LocationRef{Type: *tgtType, ID: *tgtID}
	}
	if refType != nil {
		m.ReferenceType = *refType
	}
	if refID != nil {
		m.ReferenceID = *refID
	}
	if notes != nil {
		m.Notes = *notes
	}
	return &m, nil
}

// nullable convierte cadena vacía a NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
