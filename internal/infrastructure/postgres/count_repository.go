package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepo)(nil)

// InventoryCountRepo implementación de contagens sobre PostgreSQL (usable con
// pool o tx). Los items viven como arreglo JSONB en la fila del padre: el
// agregado completo es la unidad de atomicidad.
type InventoryCountRepo struct {
	q Querier
}

// NewInventoryCountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryCountRepository(q Querier) *InventoryCountRepo {
	return &InventoryCountRepo{q: q}
}

// Create persiste una contagem con sus items embebidos.
func (r *InventoryCountRepo) Create(c *entity.InventoryCount) error {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("marshal count items: %w", err)
	}
	query := `
		INSERT INTO inventory_counts
			(id, tenant_id, location_type, location_id, description, status, items,
			 responsible_id, finalized_at, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		c.ID, c.TenantID, c.Location.Type, c.Location.ID, c.Description, c.Status, items,
		c.ResponsibleID, c.FinalizedAt, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory count: %w", err)
	}
	return nil
}

// GetByID contagem por id dentro del tenant; nil si no existe.
func (r *InventoryCountRepo) GetByID(tenantID, id string) (*entity.InventoryCount, error) {
	query := countSelect + ` WHERE tenant_id = $1 AND id = $2`
	row := r.q.QueryRow(context.Background(), query, tenantID, id)
	c, err := scanCount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory count: %w", err)
	}
	return c, nil
}

// ListByTenant contagens activas del tenant, más recientes primero.
func (r *InventoryCountRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.InventoryCount, error) {
	query := countSelect + ` WHERE tenant_id = $1 AND active ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory counts: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryCount
	for rows.Next() {
		c, err := scanCount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update reemplaza items, estado y fechas de la contagem.
func (r *InventoryCountRepo) Update(c *entity.InventoryCount) error {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("marshal count items: %w", err)
	}
	query := `
		UPDATE inventory_counts
		SET description = $3, status = $4, items = $5, finalized_at = $6, updated_at = $7
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		c.TenantID, c.ID, c.Description, c.Status, items, c.FinalizedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventory count: %w", pgx.ErrNoRows)
	}
	return nil
}

const countSelect = `
	SELECT id, tenant_id, location_type, location_id, description, status, items,
	       responsible_id, finalized_at, active, created_at, updated_at
	FROM inventory_counts`

func scanCount(row pgx.Row) (*entity.InventoryCount, error) {
	var c entity.InventoryCount
	var items []byte
	if err := row.Scan(&c.ID, &c.TenantID, &c.Location.Type, &c.Location.ID, &c.Description,
		&c.Status, &items, &c.ResponsibleID, &c.FinalizedAt, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &c.Items); err != nil {
		return nil, fmt.Errorf("unmarshal count items: %w", err)
	}
	return &c, nil
}
