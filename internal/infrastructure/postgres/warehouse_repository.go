package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste un almacén.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, tenant_id, name, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.TenantID, w.Name, w.Address, w.Active, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create warehouse: %w", mapUniqueViolation(err))
	}
	return nil
}

// GetByID almacén por id dentro del tenant; nil si no existe.
func (r *WarehouseRepo) GetByID(tenantID, id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, tenant_id, name, address, active, created_at, updated_at
		FROM warehouses WHERE tenant_id = $1 AND id = $2`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&w.ID, &w.TenantID, &w.Name, &w.Address, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// GetByName almacén activo por nombre exacto; nil si no existe.
func (r *WarehouseRepo) GetByName(tenantID, name string) (*entity.Warehouse, error) {
	query := `
		SELECT id, tenant_id, name, address, active, created_at, updated_at
		FROM warehouses WHERE tenant_id = $1 AND name = $2 AND active`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, tenantID, name).Scan(
		&w.ID, &w.TenantID, &w.Name, &w.Address, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by name: %w", err)
	}
	return &w, nil
}

// Update actualiza nombre y dirección.
func (r *WarehouseRepo) Update(w *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $3, address = $4, updated_at = $5
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, w.TenantID, w.ID, w.Name, w.Address, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", mapUniqueViolation(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update warehouse: %w", pgx.ErrNoRows)
	}
	return nil
}

// ListByTenant almacenes activos del tenant.
func (r *WarehouseRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, tenant_id, name, address, active, created_at, updated_at
		FROM warehouses WHERE tenant_id = $1 AND active
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.TenantID, &w.Name, &w.Address, &w.Active, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Deactivate soft-delete del almacén.
func (r *WarehouseRepo) Deactivate(tenantID, id string) error {
	query := `UPDATE warehouses SET active = false, updated_at = now() WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, tenantID, id)
	if err != nil {
		return fmt.Errorf("deactivate warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deactivate warehouse: %w", pgx.ErrNoRows)
	}
	return nil
}
