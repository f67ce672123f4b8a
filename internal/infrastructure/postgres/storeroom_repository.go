package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

var _ repository.StoreroomRepository = (*StoreroomRepo)(nil)

// StoreroomRepo implementación de StoreroomRepository sobre PostgreSQL.
type StoreroomRepo struct {
	q Querier
}

// NewStoreroomRepository construye el adaptador.
func NewStoreroomRepository(q Querier) *StoreroomRepo {
	return &StoreroomRepo{q: q}
}

// Create persiste un almoxarifado.
func (r *StoreroomRepo) Create(s *entity.Storeroom) error {
	query := `
		INSERT INTO storerooms (id, tenant_id, warehouse_id, name, responsible_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TenantID, s.WarehouseID, s.Name, nullable(s.ResponsibleID), s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create storeroom: %w", mapUniqueViolation(err))
	}
	return nil
}

// GetByID almoxarifado por id dentro del tenant; nil si no existe.
func (r *StoreroomRepo) GetByID(tenantID, id string) (*entity.Storeroom, error) {
	query := storeroomSelect + ` WHERE tenant_id = $1 AND id = $2`
	s, err := scanStoreroom(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storeroom: %w", err)
	}
	return s, nil
}

// GetByName almoxarifado activo por nombre exacto; nil si no existe.
func (r *StoreroomRepo) GetByName(tenantID, name string) (*entity.Storeroom, error) {
	query := storeroomSelect + ` WHERE tenant_id = $1 AND name = $2 AND active`
	s, err := scanStoreroom(r.q.QueryRow(context.Background(), query, tenantID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storeroom by name: %w", err)
	}
	return s, nil
}

// Update actualiza nombre y responsable.
func (r *StoreroomRepo) Update(s *entity.Storeroom) error {
	query := `
		UPDATE storerooms SET name = $3, responsible_id = $4, updated_at = $5
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, s.TenantID, s.ID, s.Name, nullable(s.ResponsibleID), s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update storeroom: %w", mapUniqueViolation(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update storeroom: %w", pgx.ErrNoRows)
	}
	return nil
}

// ListByTenant almoxarifados activos del tenant.
func (r *StoreroomRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Storeroom, error) {
	query := storeroomSelect + ` WHERE tenant_id = $1 AND active ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list storerooms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Storeroom
	for rows.Next() {
		s, err := scanStoreroom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan storeroom: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Deactivate soft-delete del almoxarifado.
func (r *StoreroomRepo) Deactivate(tenantID, id string) error {
	query := `UPDATE storerooms SET active = false, updated_at = now() WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, tenantID, id)
	if err != nil {
		return fmt.Errorf("deactivate storeroom: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deactivate storeroom: %w", pgx.ErrNoRows)
	}
	return nil
}

const storeroomSelect = `
	SELECT id, tenant_id, warehouse_id, name, responsible_id, active, created_at, updated_at
	FROM storerooms`

func scanStoreroom(row pgx.Row) (*entity.Storeroom, error) {
	var s entity.Storeroom
	var responsible *string
	if err := row.Scan(&s.ID, &s.TenantID, &s.WarehouseID, &s.Name, &responsible,
		&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if responsible != nil {
		s.ResponsibleID = *responsible
	}
	return &s, nil
}
