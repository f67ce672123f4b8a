package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, name, part_number, unit, unit_value, min_stock, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TenantID, p.Name, nullable(p.PartNumber), p.Unit, p.UnitValue, p.MinStock,
		p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create product: %w", mapUniqueViolation(err))
	}
	return nil
}

// GetByID producto por id dentro del tenant; nil si no existe.
func (r *ProductRepo) GetByID(tenantID, id string) (*entity.Product, error) {
	query := productSelect + ` WHERE tenant_id = $1 AND id = $2`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables del producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, part_number = $4, unit = $5, unit_value = $6, min_stock = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		p.TenantID, p.ID, p.Name, nullable(p.PartNumber), p.Unit, p.UnitValue, p.MinStock, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", mapUniqueViolation(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update product: %w", pgx.ErrNoRows)
	}
	return nil
}

// ListByTenant productos activos del tenant, con búsqueda opcional por nombre
// o número de parte (ILIKE).
func (r *ProductRepo) ListByTenant(tenantID string, search string, limit, offset int) ([]*entity.Product, error) {
	query := productSelect + ` WHERE tenant_id = $1 AND active`
	args := []any{tenantID}
	pos := 2
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR part_number ILIKE $%d)", pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Deactivate soft-delete del producto.
func (r *ProductRepo) Deactivate(tenantID, id string) error {
	query := `UPDATE products SET active = false, updated_at = now() WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, tenantID, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deactivate product: %w", pgx.ErrNoRows)
	}
	return nil
}

const productSelect = `
	SELECT id, tenant_id, name, part_number, unit, unit_value, min_stock, active, created_at, updated_at
	FROM products`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var partNumber *string
	if err := row.Scan(&p.ID, &p.TenantID, &p.Name, &partNumber, &p.Unit, &p.UnitValue,
		&p.MinStock, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if partNumber != nil {
		p.PartNumber = *partNumber
	}
	return &p, nil
}
