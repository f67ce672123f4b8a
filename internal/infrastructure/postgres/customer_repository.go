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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL. Las
// direcciones viven como arreglo JSONB en la fila del cliente.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente con sus direcciones embebidas.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	addresses, err := json.Marshal(c.Addresses)
	if err != nil {
		return fmt.Errorf("marshal customer addresses: %w", err)
	}
	query := `
		INSERT INTO customers (id, tenant_id, name, document, email, phone, addresses, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		c.ID, c.TenantID, c.Name, nullable(c.Document), nullable(c.Email), nullable(c.Phone),
		addresses, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create customer: %w", mapUniqueViolation(err))
	}
	return nil
}

// GetByID cliente por id dentro del tenant; nil si no existe.
func (r *CustomerRepo) GetByID(tenantID, id string) (*entity.Customer, error) {
	query := customerSelect + ` WHERE tenant_id = $1 AND id = $2`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Update reemplaza los datos y direcciones del cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	addresses, err := json.Marshal(c.Addresses)
	if err != nil {
		return fmt.Errorf("marshal customer addresses: %w", err)
	}
	query := `
		UPDATE customers
		SET name = $3, document = $4, email = $5, phone = $6, addresses = $7, status = $8, updated_at = $9
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		c.TenantID, c.ID, c.Name, nullable(c.Document), nullable(c.Email), nullable(c.Phone),
		addresses, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", mapUniqueViolation(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update customer: %w", pgx.ErrNoRows)
	}
	return nil
}

// ListByTenant clientes del tenant, con búsqueda opcional por nombre o documento.
func (r *CustomerRepo) ListByTenant(tenantID string, search string, limit, offset int) ([]*entity.Customer, error) {
	query := customerSelect + ` WHERE tenant_id = $1`
	args := []any{tenantID}
	pos := 2
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR document ILIKE $%d)", pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

const customerSelect = `
	SELECT id, tenant_id, name, document, email, phone, addresses, status, created_at, updated_at
	FROM customers`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var document, email, phone *string
	var addresses []byte
	if err := row.Scan(&c.ID, &c.TenantID, &c.Name, &document, &email, &phone,
		&addresses, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if document != nil {
		c.Document = *document
	}
	if email != nil {
		c.Email = *email
	}
	if phone != nil {
		c.Phone = *phone
	}
	if err := json.Unmarshal(addresses, &c.Addresses); err != nil {
		return nil, fmt.Errorf("unmarshal customer addresses: %w", err)
	}
	return &c, nil
}
