package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (id, tenant_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.TenantID, u.Email, u.PasswordHash, u.Name, u.Role, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create user: %w", mapUniqueViolation(err))
	}
	return nil
}

// GetByID usuario por id global; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := userSelect + ` WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByEmail usuario por email (global, para login); nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := userSelect + ` WHERE email = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// GetByEmailAndTenant usuario por email dentro de un tenant; nil si no existe.
func (r *UserRepo) GetByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	query := userSelect + ` WHERE email = $1 AND tenant_id = $2`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, email, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email and tenant: %w", err)
	}
	return u, nil
}

// ListByTenant usuarios del tenant.
func (r *UserRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.User, error) {
	query := userSelect + ` WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza nombre, rol y estado del usuario.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users SET name = $2, role = $3, status = $4, password_hash = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, u.ID, u.Name, u.Role, u.Status, u.PasswordHash, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update user: %w", pgx.ErrNoRows)
	}
	return nil
}

const userSelect = `
	SELECT id, tenant_id, email, password_hash, name, role, status, created_at, updated_at
	FROM users`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.Name,
		&u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación de TenantRepository sobre PostgreSQL.
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador.
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un tenant.
func (r *TenantRepo) Create(t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, document, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, nullable(t.Document), t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create tenant: %w", mapUniqueViolation(err))
	}
	return nil
}

// GetByID tenant por id; nil si no existe.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	query := `SELECT id, name, document, status, created_at, updated_at FROM tenants WHERE id = $1`
	var t entity.Tenant
	var document *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &document, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	if document != nil {
		t.Document = *document
	}
	return &t, nil
}

// List tenants registrados.
func (r *TenantRepo) List(limit, offset int) ([]*entity.Tenant, error) {
	query := `SELECT id, name, document, status, created_at, updated_at FROM tenants ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		var document *string
		if err := rows.Scan(&t.ID, &t.Name, &document, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		if document != nil {
			t.Document = *document
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
