package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación del ledger de stock sobre PostgreSQL
// (usable con pool o tx). La unicidad de la tripleta la garantiza el índice
// único sobre (tenant_id, location_type, location_id, product_id).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// ApplyDelta suma delta al saldo con upsert-incremento atómico: el motor
// resuelve la concurrencia por llave sin read-modify-write en la aplicación.
func (r *StockLevelRepo) ApplyDelta(tenantID string, location entity.LocationRef, productID string, delta int64) (int64, error) {
	query := `
		INSERT INTO stock_levels (id, tenant_id, location_type, location_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (tenant_id, location_type, location_id, product_id)
		DO UPDATE SET quantity = stock_levels.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING quantity`
	var quantity int64
	err := r.q.QueryRow(context.Background(), query,
		uuid.New().String(), tenantID, location.Type, location.ID, productID, delta,
	).Scan(&quantity)
	if err != nil {
		return 0, fmt.Errorf("apply stock delta: %w", mapUniqueViolation(err))
	}
	return quantity, nil
}

// ForceSet fija el saldo al valor contado (sobrescribe, no compone) y
// registra la fecha de contagem. Camino exclusivo de la conciliación.
func (r *StockLevelRepo) ForceSet(tenantID string, location entity.LocationRef, productID string, quantity int64, countedAt time.Time) error {
	query := `
		INSERT INTO stock_levels (id, tenant_id, location_type, location_id, product_id, quantity, last_count_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (tenant_id, location_type, location_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_count_date = EXCLUDED.last_count_date, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		uuid.New().String(), tenantID, location.Type, location.ID, productID, quantity, countedAt,
	)
	if err != nil {
		return fmt.Errorf("force set stock: %w", mapUniqueViolation(err))
	}
	return nil
}

// Get saldo de un producto en una ubicación. La ausencia de fila equivale a
// saldo 0 (semántica upsert-al-primer-toque).
func (r *StockLevelRepo) Get(tenantID string, location entity.LocationRef, productID string) (*entity.StockLevel, error) {
	query := `
		SELECT tenant_id, location_type, location_id, product_id, quantity, last_count_date, updated_at
		FROM stock_levels
		WHERE tenant_id = $1 AND location_type = $2 AND location_id = $3 AND product_id = $4`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, tenantID, location.Type, location.ID, productID).Scan(
		&s.TenantID, &s.Location.Type, &s.Location.ID, &s.ProductID, &s.Quantity, &s.LastCountDate, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{TenantID: tenantID, Location: location, ProductID: productID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// ListByLocation saldos de todos los productos en una ubicación.
func (r *StockLevelRepo) ListByLocation(tenantID string, location entity.LocationRef) ([]*entity.StockLevel, error) {
	query := `
		SELECT tenant_id, location_type, location_id, product_id, quantity, last_count_date, updated_at
		FROM stock_levels
		WHERE tenant_id = $1 AND location_type = $2 AND location_id = $3
		ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, tenantID, location.Type, location.ID)
	if err != nil {
		return nil, fmt.Errorf("list stock by location: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.TenantID, &s.Location.Type, &s.Location.ID, &s.ProductID,
			&s.Quantity, &s.LastCountDate, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
