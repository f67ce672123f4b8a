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

var _ repository.RouteRepository = (*RouteRepo)(nil)

// RouteRepo implementación de RouteRepository sobre PostgreSQL. Las paradas
// viven como arreglo JSONB ordenado en la fila de la ruta.
type RouteRepo struct {
	q Querier
}

// NewRouteRepository construye el adaptador.
func NewRouteRepository(q Querier) *RouteRepo {
	return &RouteRepo{q: q}
}

// Create persiste una ruta con sus paradas embebidas.
func (r *RouteRepo) Create(rt *entity.Route) error {
	stops, err := json.Marshal(rt.Stops)
	if err != nil {
		return fmt.Errorf("marshal route stops: %w", err)
	}
	query := `
		INSERT INTO routes
			(id, tenant_id, code, status, date, vehicle_id, technician_id, stops, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		rt.ID, rt.TenantID, rt.Code, rt.Status, rt.Date, nullable(rt.VehicleID), nullable(rt.TechnicianID),
		stops, nullable(rt.Notes), rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create route: %w", mapUniqueViolation(err))
	}
	return nil
}

// GetByID ruta por id dentro del tenant; nil si no existe.
func (r *RouteRepo) GetByID(tenantID, id string) (*entity.Route, error) {
	query := routeSelect + ` WHERE tenant_id = $1 AND id = $2`
	rt, err := scanRoute(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route: %w", err)
	}
	return rt, nil
}

// Update reemplaza estado, paradas y notas de la ruta.
func (r *RouteRepo) Update(rt *entity.Route) error {
	stops, err := json.Marshal(rt.Stops)
	if err != nil {
		return fmt.Errorf("marshal route stops: %w", err)
	}
	query := `
		UPDATE routes
		SET status = $3, vehicle_id = $4, technician_id = $5, stops = $6, notes = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		rt.TenantID, rt.ID, rt.Status, nullable(rt.VehicleID), nullable(rt.TechnicianID),
		stops, nullable(rt.Notes), rt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update route: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update route: %w", pgx.ErrNoRows)
	}
	return nil
}

// ListByTenant rutas del tenant, filtro opcional por estado, más recientes primero.
func (r *RouteRepo) ListByTenant(tenantID string, status string, limit, offset int) ([]*entity.Route, error) {
	query := routeSelect + ` WHERE tenant_id = $1`
	args := []any{tenantID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Route
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

// CountByTenant total de rutas del tenant (para numerar códigos).
func (r *RouteRepo) CountByTenant(tenantID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM routes WHERE tenant_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count routes: %w", err)
	}
	return count, nil
}

const routeSelect = `
	SELECT id, tenant_id, code, status, date, vehicle_id, technician_id, stops, notes, created_at, updated_at
	FROM routes`

func scanRoute(row pgx.Row) (*entity.Route, error) {
	var rt entity.Route
	var vehicle, technician, notes *string
	var stops []byte
	if err := row.Scan(&rt.ID, &rt.TenantID, &rt.Code, &rt.Status, &rt.Date,
		&vehicle, &technician, &stops, &notes, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		return nil, err
	}
	if vehicle != nil {
		rt.VehicleID = *vehicle
	}
	if technician != nil {
		rt.TechnicianID = *technician
	}
	if notes != nil {
		rt.Notes = *notes
	}
	if err := json.Unmarshal(stops, &rt.Stops); err != nil {
		return nil, fmt.Errorf("unmarshal route stops: %w", err)
	}
	return &rt, nil
}
