package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository sobre PostgreSQL.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador.
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste una orden de servicio.
func (r *WorkOrderRepo) Create(wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders
			(id, tenant_id, code, type, status, priority, customer_id, technician_id,
			 location_address, location_lat, location_lng,
			 scheduled_at, started_at, completed_at, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		wo.ID, wo.TenantID, wo.Code, wo.Type, wo.Status, wo.Priority, wo.CustomerID, nullable(wo.TechnicianID),
		nullable(wo.LocationAddress), wo.LocationLat, wo.LocationLng,
		wo.ScheduledAt, wo.StartedAt, wo.CompletedAt, nullable(wo.Notes), wo.CreatedBy, wo.CreatedAt, wo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create work order: %w", mapUniqueViolation(err))
	}
	return nil
}

// GetByID orden por id dentro del tenant; nil si no existe.
func (r *WorkOrderRepo) GetByID(tenantID, id string) (*entity.WorkOrder, error) {
	query := workOrderSelect + ` WHERE tenant_id = $1 AND id = $2`
	wo, err := scanWorkOrder(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return wo, nil
}

// Update actualiza los campos mutables de la orden.
func (r *WorkOrderRepo) Update(wo *entity.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET type = $3, status = $4, priority = $5, technician_id = $6,
		    location_address = $7, location_lat = $8, location_lng = $9,
		    scheduled_at = $10, started_at = $11, completed_at = $12, notes = $13, updated_at = $14
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		wo.TenantID, wo.ID, wo.Type, wo.Status, wo.Priority, nullable(wo.TechnicianID),
		nullable(wo.LocationAddress), wo.LocationLat, wo.LocationLng,
		wo.ScheduledAt, wo.StartedAt, wo.CompletedAt, nullable(wo.Notes), wo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update work order: %w", pgx.ErrNoRows)
	}
	return nil
}

// ListByTenant órdenes del tenant, filtro opcional por estado, más recientes primero.
func (r *WorkOrderRepo) ListByTenant(tenantID string, status string, limit, offset int) ([]*entity.WorkOrder, error) {
	query := workOrderSelect + ` WHERE tenant_id = $1`
	args := []any{tenantID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, wo)
	}
	return list, rows.Err()
}

// CountByTenant total de órdenes del tenant (para numerar códigos).
func (r *WorkOrderRepo) CountByTenant(tenantID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM work_orders WHERE tenant_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count work orders: %w", err)
	}
	return count, nil
}

const workOrderSelect = `
	SELECT id, tenant_id, code, type, status, priority, customer_id, technician_id,
	       location_address, location_lat, location_lng,
	       scheduled_at, started_at, completed_at, notes, created_by, created_at, updated_at
	FROM work_orders`

func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var wo entity.WorkOrder
	var technician, address, notes *string
	if err := row.Scan(&wo.ID, &wo.TenantID, &wo.Code, &wo.Type, &wo.Status, &wo.Priority,
		&wo.CustomerID, &technician, &address, &wo.LocationLat, &wo.LocationLng,
		&wo.ScheduledAt, &wo.StartedAt, &wo.CompletedAt, &notes, &wo.CreatedBy,
		&wo.CreatedAt, &wo.UpdatedAt); err != nil {
		return nil, err
	}
	if technician != nil {
		wo.TechnicianID = *technician
	}
	if address != nil {
		wo.LocationAddress = *address
	}
	if notes != nil {
		wo.Notes = *notes
	}
	return &wo, nil
}
