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

var _ repository.InventoryRequestRepository = (*InventoryRequestRepo)(nil)

// InventoryRequestRepo implementación de solicitudes sobre PostgreSQL (usable
// con pool o tx). Los renglones viven como JSONB junto a la cabecera.
type InventoryRequestRepo struct {
	q Querier
}

// NewInventoryRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRequestRepository(q Querier) *InventoryRequestRepo {
	return &InventoryRequestRepo{q: q}
}

// Create persiste una solicitud con sus renglones embebidos.
func (r *InventoryRequestRepo) Create(req *entity.InventoryRequest) error {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return fmt.Errorf("marshal request items: %w", err)
	}
	var srcType, srcID *string
	if req.Source != nil {
		srcType, srcID = &req.Source.Type, &req.Source.ID
	}
	query := `
		INSERT INTO inventory_requests
			(id, tenant_id, requester_id, type, status, priority,
			 source_location_type, source_location_id, target_location_type, target_location_id,
			 items, notes, approved_by, approved_at, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = r.q.Exec(context.Background(), query,
		req.ID, req.TenantID, req.RequesterID, req.Type, req.Status, req.Priority,
		srcType, srcID, req.Target.Type, req.Target.ID,
		items, nullable(req.Notes), nullable(req.ApprovedBy), req.ApprovedAt, req.Active, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory request: %w", err)
	}
	return nil
}

// GetByID solicitud por id dentro del tenant; nil si no existe.
func (r *InventoryRequestRepo) GetByID(tenantID, id string) (*entity.InventoryRequest, error) {
	query := requestSelect + ` WHERE tenant_id = $1 AND id = $2`
	row := r.q.QueryRow(context.Background(), query, tenantID, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory request: %w", err)
	}
	return req, nil
}

// ListByTenant solicitudes activas del tenant, más recientes primero.
func (r *InventoryRequestRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.InventoryRequest, error) {
	query := requestSelect + ` WHERE tenant_id = $1 AND active ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// Update reemplaza estado, renglones y campos de aprobación de la solicitud.
func (r *InventoryRequestRepo) Update(req *entity.InventoryRequest) error {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return fmt.Errorf("marshal request items: %w", err)
	}
	query := `
		UPDATE inventory_requests
		SET status = $3, priority = $4, items = $5, notes = $6,
		    approved_by = $7, approved_at = $8, updated_at = $9
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		req.TenantID, req.ID, req.Status, req.Priority, items, nullable(req.Notes),
		nullable(req.ApprovedBy), req.ApprovedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventory request: %w", pgx.ErrNoRows)
	}
	return nil
}

const requestSelect = `
	SELECT id, tenant_id, requester_id, type, status, priority,
	       source_location_type, source_location_id, target_location_type, target_location_id,
	       items, notes, approved_by, approved_at, active, created_at, updated_at
	FROM inventory_requests`

func scanRequest(row pgx.Row) (*entity.InventoryRequest, error) {
	var req entity.InventoryRequest
	var srcType, srcID, notes, approvedBy *string
	var items []byte
	if err := row.Scan(&req.ID, &req.TenantID, &req.RequesterID, &req.Type, &req.Status, &req.Priority,
		&srcType, &srcID, &req.Target.Type, &req.Target.ID,
		&items, &notes, &approvedBy, &req.ApprovedAt, &req.Active, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, err
	}
	if srcType != nil && srcID != nil {
		req.Source = &entity.LocationRef{Type: *srcType, ID: *srcID}
	}
	if notes != nil {
		req.Notes = *notes
	}
	if approvedBy != nil {
		req.ApprovedBy = *approvedBy
	}
	if err := json.Unmarshal(items, &req.Items); err != nil {
		return nil, fmt.Errorf("unmarshal request items: %w", err)
	}
	return &req, nil
}
