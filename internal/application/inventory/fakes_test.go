package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: mismo contrato que los repos PostgreSQL, sin DB.
// El txRunner falso toma un snapshot del store y lo restaura si fn falla,
// emulando el rollback transaccional.
// ──────────────────────────────────────────────────────────────────────────────

var errInjected = errors.New("fallo inyectado")

type memStore struct {
	stock     map[string]*entity.StockLevel
	movements []*entity.InventoryMovement
	counts    map[string]*entity.InventoryCount
	requests  map[string]*entity.InventoryRequest
	products  map[string]*entity.Product

	// failDeltaLocation hace fallar ApplyDelta sobre esa ubicación (para
	// probar atomicidad).
	failDeltaLocation string
}

func newMemStore() *memStore {
	return &memStore{
		stock:    make(map[string]*entity.StockLevel),
		counts:   make(map[string]*entity.InventoryCount),
		requests: make(map[string]*entity.InventoryRequest),
		products: make(map[string]*entity.Product),
	}
}

func stockKey(tenantID string, loc entity.LocationRef, productID string) string {
	return strings.Join([]string{tenantID, loc.Type, loc.ID, productID}, "|")
}

func (s *memStore) addProduct(tenantID, id, name string) {
	s.products[tenantID+"|"+id] = &entity.Product{ID: id, TenantID: tenantID, Name: name, Unit: "UN", Active: true}
}

func (s *memStore) balance(tenantID string, loc entity.LocationRef, productID string) int64 {
	if level, ok := s.stock[stockKey(tenantID, loc, productID)]; ok {
		return level.Quantity
	}
	return 0
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	cp.failDeltaLocation = s.failDeltaLocation
	for k, v := range s.stock {
		lv := *v
		cp.stock[k] = &lv
	}
	cp.movements = append([]*entity.InventoryMovement(nil), s.movements...)
	for k, v := range s.counts {
		c := *v
		c.Items = append([]entity.InventoryCountItem(nil), v.Items...)
		cp.counts[k] = &c
	}
	for k, v := range s.requests {
		r := *v
		r.Items = append([]entity.InventoryRequestItem(nil), v.Items...)
		cp.requests[k] = &r
	}
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.stock = snap.stock
	s.movements = snap.movements
	s.counts = snap.counts
	s.requests = snap.requests
	s.products = snap.products
}

// ── Stock ────────────────────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

var _ repository.StockLevelRepository = (*memStockRepo)(nil)

func (r *memStockRepo) ApplyDelta(tenantID string, loc entity.LocationRef, productID string, delta int64) (int64, error) {
	if r.s.failDeltaLocation != "" && loc.ID == r.s.failDeltaLocation {
		return 0, errInjected
	}
	key := stockKey(tenantID, loc, productID)
	level, ok := r.s.stock[key]
	if !ok {
		level = &entity.StockLevel{TenantID: tenantID, Location: loc, ProductID: productID}
		r.s.stock[key] = level
	}
	level.Quantity += delta
	level.UpdatedAt = time.Now()
	return level.Quantity, nil
}

func (r *memStockRepo) ForceSet(tenantID string, loc entity.LocationRef, productID string, quantity int64, countedAt time.Time) error {
	key := stockKey(tenantID, loc, productID)
	level, ok := r.s.stock[key]
	if !ok {
		level = &entity.StockLevel{TenantID: tenantID, Location: loc, ProductID: productID}
		r.s.stock[key] = level
	}
	level.Quantity = quantity
	level.LastCountDate = &countedAt
	level.UpdatedAt = time.Now()
	return nil
}

func (r *memStockRepo) Get(tenantID string, loc entity.LocationRef, productID string) (*entity.StockLevel, error) {
	if level, ok := r.s.stock[stockKey(tenantID, loc, productID)]; ok {
		lv := *level
		return &lv, nil
	}
	return &entity.StockLevel{TenantID: tenantID, Location: loc, ProductID: productID, Quantity: 0}, nil
}

func (r *memStockRepo) ListByLocation(tenantID string, loc entity.LocationRef) ([]*entity.StockLevel, error) {
	prefix := strings.Join([]string{tenantID, loc.Type, loc.ID}, "|") + "|"
	var out []*entity.StockLevel
	for k, v := range r.s.stock {
		if strings.HasPrefix(k, prefix) {
			lv := *v
			out = append(out, &lv)
		}
	}
	return out, nil
}

// ── Movimientos ──────────────────────────────────────────────────────────────

type memMovementRepo struct{ s *memStore }

var _ repository.InventoryMovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(tenantID, id string) (*entity.InventoryMovement, error) {
	for _, m := range r.s.movements {
		if m.TenantID == tenantID && m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(tenantID string, filter repository.MovementFilter, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.s.movements {
		if m.TenantID != tenantID {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID != "" {
			match := (m.Source != nil && m.Source.ID == filter.LocationID) ||
				(m.Target != nil && m.Target.ID == filter.LocationID)
			if !match {
				continue
			}
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// ── Contagens ────────────────────────────────────────────────────────────────

type memCountRepo struct{ s *memStore }

var _ repository.InventoryCountRepository = (*memCountRepo)(nil)

func cloneCount(c *entity.InventoryCount) *entity.InventoryCount {
	cp := *c
	cp.Items = append([]entity.InventoryCountItem(nil), c.Items...)
	return &cp
}

func (r *memCountRepo) Create(c *entity.InventoryCount) error {
	if _, exists := r.s.counts[c.ID]; exists {
		return fmt.Errorf("contagem duplicada: %s", c.ID)
	}
	r.s.counts[c.ID] = cloneCount(c)
	return nil
}

func (r *memCountRepo) GetByID(tenantID, id string) (*entity.InventoryCount, error) {
	c, ok := r.s.counts[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return cloneCount(c), nil
}

func (r *memCountRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.InventoryCount, error) {
	var out []*entity.InventoryCount
	for _, c := range r.s.counts {
		if c.TenantID == tenantID {
			out = append(out, cloneCount(c))
		}
	}
	return out, nil
}

func (r *memCountRepo) Update(c *entity.InventoryCount) error {
	if _, ok := r.s.counts[c.ID]; !ok {
		return fmt.Errorf("contagem inexistente: %s", c.ID)
	}
	r.s.counts[c.ID] = cloneCount(c)
	return nil
}

// ── Solicitudes ──────────────────────────────────────────────────────────────

type memRequestRepo struct{ s *memStore }

var _ repository.InventoryRequestRepository = (*memRequestRepo)(nil)

func cloneRequest(req *entity.InventoryRequest) *entity.InventoryRequest {
	cp := *req
	cp.Items = append([]entity.InventoryRequestItem(nil), req.Items...)
	return &cp
}

func (r *memRequestRepo) Create(req *entity.InventoryRequest) error {
	if _, exists := r.s.requests[req.ID]; exists {
		return fmt.Errorf("solicitud duplicada: %s", req.ID)
	}
	r.s.requests[req.ID] = cloneRequest(req)
	return nil
}

func (r *memRequestRepo) GetByID(tenantID, id string) (*entity.InventoryRequest, error) {
	req, ok := r.s.requests[id]
	if !ok || req.TenantID != tenantID {
		return nil, nil
	}
	return cloneRequest(req), nil
}

func (r *memRequestRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.InventoryRequest, error) {
	var out []*entity.InventoryRequest
	for _, req := range r.s.requests {
		if req.TenantID == tenantID {
			out = append(out, cloneRequest(req))
		}
	}
	return out, nil
}

func (r *memRequestRepo) Update(req *entity.InventoryRequest) error {
	if _, ok := r.s.requests[req.ID]; !ok {
		return fmt.Errorf("solicitud inexistente: %s", req.ID)
	}
	r.s.requests[req.ID] = cloneRequest(req)
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.TenantID+"|"+p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(tenantID, id string) (*entity.Product, error) {
	if p, ok := r.s.products[tenantID+"|"+id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.TenantID+"|"+p.ID] = &cp
	return nil
}

func (r *memProductRepo) ListByTenant(tenantID string, search string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.TenantID == tenantID && p.Active {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Deactivate(tenantID, id string) error {
	if p, ok := r.s.products[tenantID+"|"+id]; ok {
		p.Active = false
	}
	return nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

var _ inventory.TxRunner = (*memTxRunner)(nil)

// Run ejecuta fn con repos sobre el store; si fn falla, restaura el snapshot
// previo (rollback).
func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockLevelRepository,
	countRepo repository.InventoryCountRepository,
	requestRepo repository.InventoryRequestRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&memMovementRepo{r.s}, &memStockRepo{r.s}, &memCountRepo{r.s}, &memRequestRepo{r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
