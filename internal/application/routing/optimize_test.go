package routing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fieldservice-api/internal/application/routing"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/geo"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

const tenantA = "tenant-a"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de routing
// ──────────────────────────────────────────────────────────────────────────────

type fakeWorkOrderRepo struct {
	orders map[string]*entity.WorkOrder
}

var _ repository.WorkOrderRepository = (*fakeWorkOrderRepo)(nil)

func (r *fakeWorkOrderRepo) Create(wo *entity.WorkOrder) error {
	r.orders[wo.ID] = wo
	return nil
}

func (r *fakeWorkOrderRepo) GetByID(tenantID, id string) (*entity.WorkOrder, error) {
	wo, ok := r.orders[id]
	if !ok || wo.TenantID != tenantID {
		return nil, nil
	}
	return wo, nil
}

func (r *fakeWorkOrderRepo) Update(wo *entity.WorkOrder) error {
	r.orders[wo.ID] = wo
	return nil
}

func (r *fakeWorkOrderRepo) ListByTenant(tenantID string, status string, limit, offset int) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, wo := range r.orders {
		if wo.TenantID == tenantID {
			out = append(out, wo)
		}
	}
	return out, nil
}

func (r *fakeWorkOrderRepo) CountByTenant(tenantID string) (int, error) {
	return len(r.orders), nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(tenantID, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) ListByTenant(tenantID string, search string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeRouteRepo struct {
	routes map[string]*entity.Route
}

var _ repository.RouteRepository = (*fakeRouteRepo)(nil)

func (r *fakeRouteRepo) Create(route *entity.Route) error {
	r.routes[route.ID] = route
	return nil
}

func (r *fakeRouteRepo) GetByID(tenantID, id string) (*entity.Route, error) {
	route, ok := r.routes[id]
	if !ok || route.TenantID != tenantID {
		return nil, nil
	}
	return route, nil
}

func (r *fakeRouteRepo) Update(route *entity.Route) error {
	r.routes[route.ID] = route
	return nil
}

func (r *fakeRouteRepo) ListByTenant(tenantID string, status string, limit, offset int) ([]*entity.Route, error) {
	var out []*entity.Route
	for _, route := range r.routes {
		if route.TenantID == tenantID && (status == "" || route.Status == status) {
			out = append(out, route)
		}
	}
	return out, nil
}

func (r *fakeRouteRepo) CountByTenant(tenantID string) (int, error) {
	return len(r.routes), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type routeFixture struct {
	workOrders *fakeWorkOrderRepo
	customers  *fakeCustomerRepo
	routes     *fakeRouteRepo
	optimize   *routing.OptimizeUseCase
	routeUC    *routing.RouteUseCase
}

func newRouteFixture(t *testing.T) *routeFixture {
	t.Helper()
	f := &routeFixture{
		workOrders: &fakeWorkOrderRepo{orders: make(map[string]*entity.WorkOrder)},
		customers:  &fakeCustomerRepo{customers: make(map[string]*entity.Customer)},
		routes:     &fakeRouteRepo{routes: make(map[string]*entity.Route)},
	}
	f.optimize = routing.NewOptimizeUseCase(f.workOrders, f.customers)
	f.routeUC = routing.NewRouteUseCase(f.routes, f.optimize)
	return f
}

func fptr(v float64) *float64 { return &v }

// addOrderAt registra un cliente con dirección geocodificada y una orden de
// servicio apuntándole.
func (f *routeFixture) addOrderAt(id string, lat, lng float64) {
	custID := "cust-" + id
	f.customers.customers[custID] = &entity.Customer{
		ID: custID, TenantID: tenantA, Name: "Cliente " + id,
		Addresses: []entity.CustomerAddress{
			{Street: "Secundaria", Lat: fptr(99), Lng: fptr(99)},
			{Street: "Principal", Lat: fptr(lat), Lng: fptr(lng), IsPrimary: true},
		},
	}
	f.workOrders.orders[id] = &entity.WorkOrder{
		ID: id, TenantID: tenantA, Type: entity.WorkOrderInstallation,
		Status: entity.WorkOrderStatusScheduled, CustomerID: custID,
	}
}

// addOrderWithoutCoords orden cuyo cliente no tiene direcciones geocodificadas
// ni la orden coordenada propia.
func (f *routeFixture) addOrderWithoutCoords(id string) {
	custID := "cust-" + id
	f.customers.customers[custID] = &entity.Customer{
		ID: custID, TenantID: tenantA, Name: "Cliente " + id,
		Addresses: []entity.CustomerAddress{{Street: "Sin geocodificar"}},
	}
	f.workOrders.orders[id] = &entity.WorkOrder{
		ID: id, TenantID: tenantA, Type: entity.WorkOrderMaintenance,
		Status: entity.WorkOrderStatusOpen, CustomerID: custID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Optimize
// ──────────────────────────────────────────────────────────────────────────────

// Tres paradas sobre el ecuador: arrancando por la primera, la secuencia
// golosa recorre las longitudes 0 → 1 → 5.
func TestOptimize_OrdenaVecinoMasCercano(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderAt("wo-a", 0, 5)
	f.addOrderAt("wo-b", 0, 0)
	f.addOrderAt("wo-c", 0, 1)

	ordered, err := f.optimize.Optimize(context.Background(), tenantA, []string{"wo-b", "wo-a", "wo-c"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"wo-b", "wo-c", "wo-a"}, ordered)
}

// Con ancla inicial ninguna orden se consume como inicio: desde lng 4 la más
// cercana es lng 5, no la primera de la lista.
func TestOptimize_ConStartNoConsumeOrden(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderAt("wo-a", 0, 0)
	f.addOrderAt("wo-b", 0, 5)

	start := &geo.Point{Lat: 0, Lng: 4}
	ordered, err := f.optimize.Optimize(context.Background(), tenantA, []string{"wo-a", "wo-b"}, start)
	require.NoError(t, err)
	assert.Equal(t, []string{"wo-b", "wo-a"}, ordered)
}

// La coordenada principal sale de la dirección primary del cliente, no de la
// primera de la lista.
func TestOptimize_UsaDireccionPrimaria(t *testing.T) {
	f := newRouteFixture(t)
	// addOrderAt pone una dirección secundaria en (99,99) antes de la primary;
	// si se usara la primera, wo-far quedaría pegado a wo-near.
	f.addOrderAt("wo-near", 0, 1)
	f.addOrderAt("wo-far", 50, 50)

	start := &geo.Point{Lat: 0, Lng: 0}
	ordered, err := f.optimize.Optimize(context.Background(), tenantA, []string{"wo-far", "wo-near"}, start)
	require.NoError(t, err)
	assert.Equal(t, []string{"wo-near", "wo-far"}, ordered)
}

// Sin dirección geocodificada del cliente se usa la coordenada propia de la
// orden.
func TestOptimize_FallbackACoordenadaDeLaOrden(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderAt("wo-a", 0, 5)
	f.addOrderWithoutCoords("wo-b")
	f.workOrders.orders["wo-b"].LocationLat = fptr(0)
	f.workOrders.orders["wo-b"].LocationLng = fptr(1)

	start := &geo.Point{Lat: 0, Lng: 0}
	ordered, err := f.optimize.Optimize(context.Background(), tenantA, []string{"wo-a", "wo-b"}, start)
	require.NoError(t, err)
	assert.Equal(t, []string{"wo-b", "wo-a"}, ordered)
}

// Las órdenes sin coordenadas van al final conservando su orden relativo.
func TestOptimize_SinCoordenadasVanAlFinal(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderWithoutCoords("wo-x")
	f.addOrderAt("wo-a", 0, 1)
	f.addOrderWithoutCoords("wo-y")
	f.addOrderAt("wo-b", 0, 0)

	ordered, err := f.optimize.Optimize(context.Background(), tenantA, []string{"wo-x", "wo-b", "wo-y", "wo-a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"wo-b", "wo-a", "wo-x", "wo-y"}, ordered)
}

// Si ninguna orden tiene coordenadas, la lista vuelve intacta.
func TestOptimize_TodasSinCoordenadasDevuelveEntrada(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderWithoutCoords("wo-1")
	f.addOrderWithoutCoords("wo-2")

	in := []string{"wo-2", "wo-1"}
	ordered, err := f.optimize.Optimize(context.Background(), tenantA, in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, ordered)
}

// Una orden inexistente cuenta como sin coordenadas: no aborta la ruta.
func TestOptimize_OrdenInexistenteNoAborta(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderAt("wo-a", 0, 0)

	ordered, err := f.optimize.Optimize(context.Background(), tenantA, []string{"wo-fantasma", "wo-a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"wo-a", "wo-fantasma"}, ordered)
}

func TestOptimize_EsDeterminista(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderAt("wo-a", -23.55, -46.63)
	f.addOrderAt("wo-b", -23.56, -46.64)
	f.addOrderAt("wo-c", -23.50, -46.60)

	ids := []string{"wo-a", "wo-b", "wo-c"}
	first, err := f.optimize.Optimize(context.Background(), tenantA, ids, nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := f.optimize.Optimize(context.Background(), tenantA, ids, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RouteUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_CreateNumeraParadasYCodigo(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderAt("wo-a", 0, 5)
	f.addOrderAt("wo-b", 0, 0)
	ctx := context.Background()

	route, err := f.routeUC.Create(ctx, routing.CreateRouteInput{
		TenantID:     tenantA,
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TechnicianID: "user-7",
		WorkOrderIDs: []string{"wo-a", "wo-b"},
	})
	require.NoError(t, err)

	assert.Equal(t, "RT-0001", route.Code)
	assert.Equal(t, entity.RouteStatusDraft, route.Status)
	require.Len(t, route.Stops, 2)
	// Sin Optimize se respeta el orden recibido
	assert.Equal(t, "wo-a", route.Stops[0].WorkOrderID)
	assert.Equal(t, 1, route.Stops[0].Order)
	assert.Equal(t, "wo-b", route.Stops[1].WorkOrderID)
	assert.Equal(t, 2, route.Stops[1].Order)
	assert.Equal(t, entity.StopStatusPending, route.Stops[0].Status)

	second, err := f.routeUC.Create(ctx, routing.CreateRouteInput{
		TenantID:     tenantA,
		Date:         time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		WorkOrderIDs: []string{"wo-a"},
	})
	require.NoError(t, err)
	assert.Equal(t, "RT-0002", second.Code, "el código es secuencial por tenant")
}

func TestRoute_CreateConOptimizeReordena(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderAt("wo-a", 0, 5)
	f.addOrderAt("wo-b", 0, 0)
	f.addOrderAt("wo-c", 0, 1)

	route, err := f.routeUC.Create(context.Background(), routing.CreateRouteInput{
		TenantID:     tenantA,
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		WorkOrderIDs: []string{"wo-a", "wo-b", "wo-c"},
		Optimize:     true,
		Start:        &geo.Point{Lat: 0, Lng: 0}, // bodega de salida
	})
	require.NoError(t, err)

	require.Len(t, route.Stops, 3)
	assert.Equal(t, "wo-b", route.Stops[0].WorkOrderID)
	assert.Equal(t, "wo-c", route.Stops[1].WorkOrderID)
	assert.Equal(t, "wo-a", route.Stops[2].WorkOrderID)
}

func TestRoute_CreateSinOrdenes(t *testing.T) {
	f := newRouteFixture(t)
	_, err := f.routeUC.Create(context.Background(), routing.CreateRouteInput{
		TenantID: tenantA,
		Date:     time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoute_UpdateStatus(t *testing.T) {
	f := newRouteFixture(t)
	f.addOrderAt("wo-a", 0, 0)
	ctx := context.Background()

	route, err := f.routeUC.Create(ctx, routing.CreateRouteInput{
		TenantID:     tenantA,
		Date:         time.Now(),
		WorkOrderIDs: []string{"wo-a"},
	})
	require.NoError(t, err)

	updated, err := f.routeUC.UpdateStatus(ctx, tenantA, route.ID, entity.RouteStatusPlanned)
	require.NoError(t, err)
	assert.Equal(t, entity.RouteStatusPlanned, updated.Status)

	_, err = f.routeUC.UpdateStatus(ctx, tenantA, route.ID, "volando")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.routeUC.UpdateStatus(ctx, tenantA, "ruta-fantasma", entity.RouteStatusPlanned)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
