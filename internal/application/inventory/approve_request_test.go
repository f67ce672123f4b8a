package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
)

const supervisorID = "user-super"

func newRequestFixture(t *testing.T) (*memStore, *inventory.RequestUseCase, *inventory.ApproveRequestUseCase) {
	t.Helper()
	s := newMemStore()
	s.addProduct(tenantA, productX, "Roteador ONU")
	s.addProduct(tenantA, "prod-y", "Cable drop")
	requests := inventory.NewRequestUseCase(&memRequestRepo{s})
	approve := inventory.NewApproveRequestUseCase(&memTxRunner{s}, &memRequestRepo{s})
	return s, requests, approve
}

func ptr(n int64) *int64 { return &n }

// Las solicitudes nacen PENDING y sin movimientos asociados.
func TestRequest_CreateNacePendingSinMovimientos(t *testing.T) {
	s, requests, _ := newRequestFixture(t)
	request, err := requests.Create(context.Background(), inventory.CreateRequestInput{
		TenantID:    tenantA,
		RequesterID: tecnicoID,
		Type:        entity.RequestTypeRestock,
		Source:      locWarehouse(bodega),
		Target:      entity.LocationRef{Type: entity.LocationStoreroom, ID: almox},
		Items:       []entity.InventoryRequestItem{{ProductID: productX, Quantity: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, entity.PriorityMedium, request.Priority, "prioridad por defecto")
	assert.Empty(t, s.movements, "crear la solicitud no mueve stock")
}

func TestRequest_CreateValidaciones(t *testing.T) {
	_, requests, _ := newRequestFixture(t)
	ctx := context.Background()
	target := entity.LocationRef{Type: entity.LocationStoreroom, ID: almox}

	cases := []struct {
		name string
		in   inventory.CreateRequestInput
	}{
		{"tipo desconocido", inventory.CreateRequestInput{
			TenantID: tenantA, Type: "LOAN", Target: target,
			Items: []entity.InventoryRequestItem{{ProductID: productX, Quantity: 1}},
		}},
		{"sin items", inventory.CreateRequestInput{
			TenantID: tenantA, Type: entity.RequestTypeRestock, Target: target,
		}},
		{"sin target", inventory.CreateRequestInput{
			TenantID: tenantA, Type: entity.RequestTypeRestock,
			Items: []entity.InventoryRequestItem{{ProductID: productX, Quantity: 1}},
		}},
		{"cantidad cero", inventory.CreateRequestInput{
			TenantID: tenantA, Type: entity.RequestTypeRestock, Target: target,
			Items: []entity.InventoryRequestItem{{ProductID: productX, Quantity: 0}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := requests.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Aprobar emite un movimiento OUT por renglón y mueve el stock del origen al
// destino dentro de una transacción.
func TestApprove_RestockEmiteMovimientos(t *testing.T) {
	s, requests, approve := newRequestFixture(t)
	ctx := context.Background()
	src := locWarehouse(bodega)
	target := entity.LocationRef{Type: entity.LocationStoreroom, ID: almox}
	_, err := (&memStockRepo{s}).ApplyDelta(tenantA, *src, productX, 20)
	require.NoError(t, err)

	request, err := requests.Create(ctx, inventory.CreateRequestInput{
		TenantID: tenantA, RequesterID: tecnicoID, Type: entity.RequestTypeRestock,
		Source: src, Target: target,
		Items: []entity.InventoryRequestItem{
			{ProductID: productX, Quantity: 5},
			{ProductID: "prod-y", Quantity: 3},
		},
	})
	require.NoError(t, err)

	approved, err := approve.Approve(ctx, tenantA, request.ID, supervisorID)
	require.NoError(t, err)

	assert.Equal(t, entity.RequestStatusApproved, approved.Status)
	assert.Equal(t, supervisorID, approved.ApprovedBy)
	require.NotNil(t, approved.ApprovedAt)

	require.Len(t, s.movements, 2, "un movimiento por renglón")
	for _, m := range s.movements {
		assert.Equal(t, entity.MovementTypeOUT, m.Type)
		assert.Equal(t, entity.ReferenceRequest, m.ReferenceType)
		assert.Equal(t, request.ID, m.ReferenceID)
	}
	assert.Equal(t, int64(15), s.balance(tenantA, *src, productX))
	assert.Equal(t, int64(5), s.balance(tenantA, target, productX))
	assert.Equal(t, int64(3), s.balance(tenantA, target, "prod-y"))
}

// ApprovedQuantity manda sobre la cantidad solicitada; renglones en cero se omiten.
func TestApprove_CantidadAprobadaManda(t *testing.T) {
	s, _, approve := newRequestFixture(t)
	ctx := context.Background()
	target := entity.LocationRef{Type: entity.LocationStoreroom, ID: almox}

	request := &entity.InventoryRequest{
		ID: "req-1", TenantID: tenantA, RequesterID: tecnicoID,
		Type: entity.RequestTypeRestock, Status: entity.RequestStatusPending,
		Priority: entity.PriorityHigh, Source: locWarehouse(bodega), Target: target,
		Items: []entity.InventoryRequestItem{
			{ProductID: productX, Quantity: 10, ApprovedQuantity: ptr(4)},
			{ProductID: "prod-y", Quantity: 2, ApprovedQuantity: ptr(0)}, // denegado
		},
		Active: true,
	}
	require.NoError(t, (&memRequestRepo{s}).Create(request))

	_, err := approve.Approve(ctx, tenantA, request.ID, supervisorID)
	require.NoError(t, err)

	require.Len(t, s.movements, 1, "el renglón denegado no genera movimiento")
	assert.Equal(t, int64(4), s.movements[0].Quantity)
	assert.Equal(t, int64(4), s.balance(tenantA, target, productX))
	assert.Equal(t, int64(0), s.balance(tenantA, target, "prod-y"))
}

// RETURN es el inverso semántico: genera IN hacia el destino.
func TestApprove_ReturnGeneraEntrada(t *testing.T) {
	s, requests, approve := newRequestFixture(t)
	ctx := context.Background()
	src := &entity.LocationRef{Type: entity.LocationUser, ID: tecnicoID}
	target := entity.LocationRef{Type: entity.LocationWarehouse, ID: bodega}

	request, err := requests.Create(ctx, inventory.CreateRequestInput{
		TenantID: tenantA, RequesterID: tecnicoID, Type: entity.RequestTypeReturn,
		Source: src, Target: target,
		Items: []entity.InventoryRequestItem{{ProductID: productX, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = approve.Approve(ctx, tenantA, request.ID, supervisorID)
	require.NoError(t, err)

	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementTypeIN, s.movements[0].Type)
	assert.Equal(t, int64(-2), s.balance(tenantA, *src, productX), "sale del técnico")
	assert.Equal(t, int64(2), s.balance(tenantA, target, productX), "entra a la bodega")
}

// La aprobación es exactamente una vez: el segundo intento falla y no duplica
// movimientos.
func TestApprove_ExactamenteUnaVez(t *testing.T) {
	s, requests, approve := newRequestFixture(t)
	ctx := context.Background()
	target := entity.LocationRef{Type: entity.LocationStoreroom, ID: almox}

	request, err := requests.Create(ctx, inventory.CreateRequestInput{
		TenantID: tenantA, RequesterID: tecnicoID, Type: entity.RequestTypeRestock,
		Source: locWarehouse(bodega), Target: target,
		Items: []entity.InventoryRequestItem{{ProductID: productX, Quantity: 5}},
	})
	require.NoError(t, err)

	_, err = approve.Approve(ctx, tenantA, request.ID, supervisorID)
	require.NoError(t, err)

	_, err = approve.Approve(ctx, tenantA, request.ID, supervisorID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Len(t, s.movements, 1, "los movimientos no se duplican")
	assert.Equal(t, int64(5), s.balance(tenantA, target, productX))
}

// Rechazar no mueve stock y también es terminal.
func TestApprove_RejectSinMovimientos(t *testing.T) {
	s, requests, approve := newRequestFixture(t)
	ctx := context.Background()

	request, err := requests.Create(ctx, inventory.CreateRequestInput{
		TenantID: tenantA, RequesterID: tecnicoID, Type: entity.RequestTypeDeployment,
		Target: entity.LocationRef{Type: entity.LocationCustomer, ID: "cust-1"},
		Items:  []entity.InventoryRequestItem{{ProductID: productX, Quantity: 1}},
	})
	require.NoError(t, err)

	rejected, err := approve.Reject(ctx, tenantA, request.ID, supervisorID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, rejected.Status)
	assert.Empty(t, s.movements)

	_, err = approve.Approve(ctx, tenantA, request.ID, supervisorID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "una solicitud rechazada no se puede aprobar")
}

// Si un delta falla a mitad de la aprobación, la solicitud sigue PENDING y el
// ledger queda intacto (rollback completo).
func TestApprove_FalloParcialRevierteTodo(t *testing.T) {
	s, requests, approve := newRequestFixture(t)
	ctx := context.Background()
	src := locWarehouse(bodega)
	target := entity.LocationRef{Type: entity.LocationStoreroom, ID: almox}
	_, err := (&memStockRepo{s}).ApplyDelta(tenantA, *src, productX, 20)
	require.NoError(t, err)

	request, err := requests.Create(ctx, inventory.CreateRequestInput{
		TenantID: tenantA, RequesterID: tecnicoID, Type: entity.RequestTypeRestock,
		Source: src, Target: target,
		Items: []entity.InventoryRequestItem{{ProductID: productX, Quantity: 5}},
	})
	require.NoError(t, err)

	s.failDeltaLocation = target.ID

	_, err = approve.Approve(ctx, tenantA, request.ID, supervisorID)
	require.Error(t, err)

	stored, err := (&memRequestRepo{s}).GetByID(tenantA, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, stored.Status, "la solicitud sigue PENDING tras el rollback")
	assert.Equal(t, int64(20), s.balance(tenantA, *src, productX))
	assert.Empty(t, s.movements)
}
