package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

const (
	tenantA   = "tenant-a"
	productX  = "prod-x"
	bodega    = "wh-1"
	almox     = "sr-1"
	tecnicoID = "user-7"
)

func newRecordFixture(t *testing.T) (*memStore, *inventory.RecordMovementUseCase) {
	t.Helper()
	s := newMemStore()
	s.addProduct(tenantA, productX, "Roteador ONU")
	uc := inventory.NewRecordMovementUseCase(&memTxRunner{s}, &memProductRepo{s})
	return s, uc
}

func locWarehouse(id string) *entity.LocationRef {
	return &entity.LocationRef{Type: entity.LocationWarehouse, ID: id}
}

func locStoreroom(id string) *entity.LocationRef {
	return &entity.LocationRef{Type: entity.LocationStoreroom, ID: id}
}

// Un traslado debe generar UN solo movimiento y mover la cantidad exacta:
// -q en el origen, +q en el destino.
func TestRecordMovement_TransferConservaCantidad(t *testing.T) {
	s, uc := newRecordFixture(t)
	src, dst := locWarehouse(bodega), locStoreroom(almox)

	// saldo inicial en la bodega
	_, err := (&memStockRepo{s}).ApplyDelta(tenantA, *src, productX, 10)
	require.NoError(t, err)

	movement, err := uc.Record(context.Background(), inventory.MovementInput{
		TenantID:  tenantA,
		ActorID:   tecnicoID,
		Type:      entity.MovementTypeTRANSFER,
		ProductID: productX,
		Quantity:  4,
		Source:    src,
		Target:    dst,
	})
	require.NoError(t, err)
	require.NotNil(t, movement)

	assert.Equal(t, int64(6), s.balance(tenantA, *src, productX), "el origen debe quedar en 10-4")
	assert.Equal(t, int64(4), s.balance(tenantA, *dst, productX), "el destino debe quedar en 0+4")
	assert.Len(t, s.movements, 1, "un traslado es UN movimiento, no dos")
	assert.Equal(t, entity.MovementTypeTRANSFER, s.movements[0].Type)
}

// Una salida mayor al saldo disponible debe producir saldo negativo
// aritméticamente correcto, nunca bloquearse ni recortarse.
func TestRecordMovement_SalidaPermiteSaldoNegativo(t *testing.T) {
	s, uc := newRecordFixture(t)
	src := locStoreroom(almox)

	_, err := (&memStockRepo{s}).ApplyDelta(tenantA, *src, productX, 3)
	require.NoError(t, err)

	_, err = uc.Record(context.Background(), inventory.MovementInput{
		TenantID:  tenantA,
		ActorID:   tecnicoID,
		Type:      entity.MovementTypeOUT,
		ProductID: productX,
		Quantity:  5,
		Source:    src,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(-2), s.balance(tenantA, *src, productX),
		"3 - 5 = -2: el saldo negativo es visible, no se recorta a cero")
}

// Una entrada pura (solo destino) crea el registro de stock con upsert.
func TestRecordMovement_EntradaCreaRegistro(t *testing.T) {
	s, uc := newRecordFixture(t)
	dst := locWarehouse(bodega)

	_, err := uc.Record(context.Background(), inventory.MovementInput{
		TenantID:  tenantA,
		ActorID:   tecnicoID,
		Type:      entity.MovementTypeIN,
		ProductID: productX,
		Quantity:  7,
		Target:    dst,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.balance(tenantA, *dst, productX))
}

func TestRecordMovement_Validaciones(t *testing.T) {
	_, uc := newRecordFixture(t)
	ctx := context.Background()
	dst := locWarehouse(bodega)

	cases := []struct {
		name string
		in   inventory.MovementInput
	}{
		{"cantidad cero", inventory.MovementInput{
			TenantID: tenantA, Type: entity.MovementTypeIN, ProductID: productX, Quantity: 0, Target: dst,
		}},
		{"cantidad negativa", inventory.MovementInput{
			TenantID: tenantA, Type: entity.MovementTypeIN, ProductID: productX, Quantity: -3, Target: dst,
		}},
		{"sin origen ni destino", inventory.MovementInput{
			TenantID: tenantA, Type: entity.MovementTypeADJUSTMENT, ProductID: productX, Quantity: 1,
		}},
		{"tipo desconocido", inventory.MovementInput{
			TenantID: tenantA, Type: "TELEPORT", ProductID: productX, Quantity: 1, Target: dst,
		}},
		{"tipo de ubicación inválido", inventory.MovementInput{
			TenantID: tenantA, Type: entity.MovementTypeIN, ProductID: productX, Quantity: 1,
			Target: &entity.LocationRef{Type: "Truck", ID: "t-1"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Record(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidMovement)
		})
	}
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	_, uc := newRecordFixture(t)
	_, err := uc.Record(context.Background(), inventory.MovementInput{
		TenantID:  tenantA,
		Type:      entity.MovementTypeIN,
		ProductID: "prod-fantasma",
		Quantity:  1,
		Target:    locWarehouse(bodega),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el delta del destino falla a mitad de transacción, ni el movimiento ni el
// delta del origen deben quedar persistidos.
func TestRecordMovement_FalloParcialNoDejaRastro(t *testing.T) {
	s, uc := newRecordFixture(t)
	src, dst := locWarehouse(bodega), locStoreroom(almox)

	_, err := (&memStockRepo{s}).ApplyDelta(tenantA, *src, productX, 10)
	require.NoError(t, err)

	s.failDeltaLocation = dst.ID

	_, err = uc.Record(context.Background(), inventory.MovementInput{
		TenantID:  tenantA,
		ActorID:   tecnicoID,
		Type:      entity.MovementTypeTRANSFER,
		ProductID: productX,
		Quantity:  4,
		Source:    src,
		Target:    dst,
	})
	require.Error(t, err)

	assert.Equal(t, int64(10), s.balance(tenantA, *src, productX), "el origen debe quedar intacto")
	assert.Equal(t, int64(0), s.balance(tenantA, *dst, productX))
	assert.Empty(t, s.movements, "el movimiento no debe persistirse si la tx falla")
}

// El histórico debe filtrar por producto y por ubicación (origen o destino).
func TestListMovements_Filtros(t *testing.T) {
	s, uc := newRecordFixture(t)
	s.addProduct(tenantA, "prod-y", "Cable drop")
	query := inventory.NewStockQueryUseCase(&memStockRepo{s}, &memMovementRepo{s})
	ctx := context.Background()

	_, err := uc.Record(ctx, inventory.MovementInput{
		TenantID: tenantA, ActorID: tecnicoID, Type: entity.MovementTypeIN,
		ProductID: productX, Quantity: 5, Target: locWarehouse(bodega),
	})
	require.NoError(t, err)
	_, err = uc.Record(ctx, inventory.MovementInput{
		TenantID: tenantA, ActorID: tecnicoID, Type: entity.MovementTypeIN,
		ProductID: "prod-y", Quantity: 2, Target: locStoreroom(almox),
	})
	require.NoError(t, err)

	byProduct, err := query.ListMovements(ctx, tenantA, repository.MovementFilter{ProductID: productX}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, byProduct, 1)
	assert.Equal(t, productX, byProduct[0].ProductID)

	byLocation, err := query.ListMovements(ctx, tenantA, repository.MovementFilter{LocationID: almox}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, byLocation, 1)
	assert.Equal(t, "prod-y", byLocation[0].ProductID)
}
