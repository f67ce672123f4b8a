package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fieldservice-api/internal/domain/geo"
)

// Un grado de latitud sobre el ecuador equivale a ~111 km.
func TestHaversine_UnGradoSobreEcuador(t *testing.T) {
	d := geo.Haversine(geo.Point{Lat: 0, Lng: 0}, geo.Point{Lat: 0, Lng: 1})
	assert.InDelta(t, 111.0, d, 1.0, "un grado de longitud en el ecuador ≈ 111 km")
}

func TestHaversine_MismoPuntoEsCero(t *testing.T) {
	p := geo.Point{Lat: -23.55, Lng: -46.63}
	assert.Zero(t, geo.Haversine(p, p))
}

func TestHaversine_EsSimetrica(t *testing.T) {
	a := geo.Point{Lat: 4.711, Lng: -74.072}  // Bogotá
	b := geo.Point{Lat: 6.244, Lng: -75.581}  // Medellín
	assert.InDelta(t, geo.Haversine(a, b), geo.Haversine(b, a), 1e-9)
}

// Desde (0,0) el candidato a un grado gana sobre el candidato a diez grados.
func TestNearestNeighbor_EligeElMasCercano(t *testing.T) {
	points := []geo.Point{
		{Lat: 0, Lng: 10},
		{Lat: 0, Lng: 1},
	}
	start := geo.Point{Lat: 0, Lng: 0}
	order := geo.NearestNeighbor(points, &start)
	require.Equal(t, []int{1, 0}, order)
}

// Sin punto de partida, el primer punto se consume como parada inicial.
func TestNearestNeighbor_SinStartConsumeElPrimero(t *testing.T) {
	points := []geo.Point{
		{Lat: 0, Lng: 5},
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 6},
	}
	order := geo.NearestNeighbor(points, nil)
	// Arranca en el índice 0 (lng 5); el más cercano es lng 6, luego lng 0.
	require.Equal(t, []int{0, 2, 1}, order)
}

// Puntos equidistantes: gana el primero en orden de entrada.
func TestNearestNeighbor_EmpateResuelvePorOrdenDeEntrada(t *testing.T) {
	points := []geo.Point{
		{Lat: 0, Lng: 1},
		{Lat: 0, Lng: -1},
	}
	start := geo.Point{Lat: 0, Lng: 0}
	order := geo.NearestNeighbor(points, &start)
	require.Equal(t, []int{0, 1}, order)
}

func TestNearestNeighbor_VacioYUnitario(t *testing.T) {
	assert.Nil(t, geo.NearestNeighbor(nil, nil))
	assert.Equal(t, []int{0}, geo.NearestNeighbor([]geo.Point{{Lat: 1, Lng: 1}}, nil))
}

// Mismo insumo, mismo resultado: la heurística no tiene aleatoriedad.
func TestNearestNeighbor_Determinista(t *testing.T) {
	points := []geo.Point{
		{Lat: -23.55, Lng: -46.63},
		{Lat: -23.56, Lng: -46.64},
		{Lat: -23.50, Lng: -46.60},
		{Lat: -23.60, Lng: -46.70},
	}
	first := geo.NearestNeighbor(points, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, geo.NearestNeighbor(points, nil))
	}
}
