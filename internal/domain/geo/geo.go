// Package geo servicios de dominio geoespaciales puros (sin I/O): distancia
// de gran círculo y secuenciación vecino-más-cercano para rutas de campo.
package geo

import "math"

// Radio medio de la Tierra en kilómetros.
const earthRadiusKm = 6371.0

// Point coordenada geográfica en grados decimales.
type Point struct {
	Lat float64
	Lng float64
}

// Haversine distancia de gran círculo entre dos puntos, en kilómetros.
func Haversine(a, b Point) float64 {
	latA := toRadians(a.Lat)
	latB := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NearestNeighbor devuelve el orden de visita (índices sobre points) según la
// heurística golosa vecino-más-cercano. Si start es nil, el primer punto se
// consume como parada inicial y ancla; con start, ningún punto se consume como
// inicio. Los empates de distancia se resuelven por orden de entrada, así el
// resultado es determinista para las mismas coordenadas.
func NearestNeighbor(points []Point, start *Point) []int {
	if len(points) == 0 {
		return nil
	}
	order := make([]int, 0, len(points))
	visited := make([]bool, len(points))

	var anchor Point
	if start != nil {
		anchor = *start
	} else {
		order = append(order, 0)
		visited[0] = true
		anchor = points[0]
	}

	for len(order) < len(points) {
		best := -1
		bestDist := math.MaxFloat64
		for i, p := range points {
			if visited[i] {
				continue
			}
			// El < estricto conserva el primer mínimo encontrado
			if d := Haversine(anchor, p); d < bestDist {
				best = i
				bestDist = d
			}
		}
		visited[best] = true
		order = append(order, best)
		anchor = points[best]
	}
	return order
}
