// Package location contains pure geographic computation helpers shared by the
// venue and promotion modules.
package location

import (
	"math"

	"eventride/internal/types"
)

const earthRadiusMiles = 3959.0

// DistanceMiles returns the great-circle distance in miles between a and b.
// NaN components propagate; callers validate coordinates first.
func DistanceMiles(a, b types.Coordinate) float64 {
	return earthRadiusMiles * centralAngle(a.Lat, a.Lng, b.Lat, b.Lng)
}

func centralAngle(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// SortByDistance performs an insertion sort (fine for small N) on any slice
// where each element exposes a distance via the accessor function. Equal
// distances keep their input order.
func SortByDistance[T any](items []T, dist func(T) float64) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && dist(items[j]) > dist(key) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}
