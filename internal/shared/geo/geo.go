package geo

import (
	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const cellPrecision = 7

// DistanceMeters returns the great-circle distance between two points given
// in degrees. Identical points are exactly 0 apart.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return orbgeo.DistanceHaversine(orb.Point{lng1, lat1}, orb.Point{lng2, lat2})
}

func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	return DistanceMeters(lat1, lng1, lat2, lng2) / 1000
}

// Cell returns the geohash cell (~150m) containing the point.
func Cell(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, cellPrecision)
}

// Region returns the bound of a square region spanning meters on each side,
// centred on the point.
func Region(lat, lng, meters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(orb.Point{lng, lat}, meters/2)
}
