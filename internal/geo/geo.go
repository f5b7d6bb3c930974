package geo

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances
	EarthRadiusKm = 6371.0
	// DefaultRadiusKm is the hospital proximity search radius
	DefaultRadiusKm = 10.0
)

// Filter selects points within a fixed radius of a reference point using
// haversine great-circle distance. Both constants are injectable for tests.
type Filter struct {
	RadiusKm      float64
	EarthRadiusKm float64
}

// NewFilter returns a Filter with the production radius and Earth radius
func NewFilter() Filter {
	return Filter{RadiusKm: DefaultRadiusKm, EarthRadiusKm: EarthRadiusKm}
}

// Distance computes the haversine great-circle distance in kilometers
// between (lat1, lon1) and (lat2, lon2), given in degrees.
func (f Filter) Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return f.EarthRadiusKm * c
}

// Within reports whether the point is inside the search radius (inclusive)
func (f Filter) Within(refLat, refLon, lat, lon float64) bool {
	return f.Distance(refLat, refLon, lat, lon) <= f.RadiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
