package utils

import "math"

const earthRadiusKm = 6371

// HaversineDistance returns the great-circle distance between two points
// in kilometers.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(toRad(lat1))*math.Cos(toRad(lat2))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// BoundingBox returns the latitude/longitude window approximating a radius
// of maxDistance kilometers around a point. One degree of latitude is
// roughly 111.32 km; longitude degrees shrink with the cosine of latitude.
func BoundingBox(lat, lng, maxDistance float64) (minLat, maxLat, minLng, maxLng float64) {
	latDelta := maxDistance / 111.32
	lngDelta := maxDistance / (111.32 * math.Cos(toRad(lat)))

	return lat - latDelta, lat + latDelta, lng - lngDelta, lng + lngDelta
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
