package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in decimal degrees
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point lies within latitude/longitude bounds
func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// DistanceKm returns the great-circle distance between two points.
// It mirrors the SQL expression used for distance-sorted queries.
func DistanceKm(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// HaversineSQL returns a SQL expression computing the distance in km from the
// row's latitude/longitude columns to a reference point. It binds three
// parameters in order: reference latitude, reference latitude, reference longitude.
func HaversineSQL(latColumn, lonColumn string) string {
	return "(2 * 6371.0 * ASIN(LEAST(1.0, SQRT(" +
		"POWER(SIN(RADIANS(" + latColumn + " - ?) / 2), 2) + " +
		"COS(RADIANS(?)) * COS(RADIANS(" + latColumn + ")) * " +
		"POWER(SIN(RADIANS(" + lonColumn + " - ?) / 2), 2)))))"
}

// HaversineArgs returns the bind parameters for HaversineSQL
func HaversineArgs(ref Point) []interface{} {
	return []interface{}{ref.Latitude, ref.Latitude, ref.Longitude}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
