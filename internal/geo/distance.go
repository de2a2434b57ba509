package geo

import "math"

const (
	// EarthRadiusMiles - радиус Земли в милях
	EarthRadiusMiles = 3958.75
	// MetersPerMile - приближённый множитель, 1609 вместо 1609.344
	MetersPerMile = 1609.0
	// KmToMiles переводит километры в мили
	KmToMiles = 0.6213711922

	toRadians = math.Pi / 180
)

// Distance возвращает расстояние по большому кругу (haversine) в метрах
func Distance(latA, lngA, latB, lngB float64) float64 {
	latDiff := toRadians * (latB - latA)
	lngDiff := toRadians * (lngB - lngA)

	a := math.Sin(latDiff/2)*math.Sin(latDiff/2) +
		math.Cos(toRadians*latA)*math.Cos(toRadians*latB)*
			math.Sin(lngDiff/2)*math.Sin(lngDiff/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c * MetersPerMile
}

// ValidCoordinates проверяет, что точка лежит в допустимых границах
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
