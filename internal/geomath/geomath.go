// Package geomath holds the pure coordinate functions shared by the
// EXIF extractor and the reverse-geocoding resolver.
package geomath

import (
	"math"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// DMSToDecimal converts a degrees/minutes/seconds triple to decimal
// degrees. A single-element slice is treated as an already-decimal
// value and passed through. Any other component count, or a component
// outside degrees [0,90], minutes [0,60), seconds [0,60), fails.
func DMSToDecimal(parts []float64) (float64, bool) {
	switch len(parts) {
	case 3:
		degrees, minutes, seconds := parts[0], parts[1], parts[2]
		if degrees < 0 || degrees > 90 {
			return 0, false
		}
		if minutes < 0 || minutes >= 60 {
			return 0, false
		}
		if seconds < 0 || seconds >= 60 {
			return 0, false
		}
		return degrees + minutes/60 + seconds/3600, true
	case 1:
		return parts[0], true
	default:
		return 0, false
	}
}

// ApplyHemisphere negates a coordinate for the southern and western
// hemispheres. The reference is matched case-insensitively after
// trimming; anything other than S or W, including a missing
// reference, leaves the value unchanged.
func ApplyHemisphere(value float64, ref string) float64 {
	switch strings.ToUpper(strings.TrimSpace(ref)) {
	case "S", "W":
		return -value
	default:
		return value
	}
}

// Haversine returns the great-circle distance in kilometers between
// two points. Symmetric in its arguments; zero for identical points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dlon/2), 2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
