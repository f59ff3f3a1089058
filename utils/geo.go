package utils

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance between two coordinates
// in kilometers.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FormatDistance renders a distance for display: meters under 1km, one
// decimal under 10km, whole kilometers beyond.
func FormatDistance(distanceKm float64) string {
	switch {
	case distanceKm < 1:
		return fmt.Sprintf("%dm away", int(math.Round(distanceKm*1000)))
	case distanceKm < 10:
		return fmt.Sprintf("%.1fkm away", distanceKm)
	default:
		return fmt.Sprintf("%dkm away", int(math.Round(distanceKm)))
	}
}

type DeliveryStatus struct {
	CanDeliver     bool   `json:"can_deliver"`
	DeliveryTime   string `json:"delivery_time"`
	DeliveryMethod string `json:"delivery_method"`
}

// DeliveryFor estimates whether leftovers can realistically be handed
// over at this distance, and how.
func DeliveryFor(distanceKm float64) DeliveryStatus {
	switch {
	case distanceKm < 0.5:
		return DeliveryStatus{CanDeliver: true, DeliveryTime: "5-10 minutes", DeliveryMethod: "Walking"}
	case distanceKm < 2:
		return DeliveryStatus{CanDeliver: true, DeliveryTime: "10-20 minutes", DeliveryMethod: "Bike"}
	case distanceKm < 5:
		return DeliveryStatus{CanDeliver: true, DeliveryTime: "15-30 minutes", DeliveryMethod: "Car"}
	default:
		return DeliveryStatus{CanDeliver: false, DeliveryTime: "Too far", DeliveryMethod: "Not available"}
	}
}
