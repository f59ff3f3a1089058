package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// Berlin -> Hamburg is roughly 255km.
	d := Haversine(52.5200, 13.4050, 53.5511, 9.9937)
	assert.InDelta(t, 255, d, 5)

	// Same point.
	assert.InDelta(t, 0, Haversine(48.8566, 2.3522, 48.8566, 2.3522), 1e-9)

	// Symmetric.
	assert.InDelta(t,
		Haversine(52.52, 13.40, 53.55, 9.99),
		Haversine(53.55, 9.99, 52.52, 13.40),
		1e-9,
	)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		distanceKm float64
		expected   string
	}{
		{0.3, "300m away"},
		{0.999, "999m away"},
		{1.0, "1.0km away"},
		{2.35, "2.4km away"},
		{9.99, "10.0km away"},
		{10.0, "10km away"},
		{23.6, "24km away"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDistance(tt.distanceKm))
	}
}

func TestDeliveryFor(t *testing.T) {
	assert.Equal(t, "Walking", DeliveryFor(0.2).DeliveryMethod)
	assert.Equal(t, "Bike", DeliveryFor(1.5).DeliveryMethod)
	assert.Equal(t, "Car", DeliveryFor(4.9).DeliveryMethod)

	far := DeliveryFor(8)
	assert.False(t, far.CanDeliver)
}
