package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizeFromText(t *testing.T) {
	res, err := RecognizeFromText("IMG_2041_leftover_pizza_slice.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Pizza", res.PrimaryFood)
	assert.Equal(t, "Italian", res.Cuisine)
	require.NotEmpty(t, res.Foods)
	assert.Equal(t, 0.5, res.Foods[0].Confidence)
}

func TestRecognizeFromText_MultiWordWinsOverSubstring(t *testing.T) {
	res, err := RecognizeFromText("half a box of fried rice")
	require.NoError(t, err)
	assert.Equal(t, "Fried Rice", res.PrimaryFood)
	assert.Equal(t, "Asian", res.Cuisine)
}

func TestRecognizeFromText_NothingRecognized(t *testing.T) {
	_, err := RecognizeFromText("IMG_0001.jpg")
	assert.ErrorIs(t, err, ErrNoFoodDetected)
}

func TestCuisineFor(t *testing.T) {
	tests := []struct {
		food    string
		cuisine string
	}{
		{"Pizza Margherita", "Italian"},
		{"Chicken Curry", "Asian"},
		{"Beef Tacos", "Mexican"},
		{"Cheeseburger", "American"},
		{"Mystery Stew", "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.cuisine, CuisineFor(tt.food), tt.food)
	}
}

func TestRecognizeFood_NotConfigured(t *testing.T) {
	var svc *RecognitionService
	_, err := svc.RecognizeFood(context.Background(), "data:image/jpeg;base64,AAAA")
	assert.Error(t, err)
}
