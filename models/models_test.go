package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceTags(t *testing.T) {
	u := User{FoodPreferences: "Vegetarian, Gluten-Free ,Nut-Free"}
	assert.Equal(t, []string{"Vegetarian", "Gluten-Free", "Nut-Free"}, u.PreferenceTags())

	empty := User{}
	assert.Nil(t, empty.PreferenceTags())
}

func TestFoodPostItemNames(t *testing.T) {
	p := FoodPost{Items: "Pizza Margherita, Garlic Bread,"}
	assert.Equal(t, []string{"Pizza Margherita", "Garlic Bread"}, p.ItemNames())

	assert.Nil(t, (&FoodPost{}).ItemNames())
}

func TestProfileOptionValidation(t *testing.T) {
	assert.True(t, ValidFoodPreference("Vegan"))
	assert.False(t, ValidFoodPreference("Carnivore"))

	assert.True(t, ValidMatchGoal("Cooking collab"))
	assert.False(t, ValidMatchGoal("cooking collab")) // options are exact strings

	assert.True(t, ValidLeftoverVibe("Fridge forager"))
	assert.False(t, ValidLeftoverVibe(""))
}
