package models

// Fixed option lists the app offers during profile setup. Profile updates
// are validated against these.

var FoodPreferenceTags = []string{
	"Vegetarian",
	"Vegan",
	"Halal",
	"Kosher",
	"Gluten-Free",
	"Dairy-Free",
	"Nut-Free",
	"Anything-goes",
}

var MatchGoals = []string{
	"Looking to share leftovers",
	"Cooking collab",
	"Sustainable food buddy",
	"Date night material",
}

var LeftoverVibes = []string{
	"Always have pizza",
	"Meal prep enthusiast",
	"Serial bruncher",
	"Leftover wizard",
	"Fridge forager",
	"Creative cook",
}

func ValidFoodPreference(tag string) bool { return containsOption(FoodPreferenceTags, tag) }
func ValidMatchGoal(goal string) bool     { return containsOption(MatchGoals, goal) }
func ValidLeftoverVibe(vibe string) bool  { return containsOption(LeftoverVibes, vibe) }

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
