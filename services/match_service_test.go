package services

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatchService() *MatchService {
	return NewMatchServiceWithRand(DefaultPairingTable(), rand.New(rand.NewSource(1)))
}

func TestFoodCompatibility_Tiers(t *testing.T) {
	svc := testMatchService()

	tests := []struct {
		name     string
		foodA    string
		foodB    string
		expected int
	}{
		{
			name:     "direct pairing",
			foodA:    "pasta",
			foodB:    "garlic bread",
			expected: 95,
		},
		{
			name:     "direct pairing listed only on one side",
			foodA:    "garlic bread",
			foodB:    "pasta",
			expected: 95,
		},
		{
			name:     "companion overlap", // pizza and burger both pair with salad
			foodA:    "pizza",
			foodB:    "burger",
			expected: 80,
		},
		{
			name:     "same category without overlap", // macaroni has no companion list
			foodA:    "spaghetti",
			foodB:    "macaroni",
			expected: 75,
		},
		{
			name:     "unknown foods fall back to baseline",
			foodA:    "mystery stew",
			foodB:    "space cake",
			expected: 60,
		},
		{
			name:     "case and whitespace insensitive",
			foodA:    "  PASTA ",
			foodB:    "Garlic Bread",
			expected: 95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.FoodCompatibility(tt.foodA, tt.foodB))
		})
	}
}

func TestFoodCompatibility_Symmetry(t *testing.T) {
	svc := testMatchService()

	pairs := [][2]string{
		{"pasta", "garlic bread"},
		{"pizza", "burger"},
		{"spaghetti", "macaroni"},
		{"sushi", "tacos"},
		{"mystery stew", "pizza"},
	}
	for _, p := range pairs {
		assert.Equal(t, svc.FoodCompatibility(p[0], p[1]), svc.FoodCompatibility(p[1], p[0]),
			"score(%s,%s) must equal score(%s,%s)", p[0], p[1], p[1], p[0])
	}
}

func TestFoodCompatibility_BaselineFloor(t *testing.T) {
	svc := testMatchService()

	foods := []string{"pasta", "sushi", "burger", "tacos", "cake", "mystery stew", ""}
	for _, a := range foods {
		for _, b := range foods {
			score := svc.FoodCompatibility(a, b)
			assert.GreaterOrEqual(t, score, 60)
			assert.LessOrEqual(t, score, 95)
		}
	}
}

func TestFoodCompatibility_DirectPairingWins(t *testing.T) {
	// A direct pairing returns 95 even when a category or companion
	// overlap would also apply.
	table := NewPairingTable(
		map[string][]string{
			"spaghetti": {"lasagna", "wine"},
			"lasagna":   {"wine"},
		},
		map[string][]string{
			"pasta": {"spaghetti", "lasagna"},
		},
	)
	svc := NewMatchServiceWithRand(table, rand.New(rand.NewSource(1)))

	assert.Equal(t, 95, svc.FoodCompatibility("spaghetti", "lasagna"))
}

func TestScoreLocation_TierBoundaries(t *testing.T) {
	tests := []struct {
		distanceKm float64
		expected   int
	}{
		{0, 20},
		{0.999, 20},
		{1.0, 15},
		{2.999, 15},
		{3.0, 10},
		{9.999, 10},
		{10.0, 0},
		{42.5, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.3fkm", tt.distanceKm), func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreLocation(tt.distanceKm))
		})
	}
}

func TestScoreProfileAlignment(t *testing.T) {
	tests := []struct {
		name      string
		requester *Profile
		candidate Profile
		expected  int
	}{
		{
			name:      "nil requester scores zero",
			requester: nil,
			candidate: Profile{MatchGoal: "Cooking collab"},
			expected:  0,
		},
		{
			name:      "nothing in common",
			requester: &Profile{FoodPreferences: []string{"Vegan"}, MatchGoal: "Cooking collab"},
			candidate: Profile{FoodPreferences: []string{"Halal"}, MatchGoal: "Date night material"},
			expected:  0,
		},
		{
			name: "full additivity",
			requester: &Profile{
				FoodPreferences: []string{"Vegetarian", "Gluten-Free"},
				MatchGoal:       "Looking to share leftovers",
				LeftoverVibe:    "Meal prep enthusiast",
				Age:             28,
			},
			candidate: Profile{
				FoodPreferences: []string{"Vegetarian", "Gluten-Free", "Nut-Free"},
				MatchGoal:       "Looking to share leftovers",
				LeftoverVibe:    "Meal prep enthusiast",
				Age:             31,
			},
			expected: 2*10 + 15 + 10 + 5,
		},
		{
			name:      "empty vibes on both sides do not count as a match",
			requester: &Profile{MatchGoal: "Cooking collab"},
			candidate: Profile{MatchGoal: "Cooking collab"},
			expected:  15,
		},
		{
			name:      "missing ages skip the age bonus",
			requester: &Profile{Age: 30},
			candidate: Profile{},
			expected:  0,
		},
		{
			name:      "ages just outside the window",
			requester: &Profile{Age: 30},
			candidate: Profile{Age: 36},
			expected:  0,
		},
		{
			name:      "ages exactly five apart",
			requester: &Profile{Age: 30},
			candidate: Profile{Age: 25},
			expected:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreProfileAlignment(tt.requester, tt.candidate))
		})
	}
}

func TestBestPairing_PicksSingleBest(t *testing.T) {
	table := NewPairingTable(
		map[string][]string{
			"pizza": {"salad"},
			"tacos": {"salad"},
		},
		nil,
	)
	svc := NewMatchServiceWithRand(table, rand.New(rand.NewSource(1)))

	requesterFoods := []string{"Pizza", "Salad"}
	candidateFoods := []string{"Garlic Bread", "Tacos"}

	// The best pairing is the max of the four pairwise scores.
	best := 0
	for _, a := range requesterFoods {
		for _, b := range candidateFoods {
			if v := svc.FoodCompatibility(a, b); v > best {
				best = v
			}
		}
	}

	mine, theirs, score := svc.BestPairing(requesterFoods, candidateFoods)
	assert.Equal(t, best, score)
	assert.Equal(t, 95, score) // salad + tacos is a direct pairing
	assert.Equal(t, "Salad", mine)
	assert.Equal(t, "Tacos", theirs)
}

func TestBestPairing_EmptyLists(t *testing.T) {
	svc := testMatchService()

	_, _, score := svc.BestPairing(nil, []string{"pizza"})
	assert.Equal(t, 0, score)

	_, _, score = svc.BestPairing([]string{"pizza"}, nil)
	assert.Equal(t, 0, score)
}

func TestRankCandidates_StableOrdering(t *testing.T) {
	svc := testMatchService()

	// No foods and no profile: only the location tier differs, so X and
	// Z tie and must keep their input order around Y.
	candidates := []Candidate{
		{UserID: 1, Username: "X", DistanceKm: 5},   // 10
		{UserID: 2, Username: "Y", DistanceKm: 0.5}, // 20
		{UserID: 3, Username: "Z", DistanceKm: 5},   // 10
	}

	ranked := svc.RankCandidates(nil, nil, candidates)
	require.Len(t, ranked, 3)
	assert.Equal(t, uint(2), ranked[0].Candidate.UserID)
	assert.Equal(t, uint(1), ranked[1].Candidate.UserID)
	assert.Equal(t, uint(3), ranked[2].Candidate.UserID)
}

func TestRankCandidates_ScoreBreakdown(t *testing.T) {
	table := NewPairingTable(
		map[string][]string{
			"pizza margherita": {"garlic bread", "salad"},
		},
		nil,
	)
	svc := NewMatchServiceWithRand(table, rand.New(rand.NewSource(1)))

	profile := &Profile{
		FoodPreferences: []string{"Vegetarian"},
		MatchGoal:       "Looking to share leftovers",
	}
	candidates := []Candidate{{
		UserID: 7,
		Profile: Profile{
			FoodPreferences: []string{"Vegetarian"},
			MatchGoal:       "Looking to share leftovers",
		},
		FoodItems:  []string{"Garlic Bread"},
		DistanceKm: 0.5,
	}}

	ranked := svc.RankCandidates(profile, []string{"Pizza Margherita"}, candidates)
	require.Len(t, ranked, 1)

	m := ranked[0]
	assert.Equal(t, 95, m.FoodScore)
	assert.Equal(t, 25, m.ProfileScore) // shared preference + shared goal
	assert.Equal(t, 20, m.LocationScore)
	assert.Equal(t, 140, m.TotalScore)
	assert.Equal(t, m.FoodScore+m.ProfileScore+m.LocationScore, m.TotalScore)
}

func TestRankCandidates_EmptyInputs(t *testing.T) {
	svc := testMatchService()

	ranked := svc.RankCandidates(&Profile{}, []string{"pizza"}, nil)
	assert.Empty(t, ranked)

	// A candidate with no declared foods gets food score 0, not an error.
	ranked = svc.RankCandidates(&Profile{}, []string{"pizza"}, []Candidate{{UserID: 1}})
	require.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].FoodScore)
}

func TestMatchMessage(t *testing.T) {
	svc := testMatchService()

	msg := svc.MatchMessage("Pizza", "Salad", 95)
	assert.True(t, strings.HasSuffix(msg, "(95% Meal Match)"), "got %q", msg)

	// The body must be one of the known templates with the food names
	// filled in.
	body := strings.TrimSuffix(msg, " (95% Meal Match)")
	var known []string
	for _, tpl := range matchTemplates {
		s := strings.ReplaceAll(tpl, "{foodA}", "Pizza")
		s = strings.ReplaceAll(s, "{foodB}", "Salad")
		known = append(known, s)
	}
	assert.Contains(t, known, body)
}

// Run with -race: the shared rand source must be safe to use from
// concurrent request handlers.
func TestMatchMessage_ConcurrentUse(t *testing.T) {
	svc := testMatchService()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				msg := svc.MatchMessage("Pizza", "Salad", 95)
				assert.True(t, strings.HasSuffix(msg, "(95% Meal Match)"), "got %q", msg)
			}
		}()
	}
	wg.Wait()
}

func TestMatchMessage_DeterministicWithSeededRand(t *testing.T) {
	a := NewMatchServiceWithRand(DefaultPairingTable(), rand.New(rand.NewSource(42)))
	b := NewMatchServiceWithRand(DefaultPairingTable(), rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.MatchMessage("Curry", "Rice", 80), b.MatchMessage("Curry", "Rice", 80))
	}
}
