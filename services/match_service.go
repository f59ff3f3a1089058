package services

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jj55j7/fridge-mate/models"
)

// Profile is the read-only snapshot of a user the match engine scores
// on. Age 0 means not provided; an empty LeftoverVibe means none set.
type Profile struct {
	FoodPreferences []string
	MatchGoal       string
	LeftoverVibe    string
	Age             int
}

// ProfileFromUser extracts the scoring-relevant fields.
func ProfileFromUser(u *models.User) Profile {
	return Profile{
		FoodPreferences: u.PreferenceTags(),
		MatchGoal:       u.MatchGoal,
		LeftoverVibe:    u.LeftoverVibe,
		Age:             u.Age,
	}
}

// Candidate is one potential match, built per request by the discovery
// service. DistanceKm is precomputed (haversine) by the caller.
type Candidate struct {
	UserID     uint     `json:"user_id"`
	Username   string   `json:"username"`
	Bio        string   `json:"bio"`
	PhotoURL   string   `json:"photo_url"`
	Profile    Profile  `json:"-"`
	FoodItems  []string `json:"food_items"`
	DistanceKm float64  `json:"distance_km"`
}

// RankedMatch is a candidate together with its score breakdown.
type RankedMatch struct {
	Candidate     Candidate `json:"candidate"`
	FoodScore     int       `json:"food_score"`
	ProfileScore  int       `json:"profile_score"`
	LocationScore int       `json:"location_score"`
	TotalScore    int       `json:"total_score"`
}

// MatchService is the scoring engine. It is pure computation over the
// injected pairing table; the rand source only feeds the celebratory
// match messages, never the scores. The mutex guards the rand source,
// which is not safe for concurrent use and is shared across handlers.
type MatchService struct {
	table PairingTable
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewMatchService(table PairingTable) *MatchService {
	return NewMatchServiceWithRand(table, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewMatchServiceWithRand(table PairingTable, rng *rand.Rand) *MatchService {
	return &MatchService{table: table, rng: rng}
}

// FoodCompatibility scores how well two leftovers go together, 60–95.
// Direct pairing beats companion overlap beats shared category; two
// foods are never "incompatible", just closer to the 60 baseline.
// Symmetric and case-insensitive; unknown foods fall through to 60.
func (s *MatchService) FoodCompatibility(foodA, foodB string) int {
	a := normaliseFood(foodA)
	b := normaliseFood(foodB)

	if containsFood(s.table.Companions(a), b) || containsFood(s.table.Companions(b), a) {
		return 95
	}

	for _, companion := range s.table.Companions(a) {
		if containsFood(s.table.Companions(b), companion) {
			return 80
		}
	}

	if s.table.SameCategory(a, b) {
		return 75
	}

	return 60
}

var matchTemplates = []string{
	"🍽️ Perfect pairing! {foodA} + {foodB} = culinary magic!",
	"✨ Together you're a dinner party waiting to happen!",
	"🎉 Your {foodA} and their {foodB} are meant to be!",
	"🔥 This food combo is absolutely delicious!",
	"💫 A match made in food heaven!",
	"🍴 Your leftovers were meant to find each other!",
}

// MatchMessage renders a celebratory one-liner for a food pairing.
// Template choice is random; the compatibility suffix is fixed.
func (s *MatchService) MatchMessage(foodA, foodB string, compatibility int) string {
	s.rngMu.Lock()
	tpl := matchTemplates[s.rng.Intn(len(matchTemplates))]
	s.rngMu.Unlock()
	msg := strings.ReplaceAll(tpl, "{foodA}", foodA)
	msg = strings.ReplaceAll(msg, "{foodB}", foodB)
	return fmt.Sprintf("%s (%d%% Meal Match)", msg, compatibility)
}

// ScoreProfileAlignment scores how well two profiles line up. A nil
// requester (no profile set up yet) scores 0 rather than erroring.
func ScoreProfileAlignment(requester *Profile, candidate Profile) int {
	if requester == nil {
		return 0
	}

	score := 0
	for _, tag := range requester.FoodPreferences {
		if containsFood(candidate.FoodPreferences, tag) {
			score += 10
		}
	}
	if requester.MatchGoal != "" && requester.MatchGoal == candidate.MatchGoal {
		score += 15
	}
	if requester.LeftoverVibe != "" && requester.LeftoverVibe == candidate.LeftoverVibe {
		score += 10
	}
	if requester.Age > 0 && candidate.Age > 0 && absInt(requester.Age-candidate.Age) <= 5 {
		score += 5
	}
	return score
}

// ScoreLocation awards closeness in tiers. Boundaries are strict
// less-than: exactly 1.0km lands in the <3 tier.
func ScoreLocation(distanceKm float64) int {
	switch {
	case distanceKm < 1:
		return 20
	case distanceKm < 3:
		return 15
	case distanceKm < 10:
		return 10
	default:
		return 0
	}
}

// BestPairing finds the single best food-to-food pairing across the two
// lists. Returns zero values when either list is empty.
func (s *MatchService) BestPairing(requesterFoods, candidateFoods []string) (mine, theirs string, score int) {
	for _, a := range requesterFoods {
		for _, b := range candidateFoods {
			if v := s.FoodCompatibility(a, b); v > score {
				mine, theirs, score = a, b, v
			}
		}
	}
	return mine, theirs, score
}

// RankCandidates scores every candidate and returns them sorted by
// total score, highest first. The sort is stable so candidates with
// equal totals keep their input order. The food score is the best
// single pairing across the two food lists, not a sum: one great
// pairing is enough.
func (s *MatchService) RankCandidates(requester *Profile, requesterFoods []string, candidates []Candidate) []RankedMatch {
	ranked := make([]RankedMatch, 0, len(candidates))
	for _, c := range candidates {
		_, _, foodScore := s.BestPairing(requesterFoods, c.FoodItems)
		profileScore := ScoreProfileAlignment(requester, c.Profile)
		locationScore := ScoreLocation(c.DistanceKm)
		ranked = append(ranked, RankedMatch{
			Candidate:     c,
			FoodScore:     foodScore,
			ProfileScore:  profileScore,
			LocationScore: locationScore,
			TotalScore:    foodScore + profileScore + locationScore,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})
	return ranked
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
