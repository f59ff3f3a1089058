package services

import (
	"fmt"
	"time"

	"github.com/jj55j7/fridge-mate/models"
	"github.com/jj55j7/fridge-mate/utils"

	"gorm.io/gorm"
)

const (
	DefaultRadiusKm = 10.0
	activeWindow    = 24 * time.Hour
)

// DiscoveryService builds the candidate list for a matching request:
// users active in the last day with a known location inside the radius,
// each with their latest food post and haversine distance. Ranking
// itself is the match engine's job.
type DiscoveryService struct {
	db    *gorm.DB
	match *MatchService
}

func NewDiscoveryService(db *gorm.DB, match *MatchService) *DiscoveryService {
	return &DiscoveryService{db: db, match: match}
}

func (s *DiscoveryService) Candidates(requester *models.User, radiusKm float64) ([]Candidate, error) {
	if !requester.HasLocation {
		return nil, fmt.Errorf("requester has no location set")
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	cutoff := time.Now().Add(-activeWindow)
	var users []models.User
	err := s.db.
		Where("id <> ? AND has_location = ? AND last_active > ?", requester.ID, true, cutoff).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("load nearby users: %w", err)
	}

	candidates := make([]Candidate, 0, len(users))
	for _, u := range users {
		dist := utils.Haversine(requester.Latitude, requester.Longitude, u.Latitude, u.Longitude)
		if dist > radiusKm {
			continue
		}

		var post models.FoodPost
		var items []string
		if err := s.db.Where("user_id = ?", u.ID).Order("created_at DESC").First(&post).Error; err == nil {
			items = post.ItemNames()
		}

		candidates = append(candidates, Candidate{
			UserID:     u.ID,
			Username:   u.Username,
			Bio:        u.Bio,
			PhotoURL:   u.PhotoURL,
			Profile:    ProfileFromUser(&u),
			FoodItems:  items,
			DistanceKm: dist,
		})
	}
	return candidates, nil
}

// FindMatches runs the full pipeline: candidates, then ranking.
func (s *DiscoveryService) FindMatches(requester *models.User, requesterFoods []string, radiusKm float64) ([]RankedMatch, error) {
	candidates, err := s.Candidates(requester, radiusKm)
	if err != nil {
		return nil, err
	}
	profile := ProfileFromUser(requester)
	return s.match.RankCandidates(&profile, requesterFoods, candidates), nil
}
