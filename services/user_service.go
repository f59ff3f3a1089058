package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/jj55j7/fridge-mate/config"
	"github.com/jj55j7/fridge-mate/models"
)

type ProfileUpdate struct {
	Bio             *string  `json:"bio"`
	Age             *int     `json:"age"`
	FoodPreferences []string `json:"food_preferences"`
	MatchGoal       *string  `json:"match_goal"`
	LeftoverVibe    *string  `json:"leftover_vibe"`
}

func GetUserProfile(email string) (*models.User, error) {
	return FindUserByEmail(email)
}

// UpdateUserProfile applies a partial profile update. Preference tags,
// goal and vibe must come from the fixed option lists.
func UpdateUserProfile(email string, in ProfileUpdate) (*models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	if in.FoodPreferences != nil {
		for _, tag := range in.FoodPreferences {
			if !models.ValidFoodPreference(tag) {
				return nil, fmt.Errorf("unknown food preference %q", tag)
			}
		}
		user.FoodPreferences = strings.Join(in.FoodPreferences, ",")
	}
	if in.MatchGoal != nil {
		if *in.MatchGoal != "" && !models.ValidMatchGoal(*in.MatchGoal) {
			return nil, fmt.Errorf("unknown match goal %q", *in.MatchGoal)
		}
		user.MatchGoal = *in.MatchGoal
	}
	if in.LeftoverVibe != nil {
		if *in.LeftoverVibe != "" && !models.ValidLeftoverVibe(*in.LeftoverVibe) {
			return nil, fmt.Errorf("unknown leftover vibe %q", *in.LeftoverVibe)
		}
		user.LeftoverVibe = *in.LeftoverVibe
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return nil, fmt.Errorf("age must be positive")
		}
		user.Age = *in.Age
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateLocation stores the user's coordinates and bumps LastActive so
// they show up in discovery.
func UpdateLocation(email string, lat, lng float64) (*models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	user.Latitude = lat
	user.Longitude = lng
	user.HasLocation = true
	user.LastActive = time.Now()

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func TouchLastActive(userID uint) {
	config.DB.Model(&models.User{}).Where("id = ?", userID).Update("last_active", time.Now())
}
