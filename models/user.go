package models

import (
    "strings"
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email    string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`
    Username string `gorm:"uniqueIndex;not null"`
    Bio      string
    PhotoURL string
    Age      int // 0 = not provided

    // Matching profile
    FoodPreferences string // comma-separated tags from FoodPreferenceTags
    MatchGoal       string
    LeftoverVibe    string

    Latitude    float64
    Longitude   float64
    HasLocation bool
    LastActive  time.Time

    ResetToken    string
    ResetTokenExp time.Time
}

// PreferenceTags splits the stored comma-separated preference string.
func (u *User) PreferenceTags() []string {
    if u.FoodPreferences == "" {
        return nil
    }
    parts := strings.Split(u.FoodPreferences, ",")
    tags := make([]string, 0, len(parts))
    for _, p := range parts {
        if t := strings.TrimSpace(p); t != "" {
            tags = append(tags, t)
        }
    }
    return tags
}
