package models

import (
    "strings"

    "gorm.io/gorm"
)

// A FoodPost is what a user currently has in the fridge: the uploaded
// photo plus the recognized (or manually entered) food names.
type FoodPost struct {
    gorm.Model
    UserID      uint `gorm:"index"`
    PhotoURL    string
    Items       string // comma-separated food names
    PrimaryFood string
    Cuisine     string
}

func (p *FoodPost) ItemNames() []string {
    if p.Items == "" {
        return nil
    }
    parts := strings.Split(p.Items, ",")
    names := make([]string, 0, len(parts))
    for _, s := range parts {
        if n := strings.TrimSpace(s); n != "" {
            names = append(names, n)
        }
    }
    return names
}

func JoinItemNames(names []string) string {
    return strings.Join(names, ",")
}
