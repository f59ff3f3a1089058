package models

import "gorm.io/gorm"

// MatchRecord stores one user liking another. Mutual is set on both
// rows once the like is returned.
type MatchRecord struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex:idx_like_pair"`
	TargetID uint `gorm:"uniqueIndex:idx_like_pair"`
	Mutual   bool
}
