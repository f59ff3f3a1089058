package services

import (
	"errors"

	"github.com/jj55j7/fridge-mate/config"
	"github.com/jj55j7/fridge-mate/models"

	"gorm.io/gorm"
)

// RecordLike stores a like and reports whether it completed a mutual
// match. On a mutual match both rows are flagged and the match alert
// fan-out (websocket, push, email) fires for both users.
func RecordLike(match *MatchService, userID, targetID uint) (bool, error) {
	if userID == targetID {
		return false, errors.New("cannot like yourself")
	}

	var target models.User
	if err := config.DB.First(&target, targetID).Error; err != nil {
		return false, errors.New("target user not found")
	}

	like := models.MatchRecord{UserID: userID, TargetID: targetID}
	if err := config.DB.Where("user_id = ? AND target_id = ?", userID, targetID).
		FirstOrCreate(&like).Error; err != nil {
		return false, err
	}

	var reverse models.MatchRecord
	err := config.DB.Where("user_id = ? AND target_id = ?", targetID, userID).First(&reverse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := config.DB.Model(&models.MatchRecord{}).
		Where("(user_id = ? AND target_id = ?) OR (user_id = ? AND target_id = ?)",
			userID, targetID, targetID, userID).
		Update("mutual", true).Error; err != nil {
		return false, err
	}

	var me models.User
	if err := config.DB.First(&me, userID).Error; err != nil {
		return true, err
	}
	NotifyMutualMatch(match, &me, &target)
	return true, nil
}

// MutualMatchesFor lists the users this user has matched with.
func MutualMatchesFor(userID uint) ([]models.User, error) {
	var records []models.MatchRecord
	if err := config.DB.Where("user_id = ? AND mutual = ?", userID, true).Find(&records).Error; err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.TargetID)
	}

	var users []models.User
	err := config.DB.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
