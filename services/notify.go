package services

import (
	"fmt"

	"github.com/jj55j7/fridge-mate/models"
	"github.com/jj55j7/fridge-mate/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type notifyDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _notify notifyDeps

func InitNotify(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_notify = notifyDeps{db: db, rt: rt, ps: ps}
}

// NotifyNewMessage pushes a chat message to the recipient's open
// websocket connections and devices. Safe to call before InitNotify.
func NotifyNewMessage(msg *models.Message, recipientID uint) {
	if _notify.rt != nil {
		_notify.rt.BroadcastEvent(recipientID, map[string]any{
			"kind":    "message.created",
			"message": msg,
		})
	}
	if _notify.ps != nil {
		_notify.ps.PushToUser(recipientID, "New message", msg.Body, map[string]string{
			"conversationId": msg.ConversationID,
		})
	}
}

// NotifyMutualMatch fans a fresh mutual match out to both users:
// websocket event, push, and email, each with the food pairing line
// from the match engine.
func NotifyMutualMatch(match *MatchService, a, b *models.User) {
	notifyOne := func(user, other *models.User) {
		mine := latestFoods(user.ID)
		theirs := latestFoods(other.ID)

		myFood, theirFood, score := match.BestPairing(mine, theirs)
		var line string
		if score > 0 {
			line = match.MatchMessage(myFood, theirFood, score)
		} else {
			line = fmt.Sprintf("You and %s are a leftover match!", other.Username)
		}

		if _notify.rt != nil {
			_notify.rt.BroadcastEvent(user.ID, map[string]any{
				"kind":     "match.mutual",
				"user_id":  other.ID,
				"username": other.Username,
				"message":  line,
			})
		}
		if _notify.ps != nil {
			_notify.ps.PushToUser(user.ID, "It's a match! 💕", line, map[string]string{
				"matchUserId": fmt.Sprintf("%d", other.ID),
			})
		}
		if err := utils.SendMatchEmail(user.Email, other.Username, line); err != nil {
			utils.L().Warn("match email failed", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}

	notifyOne(a, b)
	notifyOne(b, a)
}

func latestFoods(userID uint) []string {
	if _notify.db == nil {
		return nil
	}
	var post models.FoodPost
	if err := _notify.db.Where("user_id = ?", userID).Order("created_at DESC").First(&post).Error; err != nil {
		return nil
	}
	return post.ItemNames()
}
