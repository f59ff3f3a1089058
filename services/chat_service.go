package services

import (
	"errors"
	"time"

	"github.com/jj55j7/fridge-mate/config"
	"github.com/jj55j7/fridge-mate/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnsureConversation returns the conversation between two users,
// creating it if none exists. Participant order is normalized so a
// pair maps to exactly one row.
func EnsureConversation(userA, userB uint) (*models.Conversation, error) {
	if userA == userB {
		return nil, errors.New("cannot start a conversation with yourself")
	}
	a, b := userA, userB
	if b < a {
		a, b = b, a
	}

	var conv models.Conversation
	err := config.DB.Where("user_a = ? AND user_b = ?", a, b).First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conv = models.Conversation{
		ID:        uuid.NewString(),
		UserA:     a,
		UserB:     b,
		CreatedAt: time.Now(),
	}
	if err := config.DB.Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func conversationPartner(conv *models.Conversation, userID uint) uint {
	if conv.UserA == userID {
		return conv.UserB
	}
	return conv.UserA
}

// SendMessage appends to the conversation log and pushes the message to
// the other participant's open websocket connections.
func SendMessage(conversationID string, senderID uint, body string) (*models.Message, error) {
	var conv models.Conversation
	if err := config.DB.First(&conv, "id = ?", conversationID).Error; err != nil {
		return nil, errors.New("conversation not found")
	}
	if conv.UserA != senderID && conv.UserB != senderID {
		return nil, errors.New("not a participant")
	}

	msg := models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := config.DB.Create(&msg).Error; err != nil {
		return nil, err
	}

	NotifyNewMessage(&msg, conversationPartner(&conv, senderID))
	return &msg, nil
}

func ListMessages(conversationID string, userID uint, limit int) ([]models.Message, error) {
	var conv models.Conversation
	if err := config.DB.First(&conv, "id = ?", conversationID).Error; err != nil {
		return nil, errors.New("conversation not found")
	}
	if conv.UserA != userID && conv.UserB != userID {
		return nil, errors.New("not a participant")
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var msgs []models.Message
	err := config.DB.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

func ConversationsFor(userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := config.DB.
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("created_at DESC").
		Find(&convs).Error
	return convs, err
}
