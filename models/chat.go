package models

import (
    "time"

    "gorm.io/gorm"
)

type Conversation struct {
    ID        string `gorm:"primaryKey"` // uuid
    UserA     uint   `gorm:"index"`
    UserB     uint   `gorm:"index"`
    CreatedAt time.Time
    Messages  []Message `gorm:"foreignKey:ConversationID"`
}

type Message struct {
    gorm.Model
    ConversationID string `gorm:"index;not null"`
    SenderID       uint
    Body           string `gorm:"not null"`
}
