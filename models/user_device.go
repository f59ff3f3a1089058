package models

import "time"

type UserDevice struct {
    ID          uint `gorm:"primaryKey"`
    UserID      uint `gorm:"index"`
    Platform    string
    TokenHash   string `gorm:"index"`
    EndpointARN string
    Enabled     bool `gorm:"default:true"`
    UpdatedAt   time.Time
}
