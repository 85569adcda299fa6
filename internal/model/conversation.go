package model

import "time"

// Conversation is one logged question/answer exchange.
type Conversation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"index;size:64;not null" json:"userId"`
	UserMessage    string    `gorm:"type:text;not null" json:"userMessage"`
	AIResponse     string    `gorm:"type:text;not null" json:"aiResponse"`
	ResponseTimeMs int       `json:"responseTimeMs"`
	ContentType    string    `gorm:"size:16;default:text" json:"contentType"`
	DetectedIntent string    `gorm:"size:32;index" json:"detectedIntent"`
	ObdCode        string    `gorm:"size:8;index" json:"obdCode"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Conversation) TableName() string {
	return "conversations"
}
