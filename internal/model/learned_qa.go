package model

import "time"

// LearnedQA is a reinforced question/answer pair keyed by the normalized
// question pattern. Rows are only mutated through the reinforcement upsert.
type LearnedQA struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	QuestionPattern string    `gorm:"uniqueIndex;size:512;not null" json:"questionPattern"`
	BestAnswer      string    `gorm:"type:text;not null" json:"bestAnswer"`
	Category        string    `gorm:"size:32" json:"category"`
	TimesUsed       int       `gorm:"default:1" json:"timesUsed"`
	AvgRating       float64   `gorm:"default:5" json:"avgRating"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (LearnedQA) TableName() string {
	return "learned_qa"
}
