// Package repository implements the data access layer.
package repository

import (
	"gorm.io/gorm"

	"kounhany-ai-go/internal/model"
)

// IntentCount is one row of the intent distribution aggregate.
type IntentCount struct {
	DetectedIntent string `json:"intent"`
	Count          int64  `json:"count"`
}

// CodeCount is one row of the most-queried OBD codes aggregate.
type CodeCount struct {
	ObdCode string `json:"obdCode"`
	Count   int64  `json:"count"`
}

// StrugglingQuestion is a logged question whose answer looks weak, either
// too short or containing a refusal phrase.
type StrugglingQuestion struct {
	UserMessage string `json:"userMessage"`
	AIResponse  string `json:"aiResponse"`
	CreatedAt   string `json:"createdAt"`
}

// ConversationRepository persists the full conversation log and serves the
// aggregates the analytics endpoints expose.
type ConversationRepository interface {
	Create(conv *model.Conversation) error
	DeleteByUserID(userID string) (int64, error)
	CountTotal() (int64, error)
	CountToday(date string) (int64, error)
	CountDistinctUsers() (int64, error)
	IntentDistribution() ([]IntentCount, error)
	TopObdCodes(limit int) ([]CodeCount, error)
	StrugglingQuestions(limit int) ([]StrugglingQuestion, error)
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new ConversationRepository instance.
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(conv *model.Conversation) error {
	return r.db.Create(conv).Error
}

func (r *conversationRepository) DeleteByUserID(userID string) (int64, error) {
	res := r.db.Where("user_id = ?", userID).Delete(&model.Conversation{})
	return res.RowsAffected, res.Error
}

func (r *conversationRepository) CountTotal() (int64, error) {
	var total int64
	err := r.db.Model(&model.Conversation{}).Count(&total).Error
	return total, err
}

func (r *conversationRepository) CountToday(date string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Conversation{}).
		Where("DATE(created_at) = ?", date).
		Count(&total).Error
	return total, err
}

func (r *conversationRepository) CountDistinctUsers() (int64, error) {
	var total int64
	err := r.db.Model(&model.Conversation{}).
		Distinct("user_id").
		Count(&total).Error
	return total, err
}

func (r *conversationRepository) IntentDistribution() ([]IntentCount, error) {
	var rows []IntentCount
	err := r.db.Model(&model.Conversation{}).
		Select("detected_intent, COUNT(*) AS count").
		Group("detected_intent").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *conversationRepository) TopObdCodes(limit int) ([]CodeCount, error) {
	var rows []CodeCount
	err := r.db.Model(&model.Conversation{}).
		Select("obd_code, COUNT(*) AS count").
		Where("obd_code <> ''").
		Group("obd_code").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// StrugglingQuestions returns recent exchanges where the assistant gave a
// short or apologetic answer. These feed the admin review queue.
func (r *conversationRepository) StrugglingQuestions(limit int) ([]StrugglingQuestion, error) {
	var rows []StrugglingQuestion
	err := r.db.Model(&model.Conversation{}).
		Select("user_message, ai_response, DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s') AS created_at").
		Where("LENGTH(ai_response) < 50 OR ai_response LIKE ? OR ai_response LIKE ? OR ai_response LIKE ?",
			"%je ne sais pas%", "%je ne peux pas%", "%désolé%").
		Order("created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
