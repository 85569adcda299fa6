package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kounhany-ai-go/internal/model"
)

// StatsRepository maintains the per-question counters and the daily
// aggregate row used by the dashboard.
type StatsRepository interface {
	RecordQuestion(normalized, category string) error
	RecordDaily(date, intent, obdCode string, responseTimeMs int) error
	RefreshUniqueUsers(date string) error
	TopQuestions(limit int) ([]model.QuestionStat, error)
	RecentDaily(days int) ([]model.DailyStat, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository instance.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) RecordQuestion(normalized, category string) error {
	if normalized == "" {
		return nil
	}
	stat := &model.QuestionStat{
		QuestionNormalized: normalized,
		Count:              1,
		LastAsked:          model.LocalTime(time.Now()),
		Category:           category,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_normalized"}},
		DoUpdates: clause.Set{
			{Column: clause.Column{Name: "count"}, Value: gorm.Expr("count + 1")},
			{Column: clause.Column{Name: "last_asked"}, Value: gorm.Expr("NOW()")},
		},
	}).Create(stat).Error
}

// RecordDaily folds one exchange into the day's row. The average response
// time is recomputed with the current message count before the count itself
// advances, so the assignment order matters.
func (r *statsRepository) RecordDaily(date, intent, obdCode string, responseTimeMs int) error {
	var obd, kounhany, technical int
	if obdCode != "" {
		obd = 1
	}
	switch intent {
	case "kounhany":
		kounhany = 1
	case "technical":
		technical = 1
	}

	stat := &model.DailyStat{
		Date:              date,
		TotalMessages:     1,
		UniqueUsers:       1,
		ObdQueries:        obd,
		KounhanyQueries:   kounhany,
		TechnicalQueries:  technical,
		AvgResponseTimeMs: float64(responseTimeMs),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Set{
			{
				Column: clause.Column{Name: "avg_response_time_ms"},
				Value:  gorm.Expr("(avg_response_time_ms * total_messages + ?) / (total_messages + 1)", responseTimeMs),
			},
			{Column: clause.Column{Name: "total_messages"}, Value: gorm.Expr("total_messages + 1")},
			{Column: clause.Column{Name: "obd_queries"}, Value: gorm.Expr("obd_queries + ?", obd)},
			{Column: clause.Column{Name: "kounhany_queries"}, Value: gorm.Expr("kounhany_queries + ?", kounhany)},
			{Column: clause.Column{Name: "technical_queries"}, Value: gorm.Expr("technical_queries + ?", technical)},
		},
	}).Create(stat).Error
}

// RefreshUniqueUsers recounts the day's distinct users from the
// conversation log. Kept out of RecordDaily so the hot path stays a single
// upsert.
func (r *statsRepository) RefreshUniqueUsers(date string) error {
	return r.db.Model(&model.DailyStat{}).
		Where("date = ?", date).
		Update("unique_users", gorm.Expr(
			"(SELECT COUNT(DISTINCT user_id) FROM conversations WHERE DATE(created_at) = ?)", date,
		)).Error
}

func (r *statsRepository) TopQuestions(limit int) ([]model.QuestionStat, error) {
	var stats []model.QuestionStat
	err := r.db.Order("count DESC").Limit(limit).Find(&stats).Error
	return stats, err
}

func (r *statsRepository) RecentDaily(days int) ([]model.DailyStat, error) {
	var stats []model.DailyStat
	err := r.db.Order("date DESC").Limit(days).Find(&stats).Error
	return stats, err
}
