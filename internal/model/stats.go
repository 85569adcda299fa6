package model

// QuestionStat counts how often a normalized question was asked.
type QuestionStat struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	QuestionNormalized string    `gorm:"uniqueIndex;size:512;not null" json:"questionNormalized"`
	Count              int       `gorm:"default:1" json:"count"`
	LastAsked          LocalTime `json:"lastAsked"`
	Category           string    `gorm:"size:32" json:"category"`
}

func (QuestionStat) TableName() string {
	return "question_analytics"
}

// DailyStat aggregates per-calendar-day counters. One row per day, updated
// additively through a single upsert statement.
type DailyStat struct {
	Date              string  `gorm:"primaryKey;size:10" json:"date"` // YYYY-MM-DD
	TotalMessages     int     `gorm:"default:0" json:"totalMessages"`
	UniqueUsers       int     `gorm:"default:0" json:"uniqueUsers"`
	ObdQueries        int     `gorm:"default:0" json:"obdQueries"`
	KounhanyQueries   int     `gorm:"default:0" json:"kounhanyQueries"`
	TechnicalQueries  int     `gorm:"default:0" json:"technicalQueries"`
	AvgResponseTimeMs float64 `gorm:"default:0" json:"avgResponseTimeMs"`
}

func (DailyStat) TableName() string {
	return "daily_stats"
}
