package service

import (
	"time"

	"kounhany-ai-go/internal/model"
	"kounhany-ai-go/internal/nlp"
	"kounhany-ai-go/internal/repository"
	"kounhany-ai-go/pkg/kafka"
	"kounhany-ai-go/pkg/log"
)

// ConversationRecord carries everything logged after one exchange.
type ConversationRecord struct {
	UserID         string
	UserMessage    string
	AIResponse     string
	ResponseTimeMs int
	ContentType    string
	Intent         string
	ObdCode        string
}

// Summary is the dashboard aggregate payload.
type Summary struct {
	TotalConversations int64                           `json:"totalConversations"`
	UniqueUsers        int64                           `json:"uniqueUsers"`
	TodayConversations int64                           `json:"todayConversations"`
	IntentDistribution []repository.IntentCount        `json:"intentDistribution"`
	TopQuestions       []model.QuestionStat            `json:"topQuestions"`
	LearnedQACount     int64                           `json:"learnedQaCount"`
	TopObdCodes        []repository.CodeCount          `json:"topObdCodes"`
	Struggling         []repository.StrugglingQuestion `json:"strugglingQuestions"`
}

// AnalyticsService records each exchange into the conversation log, the
// question counters and the daily aggregate, and serves the dashboard reads.
type AnalyticsService interface {
	Record(rec ConversationRecord)
	Summary() (*Summary, error)
	TopQuestions(limit int) ([]model.QuestionStat, error)
	DailyStats(days int) ([]model.DailyStat, error)
	ClearUserHistory(userID string) (int64, error)
}

type analyticsService struct {
	conversations repository.ConversationRepository
	stats         repository.StatsRepository
	learned       repository.LearnedQARepository
}

// NewAnalyticsService creates a new AnalyticsService instance.
func NewAnalyticsService(
	conversations repository.ConversationRepository,
	stats repository.StatsRepository,
	learned repository.LearnedQARepository,
) AnalyticsService {
	return &analyticsService{
		conversations: conversations,
		stats:         stats,
		learned:       learned,
	}
}

// Record persists one exchange. Each write is independent; a failure in one
// is logged and the others still run, so a stats hiccup never drops the
// conversation log.
func (s *analyticsService) Record(rec ConversationRecord) {
	if rec.ContentType == "" {
		rec.ContentType = "text"
	}

	conv := &model.Conversation{
		UserID:         rec.UserID,
		UserMessage:    rec.UserMessage,
		AIResponse:     rec.AIResponse,
		ResponseTimeMs: rec.ResponseTimeMs,
		ContentType:    rec.ContentType,
		DetectedIntent: rec.Intent,
		ObdCode:        rec.ObdCode,
	}
	if err := s.conversations.Create(conv); err != nil {
		log.Errorf("failed to log conversation: %v", err)
	}

	normalized := nlp.Normalize(rec.UserMessage)
	if err := s.stats.RecordQuestion(normalized, rec.Intent); err != nil {
		log.Errorf("failed to update question stats: %v", err)
	}

	today := time.Now().Format("2006-01-02")
	if err := s.stats.RecordDaily(today, rec.Intent, rec.ObdCode, rec.ResponseTimeMs); err != nil {
		log.Errorf("failed to update daily stats: %v", err)
	}
	if err := s.stats.RefreshUniqueUsers(today); err != nil {
		log.Errorf("failed to refresh unique user count: %v", err)
	}

	kafka.PublishConversationEvent(kafka.ConversationEvent{
		UserID:         rec.UserID,
		Intent:         rec.Intent,
		ObdCode:        rec.ObdCode,
		ContentType:    rec.ContentType,
		ResponseTimeMs: rec.ResponseTimeMs,
	})
}

func (s *analyticsService) Summary() (*Summary, error) {
	total, err := s.conversations.CountTotal()
	if err != nil {
		return nil, err
	}
	users, err := s.conversations.CountDistinctUsers()
	if err != nil {
		return nil, err
	}
	today, err := s.conversations.CountToday(time.Now().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	intents, err := s.conversations.IntentDistribution()
	if err != nil {
		return nil, err
	}
	topQuestions, err := s.stats.TopQuestions(10)
	if err != nil {
		return nil, err
	}
	learnedCount, err := s.learned.Count()
	if err != nil {
		return nil, err
	}
	topCodes, err := s.conversations.TopObdCodes(10)
	if err != nil {
		return nil, err
	}
	struggling, err := s.conversations.StrugglingQuestions(20)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalConversations: total,
		UniqueUsers:        users,
		TodayConversations: today,
		IntentDistribution: intents,
		TopQuestions:       topQuestions,
		LearnedQACount:     learnedCount,
		TopObdCodes:        topCodes,
		Struggling:         struggling,
	}, nil
}

func (s *analyticsService) TopQuestions(limit int) ([]model.QuestionStat, error) {
	return s.stats.TopQuestions(limit)
}

func (s *analyticsService) DailyStats(days int) ([]model.DailyStat, error) {
	return s.stats.RecentDaily(days)
}

func (s *analyticsService) ClearUserHistory(userID string) (int64, error) {
	return s.conversations.DeleteByUserID(userID)
}
