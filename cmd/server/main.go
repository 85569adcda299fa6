// Package main is the application entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/internal/handler"
	"kounhany-ai-go/internal/middleware"
	"kounhany-ai-go/internal/model"
	"kounhany-ai-go/internal/repository"
	"kounhany-ai-go/internal/service"
	"kounhany-ai-go/internal/session"
	"kounhany-ai-go/pkg/database"
	"kounhany-ai-go/pkg/kafka"
	"kounhany-ai-go/pkg/llm"
	"kounhany-ai-go/pkg/log"
	"kounhany-ai-go/pkg/storage"
	"kounhany-ai-go/pkg/token"
	"kounhany-ai-go/pkg/vision"
	"kounhany-ai-go/pkg/websearch"
)

func main() {
	// 1. Configuration
	config.Init("./configs/config.yaml")
	cfg := &config.Conf

	// 2. Logger
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("logger initialized")

	// 3. Infrastructure
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	storage.InitMinIO(cfg.MinIO)
	kafka.InitProducer(cfg.Kafka)
	defer kafka.CloseProducer()

	if err := database.DB.AutoMigrate(
		&model.Conversation{},
		&model.LearnedQA{},
		&model.QuestionStat{},
		&model.DailyStat{},
		&model.SearchCacheEntry{},
	); err != nil {
		log.Fatal("database migration failed", err)
	}

	// 4. Repositories
	conversationRepo := repository.NewConversationRepository(database.DB)
	learnedQARepo := repository.NewLearnedQARepository(database.DB)
	statsRepo := repository.NewStatsRepository(database.DB)
	searchCacheRepo := repository.NewSearchCacheRepository(database.DB)

	// 5. Services (dependency injection)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours)
	llmClient := llm.NewClient(cfg.LLM)
	visionClient := vision.NewClient(cfg.Vision)
	searchClient := websearch.NewClient(cfg.WebSearch)

	memory := session.NewRedisStore(database.RDB, cfg.Chat.MemoryLimit)
	knowledgeService := service.NewKnowledgeService(learnedQARepo, cfg.Chat)
	analyticsService := service.NewAnalyticsService(conversationRepo, statsRepo, learnedQARepo)
	searchService := service.NewSearchService(searchClient, searchCacheRepo, cfg.WebSearch)
	chatService := service.NewChatService(memory, knowledgeService, analyticsService, searchService, llmClient, visionClient, cfg)

	// 6. Background work: seed the learned answers and sweep the search
	// cache hourly.
	go knowledgeService.Seed()

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go runCacheSweep(sweepCtx, searchService)

	// 7. Router
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	chatHandler := handler.NewChatHandler(chatService)
	obdHandler := handler.NewObdHandler()
	searchHandler := handler.NewSearchHandler(searchService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	authHandler := handler.NewAuthHandler(cfg.Admin, jwtManager)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running", "status": "healthy"})
	})
	healthHandler := handler.NewHealthHandler(cfg, func(ctx context.Context) error {
		return database.RDB.Ping(ctx).Err()
	}, storage.MinioClient != nil)
	r.GET("/health", healthHandler.Health)

	r.POST("/chat", chatHandler.Chat)
	r.GET("/chat/ws", chatHandler.HandleWS)
	r.DELETE("/conversation/:userId", chatHandler.ClearConversation)

	r.GET("/obd/search/:query", obdHandler.Search)
	r.GET("/obd/:code", obdHandler.GetCode)
	r.GET("/search", searchHandler.Search)

	r.POST("/auth/login", authHandler.Login)

	analytics := r.Group("/analytics")
	analytics.Use(middleware.AdminAuth(jwtManager))
	{
		analytics.GET("", analyticsHandler.Summary)
		analytics.GET("/top-questions", analyticsHandler.TopQuestions)
		analytics.GET("/daily", analyticsHandler.Daily)
	}

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", err)
	}
	log.Info("server exited")
}

// runCacheSweep purges expired search cache rows every hour until ctx is
// cancelled.
func runCacheSweep(ctx context.Context, searchService service.SearchService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := searchService.PurgeExpiredCache()
			if err != nil {
				log.Errorf("search cache sweep failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Infof("search cache sweep removed %d expired entries", removed)
			}
		}
	}
}
