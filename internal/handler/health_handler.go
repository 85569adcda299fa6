package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kounhany-ai-go/internal/config"
)

// HealthHandler reports collaborator configuration and session-store
// reachability.
type HealthHandler struct {
	cfg       *config.Config
	pingStore func(context.Context) error
	archiving bool
}

// NewHealthHandler creates a new HealthHandler instance. pingStore probes the
// session store; archiving reports whether media archiving is configured.
func NewHealthHandler(cfg *config.Config, pingStore func(context.Context) error, archiving bool) *HealthHandler {
	return &HealthHandler{cfg: cfg, pingStore: pingStore, archiving: archiving}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	sessionStore := "ok"
	if err := h.pingStore(ctx); err != nil {
		status = "unhealthy"
		sessionStore = err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            status,
		"session_store":     sessionStore,
		"llm_model":         h.cfg.LLM.Model,
		"vision_configured": h.cfg.Vision.BaseURL != "",
		"kafka_enabled":     h.cfg.Kafka.Brokers != "",
		"media_archiving":   h.archiving,
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}
