package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kounhany-ai-go/internal/service"
	"kounhany-ai-go/pkg/log"
)

// AnalyticsHandler serves the admin dashboard endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Summary handles GET /analytics.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsService.Summary()
	if err != nil {
		log.Errorf("Summary: aggregate query failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Une erreur interne s'est produite. Veuillez réessayer.")
		return
	}
	respondSuccess(c, "Analytics summary.", summary)
}

// TopQuestions handles GET /analytics/top-questions?limit=N.
func (h *AnalyticsHandler) TopQuestions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	questions, err := h.analyticsService.TopQuestions(limit)
	if err != nil {
		log.Errorf("TopQuestions: query failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Une erreur interne s'est produite. Veuillez réessayer.")
		return
	}
	respondSuccess(c, "Top questions.", gin.H{"questions": questions, "total": len(questions)})
}

// Daily handles GET /analytics/daily?days=N.
func (h *AnalyticsHandler) Daily(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 90 {
		days = 7
	}

	stats, err := h.analyticsService.DailyStats(days)
	if err != nil {
		log.Errorf("Daily: query failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Une erreur interne s'est produite. Veuillez réessayer.")
		return
	}
	respondSuccess(c, "Daily stats.", gin.H{"days": stats})
}
