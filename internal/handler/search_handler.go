package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kounhany-ai-go/internal/service"
	"kounhany-ai-go/pkg/log"
)

// SearchHandler exposes the cached web search pipeline.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new SearchHandler instance.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /search?q=...&limit=N.
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondError(c, http.StatusBadRequest, "Query parameter 'q' is required.")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 10 {
		limit = 5
	}

	results, err := h.searchService.Search(c.Request.Context(), query, limit)
	if err != nil {
		log.Errorf("Search: query %q failed: %v", query, err)
		respondError(c, http.StatusBadGateway, "La recherche est indisponible pour le moment.")
		return
	}
	respondSuccess(c, "Search completed.", gin.H{
		"query":   query,
		"results": results,
		"total":   len(results),
	})
}
