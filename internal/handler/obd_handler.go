package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kounhany-ai-go/internal/obd"
)

// ObdHandler serves the diagnostic code reference endpoints.
type ObdHandler struct{}

// NewObdHandler creates a new ObdHandler instance.
func NewObdHandler() *ObdHandler {
	return &ObdHandler{}
}

// GetCode handles GET /obd/:code.
func (h *ObdHandler) GetCode(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	info, ok := obd.Lookup(code)
	if !ok {
		respondError(c, http.StatusNotFound, "Code OBD inconnu: "+code)
		return
	}
	respondSuccess(c, "OBD code found.", gin.H{
		"code":           code,
		"info":           info,
		"formatted_text": obd.FormatResponse(code, info),
	})
}

// Search handles GET /obd/search/:query with a keyword query over the
// code table.
func (h *ObdHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		respondError(c, http.StatusBadRequest, "Search query is required.")
		return
	}
	results := obd.Search(query)
	respondSuccess(c, "OBD search completed.", gin.H{
		"query":   query,
		"results": results,
		"total":   len(results),
	})
}
