// Package handler contains the HTTP controller logic.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// respondSuccess writes the standard success envelope.
func respondSuccess(c *gin.Context, message string, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"code":      http.StatusOK,
		"message":   message,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// respondError writes the standard error envelope.
func respondError(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, gin.H{
		"status":    "error",
		"code":      httpCode,
		"message":   message,
		"data":      gin.H{},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
