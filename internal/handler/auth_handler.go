package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/pkg/log"
	"kounhany-ai-go/pkg/token"
)

// AuthHandler authenticates the dashboard admin.
type AuthHandler struct {
	adminCfg   config.AdminConfig
	jwtManager *token.JWTManager
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(adminCfg config.AdminConfig, jwtManager *token.JWTManager) *AuthHandler {
	return &AuthHandler{adminCfg: adminCfg, jwtManager: jwtManager}
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login and issues an admin JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	if req.Username != h.adminCfg.Username ||
		bcrypt.CompareHashAndPassword([]byte(h.adminCfg.PasswordHash), []byte(req.Password)) != nil {
		log.Warnf("Login: failed admin login attempt for '%s'", req.Username)
		respondError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	accessToken, err := h.jwtManager.GenerateToken(req.Username, "admin")
	if err != nil {
		log.Errorf("Login: token generation failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Une erreur interne s'est produite. Veuillez réessayer.")
		return
	}
	respondSuccess(c, "Login successful.", gin.H{"access_token": accessToken})
}
