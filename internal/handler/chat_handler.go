package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"kounhany-ai-go/internal/model"
	"kounhany-ai-go/internal/service"
	"kounhany-ai-go/pkg/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatHandler serves the conversation endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler instance.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Chat: invalid request payload: %v", err)
		respondError(c, http.StatusBadRequest, "Invalid request payload: user_id is required.")
		return
	}

	result, err := h.chatService.Process(c.Request.Context(), &req)
	if err != nil {
		h.respondProcessError(c, &req, err)
		return
	}
	respondSuccess(c, result.Message, result)
}

func (h *ChatHandler) respondProcessError(c *gin.Context, req *model.ChatRequest, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		respondError(c, http.StatusBadRequest, validationErr.Msg)
		return
	}
	var mediaErr *service.UnsupportedMediaError
	if errors.As(err, &mediaErr) {
		respondError(c, http.StatusBadRequest, "Unsupported or unknown media format.")
		return
	}
	// Internal failures stay internal; the caller gets a fixed message.
	log.Errorf("Chat: processing failed for user %s: %v", req.UserID, err)
	respondError(c, http.StatusInternalServerError, "Une erreur interne s'est produite. Veuillez réessayer.")
}

// ClearConversation handles DELETE /conversation/:userId.
func (h *ChatHandler) ClearConversation(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "userId is required.")
		return
	}
	if err := h.chatService.ClearSession(c.Request.Context(), userID); err != nil {
		log.Errorf("ClearConversation: failed for user %s: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "Une erreur interne s'est produite. Veuillez réessayer.")
		return
	}
	respondSuccess(c, "Conversation cleared.", gin.H{"user_id": userID})
}

// HandleWS runs the chat pipeline over a WebSocket connection. Each inbound
// frame is one ChatRequest; each reply is one success or error envelope.
func (h *ChatHandler) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket upgrade failed", err)
		return
	}
	defer conn.Close()

	for {
		var req model.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("WebSocket read failed: %v", err)
			}
			return
		}
		if req.UserID == "" {
			h.writeWSError(conn, "user_id is required.")
			continue
		}

		result, err := h.chatService.Process(c.Request.Context(), &req)
		if err != nil {
			var validationErr *service.ValidationError
			var mediaErr *service.UnsupportedMediaError
			switch {
			case errors.As(err, &validationErr):
				h.writeWSError(conn, validationErr.Msg)
			case errors.As(err, &mediaErr):
				h.writeWSError(conn, "Unsupported or unknown media format.")
			default:
				log.Errorf("WebSocket chat failed for user %s: %v", req.UserID, err)
				h.writeWSError(conn, "Une erreur interne s'est produite. Veuillez réessayer.")
			}
			continue
		}

		if err := conn.WriteJSON(gin.H{
			"status":  "success",
			"message": result.Message,
			"data":    result,
		}); err != nil {
			log.Warnf("WebSocket write failed: %v", err)
			return
		}
	}
}

func (h *ChatHandler) writeWSError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(gin.H{"status": "error", "message": message}); err != nil {
		log.Warnf("WebSocket write failed: %v", err)
	}
}
