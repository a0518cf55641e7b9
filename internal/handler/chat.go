package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chatcore/internal/service"
	"chatcore/internal/store"
)

// ChatHandler handles chat-turn HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest is the body of a chat-turn request
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// Send handles POST /api/v1/conversations/:id/chat
func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	messages, err := h.chatService.Send(c.Request.Context(), c.Param("id"), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		case errors.Is(err, store.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": "A request is already in flight for this conversation"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
