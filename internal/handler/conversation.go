package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chatcore/internal/i18n"
	"chatcore/internal/store"
)

// ConversationHandler handles conversation lifecycle HTTP requests
type ConversationHandler struct {
	store           store.ConversationStore
	defaultLanguage string
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(st store.ConversationStore, defaultLanguage string) *ConversationHandler {
	return &ConversationHandler{store: st, defaultLanguage: defaultLanguage}
}

// CreateRequest is the body for starting a conversation
type CreateRequest struct {
	Language string `json:"language"`
}

// LanguageRequest is the body for switching a conversation's locale
type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// Create handles POST /api/v1/conversations
func (h *ConversationHandler) Create(c *gin.Context) {
	// The body is optional; an absent language falls back to the default.
	var req CreateRequest
	_ = c.ShouldBindJSON(&req)
	if req.Language == "" {
		req.Language = h.defaultLanguage
	}

	conv, err := h.store.Create(c.Request.Context(), req.Language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conversation: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, conv)
}

// Get handles GET /api/v1/conversations/:id
func (h *ConversationHandler) Get(c *gin.Context) {
	conv, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// Active handles GET /api/v1/conversations/active
func (h *ConversationHandler) Active(c *gin.Context) {
	conv, err := h.store.Active(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// Select handles POST /api/v1/conversations/:id/select
func (h *ConversationHandler) Select(c *gin.Context) {
	conv, err := h.store.Select(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// SetLanguage handles POST /api/v1/conversations/:id/language
func (h *ConversationHandler) SetLanguage(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	conv, err := h.store.SetLanguage(c.Request.Context(), c.Param("id"), req.Language)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// UITexts handles GET /api/v1/ui-texts
func (h *ConversationHandler) UITexts(c *gin.Context) {
	lang := c.Query("language")
	if lang == "" {
		lang = h.defaultLanguage
	}
	c.JSON(http.StatusOK, gin.H{
		"language": i18n.Normalize(lang),
		"texts":    i18n.TextsFor(lang),
	})
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
