package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"chatcore/internal/service"
	"chatcore/internal/store"
)

// ExportHandler handles CSV export HTTP requests
type ExportHandler struct {
	store store.ConversationStore
}

// NewExportHandler creates a new export handler
func NewExportHandler(st store.ConversationStore) *ExportHandler {
	return &ExportHandler{store: st}
}

// TableCSV handles GET /api/v1/conversations/:id/messages/:mid/table.csv
func (h *ExportHandler) TableCSV(c *gin.Context) {
	conv, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	messageID := c.Param("mid")
	for _, msg := range conv.Messages {
		if msg.ID != messageID {
			continue
		}
		if msg.Table == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message has no table to export"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.CSVFilename(msg.Table)))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", service.ExportCSV(msg.Table))
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
}
