package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC").Limit(200)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_audit_logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
