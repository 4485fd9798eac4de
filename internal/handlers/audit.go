package handlers

import (
	"net/http"

	"isms-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type Audit struct {
	repo *repository.AuditLogs
}

func NewAudit(repo *repository.AuditLogs) *Audit {
	return &Audit{repo: repo}
}

func (h *Audit) List(c *gin.Context) {
	logs, err := h.repo.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
