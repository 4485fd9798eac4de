package handlers

import (
	"net/http"
	"time"

	"isms-api/internal/middleware"
	"isms-api/internal/models"
	"isms-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type Incidents struct {
	repo *repository.Incidents
}

func NewIncidents(repo *repository.Incidents) *Incidents {
	return &Incidents{repo: repo}
}

func (h *Incidents) List(c *gin.Context) {
	incidents, err := h.repo.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *Incidents) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	incident, err := h.repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

type createIncidentRequest struct {
	Description  string                  `json:"description"`
	Severity     models.IncidentSeverity `json:"severity"`
	AssetID      uint                    `json:"asset_id"`
	Status       models.IncidentStatus   `json:"status"`
	DateReported time.Time               `json:"date_reported"`
}

func (h *Incidents) Create(c *gin.Context) {
	var req createIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	incident, err := h.repo.Create(middleware.CurrentUserID(c), repository.NewIncident{
		Description:  req.Description,
		Severity:     req.Severity,
		AssetID:      req.AssetID,
		Status:       req.Status,
		DateReported: req.DateReported,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, incident)
}

type updateIncidentRequest struct {
	Description  *string                  `json:"description"`
	Severity     *models.IncidentSeverity `json:"severity"`
	AssetID      *uint                    `json:"asset_id"`
	Status       *models.IncidentStatus   `json:"status"`
	DateReported *time.Time               `json:"date_reported"`
}

func (h *Incidents) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	incident, err := h.repo.Update(middleware.CurrentUserID(c), id, repository.IncidentPatch{
		Description:  req.Description,
		Severity:     req.Severity,
		AssetID:      req.AssetID,
		Status:       req.Status,
		DateReported: req.DateReported,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

func (h *Incidents) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(middleware.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
