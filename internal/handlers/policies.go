package handlers

import (
	"net/http"

	"isms-api/internal/middleware"
	"isms-api/internal/models"
	"isms-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type Policies struct {
	repo *repository.Policies
}

func NewPolicies(repo *repository.Policies) *Policies {
	return &Policies{repo: repo}
}

func (h *Policies) List(c *gin.Context) {
	policies, err := h.repo.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

func (h *Policies) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	policy, err := h.repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

type createPolicyRequest struct {
	Title   string              `json:"title"`
	Content string              `json:"content"`
	Version string              `json:"version"`
	Status  models.PolicyStatus `json:"status"`
}

func (h *Policies) Create(c *gin.Context) {
	var req createPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	policy, err := h.repo.Create(middleware.CurrentUserID(c), repository.NewPolicy{
		Title:   req.Title,
		Content: req.Content,
		Version: req.Version,
		Status:  req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, policy)
}

type updatePolicyRequest struct {
	Title   *string              `json:"title"`
	Content *string              `json:"content"`
	Version *string              `json:"version"`
	Status  *models.PolicyStatus `json:"status"`
}

func (h *Policies) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	policy, err := h.repo.Update(middleware.CurrentUserID(c), id, repository.PolicyPatch{
		Title:   req.Title,
		Content: req.Content,
		Version: req.Version,
		Status:  req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *Policies) Delete(c *gin.Context) {
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
