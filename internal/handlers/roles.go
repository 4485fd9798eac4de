package handlers

import (
	"net/http"

	"isms-api/internal/middleware"
	"isms-api/internal/models"
	"isms-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type Roles struct {
	repo *repository.Roles
}

func NewRoles(repo *repository.Roles) *Roles {
	return &Roles{repo: repo}
}

func (h *Roles) List(c *gin.Context) {
	roles, err := h.repo.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *Roles) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	role, err := h.repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

type roleRequest struct {
	Name models.RoleName `json:"name"`
}

func (h *Roles) Create(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	role, err := h.repo.Create(middleware.CurrentUserID(c), repository.NewRole{Name: req.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *Roles) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	role, err := h.repo.Update(middleware.CurrentUserID(c), id, repository.RolePatch{Name: &req.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *Roles) Delete(c *gin.Context) {
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
