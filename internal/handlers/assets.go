package handlers

import (
	"net/http"

	"isms-api/internal/middleware"
	"isms-api/internal/models"
	"isms-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type Assets struct {
	repo *repository.Assets
}

func NewAssets(repo *repository.Assets) *Assets {
	return &Assets{repo: repo}
}

func (h *Assets) List(c *gin.Context) {
	assets, err := h.repo.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

func (h *Assets) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	asset, err := h.repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

type createAssetRequest struct {
	Name        string           `json:"name"`
	Type        models.AssetType `json:"type"`
	Description string           `json:"description"`
	OwnerID     uint             `json:"owner_id"`
}

func (h *Assets) Create(c *gin.Context) {
	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	asset, err := h.repo.Create(middleware.CurrentUserID(c), repository.NewAsset{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

type updateAssetRequest struct {
	Name        *string           `json:"name"`
	Type        *models.AssetType `json:"type"`
	Description *string           `json:"description"`
	OwnerID     *uint             `json:"owner_id"`
}

func (h *Assets) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	asset, err := h.repo.Update(middleware.CurrentUserID(c), id, repository.AssetPatch{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *Assets) Delete(c *gin.Context) {
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
