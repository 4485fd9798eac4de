package handlers

import (
	"net/http"

	"isms-api/internal/middleware"
	"isms-api/internal/models"
	"isms-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type Risks struct {
	repo *repository.Risks
}

func NewRisks(repo *repository.Risks) *Risks {
	return &Risks{repo: repo}
}

func (h *Risks) List(c *gin.Context) {
	risks, err := h.repo.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, risks)
}

func (h *Risks) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	risk, err := h.repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, risk)
}

type createRiskRequest struct {
	Description string            `json:"description"`
	Severity    int               `json:"severity"`
	Likelihood  int               `json:"likelihood"`
	AssetID     uint              `json:"asset_id"`
	Status      models.RiskStatus `json:"status"`
}

func (h *Risks) Create(c *gin.Context) {
	var req createRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	risk, err := h.repo.Create(middleware.CurrentUserID(c), repository.NewRisk{
		Description: req.Description,
		Severity:    req.Severity,
		Likelihood:  req.Likelihood,
		AssetID:     req.AssetID,
		Status:      req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, risk)
}

type updateRiskRequest struct {
	Description *string            `json:"description"`
	Severity    *int               `json:"severity"`
	Likelihood  *int               `json:"likelihood"`
	AssetID     *uint              `json:"asset_id"`
	Status      *models.RiskStatus `json:"status"`
}

func (h *Risks) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	risk, err := h.repo.Update(middleware.CurrentUserID(c), id, repository.RiskPatch{
		Description: req.Description,
		Severity:    req.Severity,
		Likelihood:  req.Likelihood,
		AssetID:     req.AssetID,
		Status:      req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, risk)
}

func (h *Risks) Delete(c *gin.Context) {
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

// ListPolicies returns the policies linked to a risk.
func (h *Risks) ListPolicies(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	policies, err := h.repo.PoliciesForRisk(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

type attachPolicyRequest struct {
	PolicyID uint `json:"policy_id"`
}

func (h *Risks) AttachPolicy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req attachPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	link, err := h.repo.AttachPolicy(middleware.CurrentUserID(c), id, req.PolicyID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *Risks) DetachPolicy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	policyID, ok := idParam(c, "policy_id")
	if !ok {
		return
	}

	if err := h.repo.DetachPolicy(middleware.CurrentUserID(c), id, policyID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"risk_id": id, "policy_id": policyID})
}
