package repository

import (
	"fmt"
	"strings"

	"isms-api/internal/models"

	"gorm.io/gorm"
)

type Risks struct {
	db *gorm.DB
}

func NewRisks(db *gorm.DB) *Risks {
	return &Risks{db: db}
}

type NewRisk struct {
	Description string
	Severity    int
	Likelihood  int
	AssetID     uint
	Status      models.RiskStatus // empty means Identified
}

type RiskPatch struct {
	Description *string
	Severity    *int
	Likelihood  *int
	AssetID     *uint
	Status      *models.RiskStatus
}

func validScale(field string, v int) error {
	if v < 1 || v > 5 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%d is outside the 1-5 scale", v)}
	}
	return nil
}

func (r *Risks) List() ([]models.Risk, error) {
	var risks []models.Risk
	err := r.db.Order("id asc").Find(&risks).Error
	return risks, err
}

func (r *Risks) Get(id uint) (models.Risk, error) {
	var risk models.Risk
	err := r.db.First(&risk, id).Error
	return risk, notFoundOr(err)
}

func (r *Risks) Create(actorID uint, in NewRisk) (models.Risk, error) {
	if strings.TrimSpace(in.Description) == "" {
		return models.Risk{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if err := validScale("severity", in.Severity); err != nil {
		return models.Risk{}, err
	}
	if err := validScale("likelihood", in.Likelihood); err != nil {
		return models.Risk{}, err
	}
	if in.Status == "" {
		in.Status = models.RiskIdentified
	}
	if !in.Status.Valid() {
		return models.Risk{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown risk status %q", in.Status)}
	}

	risk := models.Risk{
		Description: in.Description,
		Severity:    in.Severity,
		Likelihood:  in.Likelihood,
		AssetID:     in.AssetID,
		Status:      in.Status,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := parentExists(tx, &models.Asset{}, "asset", in.AssetID); err != nil {
			return err
		}
		if err := tx.Create(&risk).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("created risk %d for asset %d", risk.ID, risk.AssetID))
	})
	if err != nil {
		return models.Risk{}, err
	}
	return risk, nil
}

func (r *Risks) Update(actorID, id uint, patch RiskPatch) (models.Risk, error) {
	var risk models.Risk

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&risk, id).Error; err != nil {
			return notFoundOr(err)
		}

		if patch.Description != nil {
			if strings.TrimSpace(*patch.Description) == "" {
				return &ValidationError{Field: "description", Reason: "must not be empty"}
			}
			risk.Description = *patch.Description
		}
		if patch.Severity != nil {
			if err := validScale("severity", *patch.Severity); err != nil {
				return err
			}
			risk.Severity = *patch.Severity
		}
		if patch.Likelihood != nil {
			if err := validScale("likelihood", *patch.Likelihood); err != nil {
				return err
			}
			risk.Likelihood = *patch.Likelihood
		}
		if patch.AssetID != nil {
			if err := parentExists(tx, &models.Asset{}, "asset", *patch.AssetID); err != nil {
				return err
			}
			risk.AssetID = *patch.AssetID
		}
		if patch.Status != nil {
			if !patch.Status.Valid() {
				return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown risk status %q", *patch.Status)}
			}
			risk.Status = *patch.Status
		}

		if err := tx.Save(&risk).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("updated risk %d", risk.ID))
	})
	if err != nil {
		return models.Risk{}, err
	}
	return risk, nil
}

// Delete removes the risk together with its policy links. The links are pure
// associations with no life of their own, so they go with the risk.
func (r *Risks) Delete(actorID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var risk models.Risk
		if err := tx.First(&risk, id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Where("risk_id = ?", id).Delete(&models.RiskPolicy{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&risk).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("deleted risk %d", risk.ID))
	})
}

// AttachPolicy links a policy to a risk. The (risk, policy) pair is unique.
func (r *Risks) AttachPolicy(actorID, riskID, policyID uint) (models.RiskPolicy, error) {
	link := models.RiskPolicy{RiskID: riskID, PolicyID: policyID}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := parentExists(tx, &models.Risk{}, "risk", riskID); err != nil {
			return err
		}
		if err := parentExists(tx, &models.Policy{}, "policy", policyID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.RiskPolicy{}).
			Where("risk_id = ? AND policy_id = ?", riskID, policyID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &UniquenessError{Field: "risk_id,policy_id", Value: fmt.Sprintf("%d,%d", riskID, policyID)}
		}

		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("linked policy %d to risk %d", policyID, riskID))
	})
	if err != nil {
		return models.RiskPolicy{}, err
	}
	return link, nil
}

func (r *Risks) DetachPolicy(actorID, riskID, policyID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var link models.RiskPolicy
		err := tx.Where("risk_id = ? AND policy_id = ?", riskID, policyID).First(&link).Error
		if err != nil {
			return notFoundOr(err)
		}
		if err := tx.Delete(&link).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("unlinked policy %d from risk %d", policyID, riskID))
	})
}

// PoliciesForRisk returns the policies linked to a risk, id asc.
func (r *Risks) PoliciesForRisk(riskID uint) ([]models.Policy, error) {
	if err := r.db.First(&models.Risk{}, riskID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	var policies []models.Policy
	err := r.db.
		Joins("JOIN risk_policy_links ON risk_policy_links.policy_id = policies.id").
		Where("risk_policy_links.risk_id = ?", riskID).
		Order("policies.id asc").
		Find(&policies).Error
	return policies, err
}
