package repository

import (
	"fmt"
	"strings"

	"isms-api/internal/models"

	"gorm.io/gorm"
)

type Policies struct {
	db *gorm.DB
}

func NewPolicies(db *gorm.DB) *Policies {
	return &Policies{db: db}
}

type NewPolicy struct {
	Title   string
	Content string
	Version string
	Status  models.PolicyStatus // empty means Draft
}

type PolicyPatch struct {
	Title   *string
	Content *string
	Version *string
	Status  *models.PolicyStatus
}

func (r *Policies) List() ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Order("id asc").Find(&policies).Error
	return policies, err
}

func (r *Policies) Get(id uint) (models.Policy, error) {
	var policy models.Policy
	err := r.db.First(&policy, id).Error
	return policy, notFoundOr(err)
}

func (r *Policies) Create(actorID uint, in NewPolicy) (models.Policy, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Policy{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return models.Policy{}, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Version) == "" {
		return models.Policy{}, &ValidationError{Field: "version", Reason: "must not be empty"}
	}
	if in.Status == "" {
		in.Status = models.PolicyDraft
	}
	if !in.Status.Valid() {
		return models.Policy{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown policy status %q", in.Status)}
	}

	policy := models.Policy{
		Title:   in.Title,
		Content: in.Content,
		Version: in.Version,
		Status:  in.Status,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&policy).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("created policy %d: %s", policy.ID, policy.Title))
	})
	if err != nil {
		return models.Policy{}, err
	}
	return policy, nil
}

func (r *Policies) Update(actorID, id uint, patch PolicyPatch) (models.Policy, error) {
	var policy models.Policy

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&policy, id).Error; err != nil {
			return notFoundOr(err)
		}

		if patch.Title != nil {
			if strings.TrimSpace(*patch.Title) == "" {
				return &ValidationError{Field: "title", Reason: "must not be empty"}
			}
			policy.Title = *patch.Title
		}
		if patch.Content != nil {
			if strings.TrimSpace(*patch.Content) == "" {
				return &ValidationError{Field: "content", Reason: "must not be empty"}
			}
			policy.Content = *patch.Content
		}
		if patch.Version != nil {
			if strings.TrimSpace(*patch.Version) == "" {
				return &ValidationError{Field: "version", Reason: "must not be empty"}
			}
			policy.Version = *patch.Version
		}
		if patch.Status != nil {
			if !patch.Status.Valid() {
				return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown policy status %q", *patch.Status)}
			}
			policy.Status = *patch.Status
		}

		if err := tx.Save(&policy).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("updated policy %d: %s", policy.ID, policy.Title))
	})
	if err != nil {
		return models.Policy{}, err
	}
	return policy, nil
}

// Delete removes the policy and any links to risks.
func (r *Policies) Delete(actorID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var policy models.Policy
		if err := tx.First(&policy, id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Where("policy_id = ?", id).Delete(&models.RiskPolicy{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&policy).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("deleted policy %d: %s", policy.ID, policy.Title))
	})
}
