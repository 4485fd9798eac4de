package repository

import (
	"fmt"
	"strings"
	"time"

	"isms-api/internal/models"

	"gorm.io/gorm"
)

type Incidents struct {
	db *gorm.DB
}

func NewIncidents(db *gorm.DB) *Incidents {
	return &Incidents{db: db}
}

type NewIncident struct {
	Description  string
	Severity     models.IncidentSeverity
	AssetID      uint
	Status       models.IncidentStatus // empty means Open
	DateReported time.Time             // zero means now
}

type IncidentPatch struct {
	Description  *string
	Severity     *models.IncidentSeverity
	AssetID      *uint
	Status       *models.IncidentStatus
	DateReported *time.Time
}

func (r *Incidents) List() ([]models.Incident, error) {
	var incidents []models.Incident
	err := r.db.Order("id asc").Find(&incidents).Error
	return incidents, err
}

func (r *Incidents) Get(id uint) (models.Incident, error) {
	var incident models.Incident
	err := r.db.First(&incident, id).Error
	return incident, notFoundOr(err)
}

func (r *Incidents) Create(actorID uint, in NewIncident) (models.Incident, error) {
	if strings.TrimSpace(in.Description) == "" {
		return models.Incident{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !in.Severity.Valid() {
		return models.Incident{}, &ValidationError{Field: "severity", Reason: fmt.Sprintf("unknown incident severity %q", in.Severity)}
	}
	if in.Status == "" {
		in.Status = models.IncidentOpen
	}
	if !in.Status.Valid() {
		return models.Incident{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown incident status %q", in.Status)}
	}
	if in.DateReported.IsZero() {
		in.DateReported = time.Now().UTC()
	}

	incident := models.Incident{
		Description:  in.Description,
		DateReported: in.DateReported,
		Severity:     in.Severity,
		Status:       in.Status,
		AssetID:      in.AssetID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := parentExists(tx, &models.Asset{}, "asset", in.AssetID); err != nil {
			return err
		}
		if err := tx.Create(&incident).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("created incident %d for asset %d", incident.ID, incident.AssetID))
	})
	if err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

func (r *Incidents) Update(actorID, id uint, patch IncidentPatch) (models.Incident, error) {
	var incident models.Incident

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&incident, id).Error; err != nil {
			return notFoundOr(err)
		}

		if patch.Description != nil {
			if strings.TrimSpace(*patch.Description) == "" {
				return &ValidationError{Field: "description", Reason: "must not be empty"}
			}
			incident.Description = *patch.Description
		}
		if patch.Severity != nil {
			if !patch.Severity.Valid() {
				return &ValidationError{Field: "severity", Reason: fmt.Sprintf("unknown incident severity %q", *patch.Severity)}
			}
			incident.Severity = *patch.Severity
		}
		if patch.AssetID != nil {
			if err := parentExists(tx, &models.Asset{}, "asset", *patch.AssetID); err != nil {
				return err
			}
			incident.AssetID = *patch.AssetID
		}
		if patch.Status != nil {
			if !patch.Status.Valid() {
				return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown incident status %q", *patch.Status)}
			}
			incident.Status = *patch.Status
		}
		if patch.DateReported != nil {
			incident.DateReported = *patch.DateReported
		}

		if err := tx.Save(&incident).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("updated incident %d", incident.ID))
	})
	if err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

func (r *Incidents) Delete(actorID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var incident models.Incident
		if err := tx.First(&incident, id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Delete(&incident).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("deleted incident %d", incident.ID))
	})
}
