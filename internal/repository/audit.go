package repository

import (
	"isms-api/internal/models"

	"gorm.io/gorm"
)

// AuditLogs reads the audit trail. Writing happens through recordAudit inside
// the mutating repositories so the entry commits or rolls back with the
// change it describes.
type AuditLogs struct {
	db *gorm.DB
}

func NewAuditLogs(db *gorm.DB) *AuditLogs {
	return &AuditLogs{db: db}
}

func (r *AuditLogs) List() ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.Order("id desc").Limit(200).Find(&logs).Error
	return logs, err
}

// recordAudit appends an audit entry for the acting user. actorID 0 means an
// anonymous caller; those mutations leave no trail.
func recordAudit(tx *gorm.DB, actorID uint, action string) error {
	if actorID == 0 {
		return nil
	}
	entry := models.AuditLog{
		UserID: actorID,
		Action: action,
	}
	return tx.Create(&entry).Error
}
