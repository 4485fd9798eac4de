package models

import "time"

// AuditLog records one user action. Rows are append-only: nothing in the
// application updates or deletes them.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Action    string    `json:"action" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;autoCreateTime"`

	UserID uint `json:"user_id" gorm:"not null"`
	User   User `json:"-"`
}
