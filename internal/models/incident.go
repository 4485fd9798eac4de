package models

import "time"

type IncidentSeverity string

const (
	IncidentLow      IncidentSeverity = "Low"
	IncidentMedium   IncidentSeverity = "Medium"
	IncidentHigh     IncidentSeverity = "High"
	IncidentCritical IncidentSeverity = "Critical"
)

func (s IncidentSeverity) Valid() bool {
	switch s {
	case IncidentLow, IncidentMedium, IncidentHigh, IncidentCritical:
		return true
	}
	return false
}

type IncidentStatus string

const (
	IncidentOpen          IncidentStatus = "Open"
	IncidentInvestigating IncidentStatus = "Investigating"
	IncidentResolved      IncidentStatus = "Resolved"
	IncidentClosed        IncidentStatus = "Closed"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentOpen, IncidentInvestigating, IncidentResolved, IncidentClosed:
		return true
	}
	return false
}

type Incident struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	Description  string           `json:"description" gorm:"type:text;not null"`
	DateReported time.Time        `json:"date_reported" gorm:"not null"`
	Severity     IncidentSeverity `json:"severity" gorm:"type:varchar(20);not null"`
	Status       IncidentStatus   `json:"status" gorm:"type:varchar(20);not null"`

	AssetID uint  `json:"asset_id" gorm:"not null"`
	Asset   Asset `json:"-"`
}
