package models

type PolicyStatus string

const (
	PolicyDraft      PolicyStatus = "Draft"
	PolicyReview     PolicyStatus = "Review"
	PolicyApproved   PolicyStatus = "Approved"
	PolicyDeprecated PolicyStatus = "Deprecated"
)

func (s PolicyStatus) Valid() bool {
	switch s {
	case PolicyDraft, PolicyReview, PolicyApproved, PolicyDeprecated:
		return true
	}
	return false
}

type Policy struct {
	ID      uint         `json:"id" gorm:"primaryKey"`
	Title   string       `json:"title" gorm:"size:200;not null"`
	Content string       `json:"content" gorm:"type:text;not null"`
	Version string       `json:"version" gorm:"size:20;not null"`
	Status  PolicyStatus `json:"status" gorm:"type:varchar(20);not null"`
}
