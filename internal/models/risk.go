package models

type RiskStatus string

const (
	RiskIdentified  RiskStatus = "Identified"
	RiskAssessed    RiskStatus = "Assessed"
	RiskMitigated   RiskStatus = "Mitigated"
	RiskAccepted    RiskStatus = "Accepted"
	RiskTransferred RiskStatus = "Transferred"
)

func (s RiskStatus) Valid() bool {
	switch s {
	case RiskIdentified, RiskAssessed, RiskMitigated, RiskAccepted, RiskTransferred:
		return true
	}
	return false
}

type Risk struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Severity    int        `json:"severity" gorm:"not null"`   // 1-5 scale
	Likelihood  int        `json:"likelihood" gorm:"not null"` // 1-5 scale
	Status      RiskStatus `json:"status" gorm:"type:varchar(20);not null"`

	AssetID uint  `json:"asset_id" gorm:"not null"`
	Asset   Asset `json:"-"`
}

// RiskPolicy links a risk to a policy that mitigates it. Pure association,
// one row per (risk, policy) pair.
type RiskPolicy struct {
	ID uint `json:"id" gorm:"primaryKey"`

	RiskID   uint `json:"risk_id" gorm:"not null;uniqueIndex:ux_risk_policy"`
	PolicyID uint `json:"policy_id" gorm:"not null;uniqueIndex:ux_risk_policy"`

	Risk   Risk   `json:"-"`
	Policy Policy `json:"-"`
}

func (RiskPolicy) TableName() string { return "risk_policy_links" }
