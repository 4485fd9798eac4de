package models

type RoleName string

const (
	RoleAdministrator RoleName = "Administrator"
	RoleAnalyst       RoleName = "Analyst"
	RoleAuditor       RoleName = "Auditor"
	RoleUser          RoleName = "User"
)

func (r RoleName) Valid() bool {
	switch r {
	case RoleAdministrator, RoleAnalyst, RoleAuditor, RoleUser:
		return true
	}
	return false
}

type Role struct {
	ID   uint     `json:"id" gorm:"primaryKey"`
	Name RoleName `json:"name" gorm:"size:50;uniqueIndex;not null"`
}
