package models

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email        string `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`

	RoleID uint `json:"role_id" gorm:"not null"`
	Role   Role `json:"-"`
}
