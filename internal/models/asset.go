package models

type AssetType string

const (
	AssetHardware  AssetType = "Hardware"
	AssetSoftware  AssetType = "Software"
	AssetData      AssetType = "Data"
	AssetNetwork   AssetType = "Network"
	AssetPersonnel AssetType = "Personnel"
)

func (t AssetType) Valid() bool {
	switch t {
	case AssetHardware, AssetSoftware, AssetData, AssetNetwork, AssetPersonnel:
		return true
	}
	return false
}

type Asset struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Type        AssetType `json:"type" gorm:"type:varchar(20);not null"`
	Description string    `json:"description" gorm:"type:text"`

	OwnerID uint `json:"owner_id" gorm:"not null"`
	Owner   User `json:"-"`
}
