package repository

import (
	"fmt"
	"strings"

	"isms-api/internal/models"

	"gorm.io/gorm"
)

type Assets struct {
	db *gorm.DB
}

func NewAssets(db *gorm.DB) *Assets {
	return &Assets{db: db}
}

type NewAsset struct {
	Name        string
	Type        models.AssetType
	Description string
	OwnerID     uint
}

type AssetPatch struct {
	Name        *string
	Type        *models.AssetType
	Description *string
	OwnerID     *uint
}

func (r *Assets) List() ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Order("id asc").Find(&assets).Error
	return assets, err
}

func (r *Assets) Get(id uint) (models.Asset, error) {
	var asset models.Asset
	err := r.db.First(&asset, id).Error
	return asset, notFoundOr(err)
}

func (r *Assets) Create(actorID uint, in NewAsset) (models.Asset, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Asset{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !in.Type.Valid() {
		return models.Asset{}, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown asset type %q", in.Type)}
	}

	asset := models.Asset{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := parentExists(tx, &models.User{}, "user", in.OwnerID); err != nil {
			return err
		}
		if err := tx.Create(&asset).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("created asset %d: %s", asset.ID, asset.Name))
	})
	if err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

func (r *Assets) Update(actorID, id uint, patch AssetPatch) (models.Asset, error) {
	var asset models.Asset

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&asset, id).Error; err != nil {
			return notFoundOr(err)
		}

		if patch.Name != nil {
			if strings.TrimSpace(*patch.Name) == "" {
				return &ValidationError{Field: "name", Reason: "must not be empty"}
			}
			asset.Name = *patch.Name
		}
		if patch.Type != nil {
			if !patch.Type.Valid() {
				return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown asset type %q", *patch.Type)}
			}
			asset.Type = *patch.Type
		}
		if patch.Description != nil {
			asset.Description = *patch.Description
		}
		if patch.OwnerID != nil {
			if err := parentExists(tx, &models.User{}, "user", *patch.OwnerID); err != nil {
				return err
			}
			asset.OwnerID = *patch.OwnerID
		}

		if err := tx.Save(&asset).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("updated asset %d: %s", asset.ID, asset.Name))
	})
	if err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

func (r *Assets) Delete(actorID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.First(&asset, id).Error; err != nil {
			return notFoundOr(err)
		}

		var risks int64
		if err := tx.Model(&models.Risk{}).Where("asset_id = ?", id).Count(&risks).Error; err != nil {
			return err
		}
		if risks > 0 {
			return stillReferenced("asset", id, "risks")
		}

		var incidents int64
		if err := tx.Model(&models.Incident{}).Where("asset_id = ?", id).Count(&incidents).Error; err != nil {
			return err
		}
		if incidents > 0 {
			return stillReferenced("asset", id, "incidents")
		}

		if err := tx.Delete(&asset).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("deleted asset %d: %s", asset.ID, asset.Name))
	})
}
