package repository

import (
	"fmt"

	"isms-api/internal/models"

	"gorm.io/gorm"
)

type Roles struct {
	db *gorm.DB
}

func NewRoles(db *gorm.DB) *Roles {
	return &Roles{db: db}
}

type NewRole struct {
	Name models.RoleName
}

type RolePatch struct {
	Name *models.RoleName
}

func (r *Roles) List() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("id asc").Find(&roles).Error
	return roles, err
}

func (r *Roles) Get(id uint) (models.Role, error) {
	var role models.Role
	err := r.db.First(&role, id).Error
	return role, notFoundOr(err)
}

func (r *Roles) Create(actorID uint, in NewRole) (models.Role, error) {
	if !in.Name.Valid() {
		return models.Role{}, &ValidationError{Field: "name", Reason: fmt.Sprintf("unknown role %q", in.Name)}
	}

	role := models.Role{Name: in.Name}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := uniqueColumn(tx, &models.Role{}, "name", string(in.Name), 0); err != nil {
			return err
		}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("created role %d: %s", role.ID, role.Name))
	})
	if err != nil {
		return models.Role{}, err
	}
	return role, nil
}

func (r *Roles) Update(actorID, id uint, patch RolePatch) (models.Role, error) {
	var role models.Role

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&role, id).Error; err != nil {
			return notFoundOr(err)
		}

		if patch.Name != nil {
			if !patch.Name.Valid() {
				return &ValidationError{Field: "name", Reason: fmt.Sprintf("unknown role %q", *patch.Name)}
			}
			if err := uniqueColumn(tx, &models.Role{}, "name", string(*patch.Name), id); err != nil {
				return err
			}
			role.Name = *patch.Name
		}

		if err := tx.Save(&role).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("updated role %d: %s", role.ID, role.Name))
	})
	if err != nil {
		return models.Role{}, err
	}
	return role, nil
}

func (r *Roles) Delete(actorID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.First(&role, id).Error; err != nil {
			return notFoundOr(err)
		}

		var users int64
		if err := tx.Model(&models.User{}).Where("role_id = ?", id).Count(&users).Error; err != nil {
			return err
		}
		if users > 0 {
			return stillReferenced("role", id, "users")
		}

		if err := tx.Delete(&role).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("deleted role %d: %s", role.ID, role.Name))
	})
}
