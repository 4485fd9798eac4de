package repository

import (
	"fmt"
	"strings"

	"isms-api/internal/models"

	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	RoleID       uint
}

type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	RoleID       *uint
}

func (r *Users) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id asc").Find(&users).Error
	return users, err
}

func (r *Users) Get(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, notFoundOr(err)
}

// GetByUsername loads a user with its role, for login and role checks.
func (r *Users) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Where("username = ?", username).First(&user).Error
	return user, notFoundOr(err)
}

// uniqueColumn fails with a UniquenessError when another row (excluding
// exceptID) already holds the value.
func uniqueColumn(tx *gorm.DB, model any, column, value string, exceptID uint) error {
	var count int64
	q := tx.Model(model).Where(column+" = ?", value)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &UniquenessError{Field: column, Value: value}
	}
	return nil
}

func (r *Users) Create(actorID uint, in NewUser) (models.User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return models.User{}, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return models.User{}, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if in.PasswordHash == "" {
		return models.User{}, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		RoleID:       in.RoleID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := parentExists(tx, &models.Role{}, "role", in.RoleID); err != nil {
			return err
		}
		if err := uniqueColumn(tx, &models.User{}, "username", in.Username, 0); err != nil {
			return err
		}
		if err := uniqueColumn(tx, &models.User{}, "email", in.Email, 0); err != nil {
			return err
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("created user %d: %s", user.ID, user.Username))
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *Users) Update(actorID, id uint, patch UserPatch) (models.User, error) {
	var user models.User

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return notFoundOr(err)
		}

		if patch.Username != nil {
			if strings.TrimSpace(*patch.Username) == "" {
				return &ValidationError{Field: "username", Reason: "must not be empty"}
			}
			if err := uniqueColumn(tx, &models.User{}, "username", *patch.Username, id); err != nil {
				return err
			}
			user.Username = *patch.Username
		}
		if patch.Email != nil {
			if strings.TrimSpace(*patch.Email) == "" {
				return &ValidationError{Field: "email", Reason: "must not be empty"}
			}
			if err := uniqueColumn(tx, &models.User{}, "email", *patch.Email, id); err != nil {
				return err
			}
			user.Email = *patch.Email
		}
		if patch.PasswordHash != nil {
			user.PasswordHash = *patch.PasswordHash
		}
		if patch.RoleID != nil {
			if err := parentExists(tx, &models.Role{}, "role", *patch.RoleID); err != nil {
				return err
			}
			user.RoleID = *patch.RoleID
		}

		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("updated user %d: %s", user.ID, user.Username))
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Delete refuses to remove a user that still owns assets or appears in the
// audit trail. The trail is append-only, so users with recorded actions stay.
func (r *Users) Delete(actorID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return notFoundOr(err)
		}

		var assets int64
		if err := tx.Model(&models.Asset{}).Where("owner_id = ?", id).Count(&assets).Error; err != nil {
			return err
		}
		if assets > 0 {
			return stillReferenced("user", id, "assets")
		}

		var entries int64
		if err := tx.Model(&models.AuditLog{}).Where("user_id = ?", id).Count(&entries).Error; err != nil {
			return err
		}
		if entries > 0 {
			return stillReferenced("user", id, "audit log entries")
		}

		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		return recordAudit(tx, actorID, fmt.Sprintf("deleted user %d: %s", user.ID, user.Username))
	})
}
