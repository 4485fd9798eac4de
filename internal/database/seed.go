package database

import (
	"fmt"
	"log/slog"
	"os"

	"isms-api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the baseline roles and default accounts. It is idempotent:
// roles are only created when the roles table is empty, users only when no
// row with that username exists yet. Any failure aborts the bootstrap.
func Seed(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	return seedUsers(db)
}

func seedRoles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Role{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if count > 0 {
		return nil
	}

	// Inserted in this order into the empty table so they get ids 1-4
	// without bypassing the id sequence.
	roles := []models.Role{
		{Name: models.RoleAdministrator},
		{Name: models.RoleAnalyst},
		{Name: models.RoleAuditor},
		{Name: models.RoleUser},
	}
	if err := db.Create(&roles).Error; err != nil {
		return fmt.Errorf("create roles: %w", err)
	}

	slog.Info("seeded roles", "count", len(roles))
	return nil
}

func seedUsers(db *gorm.DB) error {
	type seedUser struct {
		Username    string
		Email       string
		PasswordEnv string
		Fallback    string
		RoleID      uint
	}

	users := []seedUser{
		{Username: "admin", Email: "admin@example.com", PasswordEnv: "ADMIN_PASSWORD", Fallback: "admin123", RoleID: 1},
		{Username: "analyst", Email: "analyst@example.com", PasswordEnv: "ANALYST_PASSWORD", Fallback: "analyst123", RoleID: 2},
		{Username: "auditor", Email: "auditor@example.com", PasswordEnv: "AUDITOR_PASSWORD", Fallback: "auditor123", RoleID: 3},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&models.User{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("check seed user %s: %w", u.Username, err)
		}
		if count > 0 {
			continue
		}

		password := os.Getenv(u.PasswordEnv)
		if password == "" {
			password = u.Fallback
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}

		user := models.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: string(hash),
			RoleID:       u.RoleID,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create seed user %s: %w", u.Username, err)
		}

		slog.Info("created seed user", "username", u.Username, "role_id", u.RoleID)
	}

	return nil
}
