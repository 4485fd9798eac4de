package database

import (
	"testing"

	"isms-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedCreatesRolesAndUsers(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	var roles []models.Role
	require.NoError(t, db.Order("id asc").Find(&roles).Error)
	require.Len(t, roles, 4)
	assert.EqualValues(t, 1, roles[0].ID)
	assert.Equal(t, models.RoleAdministrator, roles[0].Name)
	assert.EqualValues(t, 2, roles[1].ID)
	assert.Equal(t, models.RoleAnalyst, roles[1].Name)
	assert.EqualValues(t, 3, roles[2].ID)
	assert.Equal(t, models.RoleAuditor, roles[2].Name)
	assert.EqualValues(t, 4, roles[3].ID)
	assert.Equal(t, models.RoleUser, roles[3].Name)

	var users []models.User
	require.NoError(t, db.Order("id asc").Find(&users).Error)
	require.Len(t, users, 3)
	assert.Equal(t, "admin", users[0].Username)
	assert.EqualValues(t, 1, users[0].RoleID)
	assert.Equal(t, "analyst", users[1].Username)
	assert.EqualValues(t, 2, users[1].RoleID)
	assert.Equal(t, "auditor", users[2].Username)
	assert.EqualValues(t, 3, users[2].RoleID)

	err := bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("admin123"))
	assert.NoError(t, err, "admin gets the default password when none is configured")
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	var adminBefore models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&adminBefore).Error)

	require.NoError(t, Seed(db))

	var roleCount, userCount int64
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 4, roleCount)
	assert.EqualValues(t, 3, userCount)

	var adminAfter models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&adminAfter).Error)
	assert.Equal(t, adminBefore.PasswordHash, adminAfter.PasswordHash, "existing users are left untouched")
}

func TestSeedSkipsExistingUserByUsername(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	// change the admin's email; idempotence is keyed on username, not content
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "admin").
		Update("email", "root@example.com").Error)

	require.NoError(t, Seed(db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, "root@example.com", admin.Email)
}
