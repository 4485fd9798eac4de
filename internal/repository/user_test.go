package repository

import (
	"testing"

	"isms-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsers(db)

	var before int64
	require.NoError(t, db.Model(&models.User{}).Count(&before).Error)

	var uniqueErr *UniquenessError

	// seeded admin already holds this username
	_, err := repo.Create(1, NewUser{Username: "admin", Email: "other@example.com", PasswordHash: "h", RoleID: 4})
	require.ErrorAs(t, err, &uniqueErr)
	assert.Equal(t, "username", uniqueErr.Field)

	_, err = repo.Create(1, NewUser{Username: "someone", Email: "admin@example.com", PasswordHash: "h", RoleID: 4})
	require.ErrorAs(t, err, &uniqueErr)
	assert.Equal(t, "email", uniqueErr.Field)

	var after int64
	require.NoError(t, db.Model(&models.User{}).Count(&after).Error)
	assert.Equal(t, before, after, "failed creates must not insert rows")
}

func TestUserCreateUnknownRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsers(db)

	_, err := repo.Create(1, NewUser{Username: "someone", Email: "someone@example.com", PasswordHash: "h", RoleID: 42})

	var fkErr *ForeignKeyError
	require.ErrorAs(t, err, &fkErr)
	assert.Equal(t, "role", fkErr.Entity)
}

func TestUserDeleteWithOwnedAssets(t *testing.T) {
	db := newTestDB(t)
	users := NewUsers(db)
	assets := NewAssets(db)

	user, err := users.Create(1, NewUser{Username: "owner", Email: "owner@example.com", PasswordHash: "h", RoleID: 4})
	require.NoError(t, err)

	_, err = assets.Create(0, NewAsset{Name: "laptop", Type: models.AssetHardware, OwnerID: user.ID})
	require.NoError(t, err)

	err = users.Delete(1, user.ID)
	var fkErr *ForeignKeyError
	require.ErrorAs(t, err, &fkErr)
}

func TestUserUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsers(db)

	user, err := repo.Create(1, NewUser{Username: "someone", Email: "someone@example.com", PasswordHash: "h", RoleID: 4})
	require.NoError(t, err)

	email := "new@example.com"
	updated, err := repo.Update(1, user.ID, UserPatch{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "someone", updated.Username)

	// updating a user to a taken username fails
	taken := "admin"
	_, err = repo.Update(1, user.ID, UserPatch{Username: &taken})
	var uniqueErr *UniquenessError
	require.ErrorAs(t, err, &uniqueErr)
}

func TestRoleNameValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoles(db)

	var validationErr *ValidationError
	_, err := repo.Create(1, NewRole{Name: "Superuser"})
	require.ErrorAs(t, err, &validationErr)

	// all four predefined roles exist after seeding
	roles, err := repo.List()
	require.NoError(t, err)
	require.Len(t, roles, 4)

	var uniqueErr *UniquenessError
	_, err = repo.Create(1, NewRole{Name: models.RoleAnalyst})
	require.ErrorAs(t, err, &uniqueErr)
}

func TestRoleDeleteWithUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoles(db)

	err := repo.Delete(1, 1) // admin role has the seeded admin user
	var fkErr *ForeignKeyError
	require.ErrorAs(t, err, &fkErr)
}
