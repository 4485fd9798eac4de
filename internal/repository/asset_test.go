package repository

import (
	"errors"
	"testing"

	"isms-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssets(db)

	created, err := repo.Create(1, NewAsset{
		Name:        "Laptop-01",
		Type:        models.AssetHardware,
		Description: "analyst workstation",
		OwnerID:     1,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestAssetCreateValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssets(db)

	var validationErr *ValidationError

	_, err := repo.Create(1, NewAsset{Name: "", Type: models.AssetHardware, OwnerID: 1})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)

	_, err = repo.Create(1, NewAsset{Name: "srv-01", Type: "Mainframe", OwnerID: 1})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "type", validationErr.Field)
}

func TestAssetCreateUnknownOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssets(db)

	_, err := repo.Create(1, NewAsset{Name: "srv-01", Type: models.AssetHardware, OwnerID: 999})

	var fkErr *ForeignKeyError
	require.ErrorAs(t, err, &fkErr)
	assert.Equal(t, "user", fkErr.Entity)
	assert.EqualValues(t, 999, fkErr.ID)
}

func TestAssetUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssets(db)

	created, err := repo.Create(1, NewAsset{Name: "srv-01", Type: models.AssetHardware, OwnerID: 1})
	require.NoError(t, err)

	newName := "srv-02"
	updated, err := repo.Update(1, created.ID, AssetPatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "srv-02", updated.Name)
	assert.Equal(t, models.AssetHardware, updated.Type, "untouched fields keep their values")
	assert.Equal(t, created.OwnerID, updated.OwnerID)

	_, err = repo.Update(1, 999, AssetPatch{Name: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssetDeleteThenGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssets(db)

	created, err := repo.Create(1, NewAsset{Name: "srv-01", Type: models.AssetHardware, OwnerID: 1})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(1, created.ID))

	_, err = repo.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(1, created.ID), ErrNotFound)
}

func TestAssetDeleteWithDependentRisk(t *testing.T) {
	db := newTestDB(t)
	assets := NewAssets(db)
	risks := NewRisks(db)

	asset, err := assets.Create(1, NewAsset{Name: "srv-01", Type: models.AssetHardware, OwnerID: 1})
	require.NoError(t, err)

	_, err = risks.Create(1, NewRisk{Description: "unpatched OS", Severity: 4, Likelihood: 3, AssetID: asset.ID})
	require.NoError(t, err)

	err = assets.Delete(1, asset.ID)
	var fkErr *ForeignKeyError
	require.ErrorAs(t, err, &fkErr)

	_, err = assets.Get(asset.ID)
	assert.NoError(t, err, "asset must survive a rejected delete")
}

func TestAssetMutationsAppendAuditLog(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssets(db)

	asset, err := repo.Create(1, NewAsset{Name: "srv-01", Type: models.AssetHardware, OwnerID: 1})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(1, asset.ID))

	var logs []models.AuditLog
	require.NoError(t, db.Order("id asc").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.EqualValues(t, 1, logs[0].UserID)
	assert.Contains(t, logs[0].Action, "created asset")
	assert.Contains(t, logs[1].Action, "deleted asset")
	assert.False(t, logs[0].Timestamp.IsZero())
}

func TestAssetAnonymousMutationSkipsAudit(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssets(db)

	_, err := repo.Create(0, NewAsset{Name: "srv-01", Type: models.AssetHardware, OwnerID: 1})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAssetGetUnknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssets(db)

	_, err := repo.Get(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}
