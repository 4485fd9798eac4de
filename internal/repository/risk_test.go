package repository

import (
	"testing"

	"isms-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAsset(t *testing.T, db *gorm.DB) models.Asset {
	t.Helper()
	asset, err := NewAssets(db).Create(1, NewAsset{
		Name:    "db-server",
		Type:    models.AssetHardware,
		OwnerID: 1,
	})
	require.NoError(t, err)
	return asset
}

func TestRiskSeverityBounds(t *testing.T) {
	db := newTestDB(t)
	asset := seedAsset(t, db)
	repo := NewRisks(db)

	var validationErr *ValidationError

	_, err := repo.Create(1, NewRisk{Description: "x", Severity: 0, Likelihood: 3, AssetID: asset.ID})
	require.ErrorAs(t, err, &validationErr)

	_, err = repo.Create(1, NewRisk{Description: "x", Severity: 6, Likelihood: 3, AssetID: asset.ID})
	require.ErrorAs(t, err, &validationErr)

	_, err = repo.Create(1, NewRisk{Description: "x", Severity: 1, Likelihood: 1, AssetID: asset.ID})
	assert.NoError(t, err)

	_, err = repo.Create(1, NewRisk{Description: "x", Severity: 5, Likelihood: 5, AssetID: asset.ID})
	assert.NoError(t, err)
}

func TestRiskDefaultStatus(t *testing.T) {
	db := newTestDB(t)
	asset := seedAsset(t, db)
	repo := NewRisks(db)

	risk, err := repo.Create(1, NewRisk{Description: "weak passwords", Severity: 3, Likelihood: 4, AssetID: asset.ID})
	require.NoError(t, err)
	assert.Equal(t, models.RiskIdentified, risk.Status)

	status := models.RiskMitigated
	updated, err := repo.Update(1, risk.ID, RiskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.RiskMitigated, updated.Status)
}

func TestRiskUnknownAsset(t *testing.T) {
	db := newTestDB(t)
	repo := NewRisks(db)

	_, err := repo.Create(1, NewRisk{Description: "x", Severity: 3, Likelihood: 3, AssetID: 123})

	var fkErr *ForeignKeyError
	require.ErrorAs(t, err, &fkErr)
	assert.Equal(t, "asset", fkErr.Entity)
}

func TestRiskPolicyLinks(t *testing.T) {
	db := newTestDB(t)
	asset := seedAsset(t, db)
	risks := NewRisks(db)
	policies := NewPolicies(db)

	risk, err := risks.Create(1, NewRisk{Description: "x", Severity: 3, Likelihood: 3, AssetID: asset.ID})
	require.NoError(t, err)
	policy, err := policies.Create(1, NewPolicy{Title: "Access Control", Content: "...", Version: "1.0"})
	require.NoError(t, err)
	assert.Equal(t, models.PolicyDraft, policy.Status)

	_, err = risks.AttachPolicy(1, risk.ID, policy.ID)
	require.NoError(t, err)

	linked, err := risks.PoliciesForRisk(risk.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, policy.ID, linked[0].ID)

	// the (risk, policy) pair is unique
	_, err = risks.AttachPolicy(1, risk.ID, policy.ID)
	var uniqueErr *UniquenessError
	require.ErrorAs(t, err, &uniqueErr)

	require.NoError(t, risks.DetachPolicy(1, risk.ID, policy.ID))
	assert.ErrorIs(t, risks.DetachPolicy(1, risk.ID, policy.ID), ErrNotFound)
}

func TestRiskDeleteRemovesLinks(t *testing.T) {
	db := newTestDB(t)
	asset := seedAsset(t, db)
	risks := NewRisks(db)
	policies := NewPolicies(db)

	risk, err := risks.Create(1, NewRisk{Description: "x", Severity: 2, Likelihood: 2, AssetID: asset.ID})
	require.NoError(t, err)
	policy, err := policies.Create(1, NewPolicy{Title: "Patching", Content: "...", Version: "1.0"})
	require.NoError(t, err)

	_, err = risks.AttachPolicy(1, risk.ID, policy.ID)
	require.NoError(t, err)

	require.NoError(t, risks.Delete(1, risk.ID))

	var links int64
	require.NoError(t, db.Model(&models.RiskPolicy{}).Count(&links).Error)
	assert.Zero(t, links)

	_, err = policies.Get(policy.ID)
	assert.NoError(t, err, "the policy itself survives")
}

func TestIncidentDefaults(t *testing.T) {
	db := newTestDB(t)
	asset := seedAsset(t, db)
	repo := NewIncidents(db)

	incident, err := repo.Create(1, NewIncident{
		Description: "phishing mail reported",
		Severity:    models.IncidentHigh,
		AssetID:     asset.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IncidentOpen, incident.Status)
	assert.False(t, incident.DateReported.IsZero())

	var validationErr *ValidationError
	_, err = repo.Create(1, NewIncident{Description: "x", Severity: "Catastrophic", AssetID: asset.ID})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "severity", validationErr.Field)
}
