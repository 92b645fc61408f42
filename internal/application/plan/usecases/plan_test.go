package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myra/internal/infrastructure/persistence/models"
	"myra/internal/infrastructure/repository"
	"myra/internal/shared/constants"
	apperrors "myra/internal/shared/errors"
)

func newPlanUseCases(gdb *gorm.DB) *PlanUseCases {
	return NewPlanUseCases(
		repository.NewPlanRepository(gdb),
		openAccess(),
		newDuplicator(gdb),
		testLogger(),
	)
}

func seedStatuses(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	require.NoError(t, gdb.AutoMigrate(&models.RefPlanStatusModel{}))
	require.NoError(t, gdb.Create(&models.RefPlanStatusModel{ID: 1, Code: "C", Name: "Created", Active: true}).Error)
	require.NoError(t, gdb.Create(&models.RefPlanStatusModel{ID: 2, Code: "A", Name: "Approved", Active: true}).Error)
	require.NoError(t, gdb.Create(&models.RefPlanStatusModel{ID: 3, Code: "RET", Name: "Retired", Active: false}).Error)
}

func TestPlanUseCases_Create(t *testing.T) {
	gdb := setupTestDB(t)
	seedStatuses(t, gdb)
	uc := newPlanUseCases(gdb)
	ctx := context.Background()

	view, err := uc.Create(ctx, adminUser(), CreatePlanCommand{
		AgreementID: "RAN075974",
		RangeName:   "Crater Creek",
		StatusID:    1,
	})
	require.NoError(t, err)

	t.Run("view id is the canonical id", func(t *testing.T) {
		var stored models.PlanModel
		require.NoError(t, gdb.First(&stored).Error)
		assert.Equal(t, stored.CanonicalID, view.ID)
		assert.Equal(t, stored.ID, stored.CanonicalID)
	})

	t.Run("new plan is the current version", func(t *testing.T) {
		var stored models.PlanModel
		require.NoError(t, gdb.First(&stored).Error)
		assert.Equal(t, constants.PlanVersionCurrent, stored.Version)
	})

	t.Run("creator is the requesting user", func(t *testing.T) {
		var stored models.PlanModel
		require.NoError(t, gdb.First(&stored).Error)
		assert.Equal(t, adminUser().ID, stored.CreatorID)
	})
}

func TestPlanUseCases_CreateRejectsUnknownStatus(t *testing.T) {
	gdb := setupTestDB(t)
	seedStatuses(t, gdb)
	uc := newPlanUseCases(gdb)

	t.Run("missing status", func(t *testing.T) {
		_, err := uc.Create(context.Background(), adminUser(), CreatePlanCommand{
			AgreementID: "RAN075974",
			StatusID:    99,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("inactive status", func(t *testing.T) {
		_, err := uc.Create(context.Background(), adminUser(), CreatePlanCommand{
			AgreementID: "RAN075974",
			StatusID:    3,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestPlanUseCases_Get(t *testing.T) {
	gdb := setupTestDB(t)
	source := seedPlanTree(t, gdb)
	uc := newPlanUseCases(gdb)

	view, err := uc.Get(context.Background(), adminUser(), source.CanonicalID)
	require.NoError(t, err)

	assert.Equal(t, source.CanonicalID, view.ID)
	require.Len(t, view.Pastures, 2)
	require.Len(t, view.GrazingSchedules, 1)
	require.Len(t, view.MinisterIssues, 1)
	require.Len(t, view.AdditionalRequirements, 1)
	require.Len(t, view.ManagementConsiderations, 1)

	t.Run("schedule entries reference pastures by canonical id", func(t *testing.T) {
		pastureIDs := map[uint]bool{}
		for _, pv := range view.Pastures {
			pastureIDs[pv.ID] = true
		}
		for _, entry := range view.GrazingSchedules[0].Entries {
			assert.True(t, pastureIDs[entry.PastureID])
		}
	})
}

func TestPlanUseCases_UpdateStatus(t *testing.T) {
	gdb := setupTestDB(t)
	seedStatuses(t, gdb)
	source := seedPlanTree(t, gdb)
	uc := newPlanUseCases(gdb)

	view, err := uc.UpdateStatus(context.Background(), adminUser(), source.CanonicalID, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), view.StatusID)
}

func TestPlanUseCases_CreateVersion(t *testing.T) {
	gdb := setupTestDB(t)
	source := seedPlanTree(t, gdb)
	uc := newPlanUseCases(gdb)
	ctx := context.Background()

	view, err := uc.CreateVersion(ctx, adminUser(), source.CanonicalID)
	require.NoError(t, err)

	t.Run("the canonical id is stable across versions", func(t *testing.T) {
		assert.Equal(t, source.CanonicalID, view.ID)
	})

	t.Run("get resolves to the new current version", func(t *testing.T) {
		current, err := uc.Get(ctx, adminUser(), source.CanonicalID)
		require.NoError(t, err)
		assert.Len(t, current.Pastures, 2)

		var rows int64
		require.NoError(t, gdb.Model(&models.PlanModel{}).
			Where("canonical_id = ?", source.CanonicalID).Count(&rows).Error)
		assert.EqualValues(t, 2, rows)
	})
}

func TestPlanUseCases_Copy(t *testing.T) {
	gdb := setupTestDB(t)
	source := seedPlanTree(t, gdb)
	uc := newPlanUseCases(gdb)
	ctx := context.Background()

	view, err := uc.Copy(ctx, adminUser(), source.CanonicalID, CopyPlanCommand{AgreementID: "RAN099999"})
	require.NoError(t, err)

	t.Run("copy starts a new lineage under the target agreement", func(t *testing.T) {
		assert.NotEqual(t, source.CanonicalID, view.ID)
		assert.Equal(t, "RAN099999", view.AgreementID)
	})

	t.Run("source keeps its own lineage", func(t *testing.T) {
		original, err := uc.Get(ctx, adminUser(), source.CanonicalID)
		require.NoError(t, err)
		assert.Equal(t, "RAN075974", original.AgreementID)
	})
}

func TestPlanUseCases_GetUnknownPlan(t *testing.T) {
	gdb := setupTestDB(t)
	uc := newPlanUseCases(gdb)

	_, err := uc.Get(context.Background(), adminUser(), 777)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
