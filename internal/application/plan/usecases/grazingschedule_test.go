package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myra/internal/infrastructure/persistence/models"
	"myra/internal/infrastructure/repository"
	"myra/internal/shared/db"
	apperrors "myra/internal/shared/errors"
)

func newScheduleUseCases(gdb *gorm.DB) *GrazingScheduleUseCases {
	return NewGrazingScheduleUseCases(
		repository.NewPlanRepository(gdb),
		openAccess(),
		repository.NewGrazingScheduleRepository(gdb),
		repository.NewPastureRepository(gdb),
		db.NewTransactionManager(gdb),
		testLogger(),
	)
}

func seedPlanWithPastures(t *testing.T, gdb *gorm.DB) (planID uint, pastureIDs []uint) {
	t.Helper()
	ctx := context.Background()

	p := seedCurrentPlan(t, gdb)
	pastureRepo := repository.NewPastureRepository(gdb)
	for _, name := range []string{"North Block", "South Block"} {
		pasture := models.PastureModel{PlanID: p.ID, Name: name}
		require.NoError(t, pastureRepo.Create(ctx, &pasture))
		pastureIDs = append(pastureIDs, pasture.CanonicalID)
	}
	return p.CanonicalID, pastureIDs
}

func TestGrazingScheduleUseCases_Create(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureIDs := seedPlanWithPastures(t, gdb)
	uc := newScheduleUseCases(gdb)
	ctx := context.Background()

	view, err := uc.Create(ctx, adminUser(), planID, GrazingScheduleCommand{
		Year: 2026,
		Entries: []GrazingScheduleEntryCommand{
			{PastureID: pastureIDs[0], LivestockCount: 120},
			{PastureID: pastureIDs[1], LivestockCount: 40},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2026, view.Year)
	require.Len(t, view.Entries, 2)

	t.Run("entries carry pasture canonical ids", func(t *testing.T) {
		got := []uint{view.Entries[0].PastureID, view.Entries[1].PastureID}
		assert.ElementsMatch(t, pastureIDs, got)
	})
}

func TestGrazingScheduleUseCases_CreateRejectsForeignPasture(t *testing.T) {
	gdb := setupTestDB(t)
	planID, _ := seedPlanWithPastures(t, gdb)
	uc := newScheduleUseCases(gdb)

	_, err := uc.Create(context.Background(), adminUser(), planID, GrazingScheduleCommand{
		Year: 2026,
		Entries: []GrazingScheduleEntryCommand{
			{PastureID: 4242, LivestockCount: 10},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))

	t.Run("no schedule is left behind", func(t *testing.T) {
		var count int64
		require.NoError(t, gdb.Model(&models.GrazingScheduleModel{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestGrazingScheduleUseCases_UpdateReplacesEntries(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureIDs := seedPlanWithPastures(t, gdb)
	uc := newScheduleUseCases(gdb)
	ctx := context.Background()

	created, err := uc.Create(ctx, adminUser(), planID, GrazingScheduleCommand{
		Year: 2026,
		Entries: []GrazingScheduleEntryCommand{
			{PastureID: pastureIDs[0], LivestockCount: 120},
			{PastureID: pastureIDs[1], LivestockCount: 40},
		},
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, adminUser(), planID, created.ID, GrazingScheduleCommand{
		Year:      2027,
		Narrative: "Deferred turnout",
		Entries: []GrazingScheduleEntryCommand{
			{PastureID: pastureIDs[1], LivestockCount: 60},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2027, updated.Year)
	require.Len(t, updated.Entries, 1)
	assert.Equal(t, pastureIDs[1], updated.Entries[0].PastureID)

	t.Run("old entries are gone from storage", func(t *testing.T) {
		var count int64
		require.NoError(t, gdb.Model(&models.GrazingScheduleEntryModel{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestGrazingScheduleUseCases_Destroy(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureIDs := seedPlanWithPastures(t, gdb)
	uc := newScheduleUseCases(gdb)
	ctx := context.Background()

	created, err := uc.Create(ctx, adminUser(), planID, GrazingScheduleCommand{
		Year: 2026,
		Entries: []GrazingScheduleEntryCommand{
			{PastureID: pastureIDs[0], LivestockCount: 120},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Destroy(ctx, adminUser(), planID, created.ID))

	t.Run("entries are removed with the schedule", func(t *testing.T) {
		var count int64
		require.NoError(t, gdb.Model(&models.GrazingScheduleEntryModel{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("destroying again is a bad request", func(t *testing.T) {
		err := uc.Destroy(ctx, adminUser(), planID, created.ID)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})
}
