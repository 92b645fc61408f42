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

func newIssueUseCases(gdb *gorm.DB) *MinisterIssueUseCases {
	return NewMinisterIssueUseCases(
		repository.NewPlanRepository(gdb),
		openAccess(),
		repository.NewMinisterIssueRepository(gdb),
		repository.NewPastureRepository(gdb),
		db.NewTransactionManager(gdb),
		testLogger(),
	)
}

func TestMinisterIssueUseCases_Create(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureIDs := seedPlanWithPastures(t, gdb)
	uc := newIssueUseCases(gdb)
	ctx := context.Background()

	view, err := uc.Create(ctx, adminUser(), planID, MinisterIssueCommand{
		IssueTypeID: 4,
		Detail:      "Riparian damage along Crater Creek",
		PastureIDs:  pastureIDs,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(4), view.IssueTypeID)
	assert.ElementsMatch(t, pastureIDs, view.Pastures)
}

func TestMinisterIssueUseCases_CreateRejectsForeignPasture(t *testing.T) {
	gdb := setupTestDB(t)
	planID, _ := seedPlanWithPastures(t, gdb)
	uc := newIssueUseCases(gdb)

	_, err := uc.Create(context.Background(), adminUser(), planID, MinisterIssueCommand{
		IssueTypeID: 4,
		PastureIDs:  []uint{4242},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestMinisterIssueUseCases_UpdateReplacesPastureLinks(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureIDs := seedPlanWithPastures(t, gdb)
	uc := newIssueUseCases(gdb)
	ctx := context.Background()

	created, err := uc.Create(ctx, adminUser(), planID, MinisterIssueCommand{
		IssueTypeID: 4,
		PastureIDs:  pastureIDs,
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, adminUser(), planID, created.ID, MinisterIssueCommand{
		IssueTypeID: 4,
		Identified:  true,
		PastureIDs:  pastureIDs[:1],
	})
	require.NoError(t, err)

	assert.True(t, updated.Identified)
	assert.Equal(t, pastureIDs[:1], updated.Pastures)

	t.Run("old links are gone from storage", func(t *testing.T) {
		var count int64
		require.NoError(t, gdb.Model(&models.MinisterIssuePastureModel{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestMinisterIssueUseCases_Actions(t *testing.T) {
	gdb := setupTestDB(t)
	planID, _ := seedPlanWithPastures(t, gdb)
	uc := newIssueUseCases(gdb)
	ctx := context.Background()

	issue, err := uc.Create(ctx, adminUser(), planID, MinisterIssueCommand{IssueTypeID: 4})
	require.NoError(t, err)

	action, err := uc.CreateAction(ctx, adminUser(), planID, issue.ID, MinisterIssueActionCommand{
		ActionTypeID: 2,
		Detail:       "Install fencing",
	})
	require.NoError(t, err)
	assert.Equal(t, "Install fencing", action.Detail)

	updated, err := uc.UpdateAction(ctx, adminUser(), planID, issue.ID, action.ID, MinisterIssueActionCommand{
		ActionTypeID: 2,
		Detail:       "Install fencing and off-stream water",
	})
	require.NoError(t, err)
	assert.Equal(t, action.ID, updated.ID)
	assert.Equal(t, "Install fencing and off-stream water", updated.Detail)

	require.NoError(t, uc.DestroyAction(ctx, adminUser(), planID, issue.ID, action.ID))

	t.Run("destroying a missing action is a bad request", func(t *testing.T) {
		err := uc.DestroyAction(ctx, adminUser(), planID, issue.ID, action.ID)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})
}

func TestMinisterIssueUseCases_DestroyCascades(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureIDs := seedPlanWithPastures(t, gdb)
	uc := newIssueUseCases(gdb)
	ctx := context.Background()

	issue, err := uc.Create(ctx, adminUser(), planID, MinisterIssueCommand{
		IssueTypeID: 4,
		PastureIDs:  pastureIDs,
	})
	require.NoError(t, err)

	_, err = uc.CreateAction(ctx, adminUser(), planID, issue.ID, MinisterIssueActionCommand{ActionTypeID: 2})
	require.NoError(t, err)

	require.NoError(t, uc.Destroy(ctx, adminUser(), planID, issue.ID))

	var actions, links int64
	require.NoError(t, gdb.Model(&models.MinisterIssueActionModel{}).Count(&actions).Error)
	require.NoError(t, gdb.Model(&models.MinisterIssuePastureModel{}).Count(&links).Error)
	assert.Zero(t, actions)
	assert.Zero(t, links)
}
