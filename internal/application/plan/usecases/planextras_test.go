package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myra/internal/infrastructure/persistence/models"
	"myra/internal/infrastructure/repository"
	apperrors "myra/internal/shared/errors"
)

func newExtrasUseCases(gdb *gorm.DB) *PlanExtrasUseCases {
	return NewPlanExtrasUseCases(
		repository.NewPlanRepository(gdb),
		openAccess(),
		repository.NewAdditionalRequirementRepository(gdb),
		repository.NewManagementConsiderationRepository(gdb),
		testLogger(),
	)
}

func TestPlanExtrasUseCases_AdditionalRequirements(t *testing.T) {
	gdb := setupTestDB(t)
	p := seedCurrentPlan(t, gdb)
	uc := newExtrasUseCases(gdb)
	ctx := context.Background()

	view, err := uc.CreateRequirement(ctx, adminUser(), p.CanonicalID, AdditionalRequirementCommand{
		CategoryID: 1,
		Detail:     "Water quality sampling each June",
		URL:        "https://example.com/sampling",
	})
	require.NoError(t, err)
	require.NotZero(t, view.ID)

	t.Run("update rewrites the row", func(t *testing.T) {
		updated, err := uc.UpdateRequirement(ctx, adminUser(), p.CanonicalID, view.ID, AdditionalRequirementCommand{
			CategoryID: 2,
			Detail:     "Water quality sampling each July",
			URL:        "https://example.com/sampling-v2",
		})
		require.NoError(t, err)
		assert.Equal(t, view.ID, updated.ID)
		assert.Equal(t, uint(2), updated.CategoryID)
		assert.Equal(t, "Water quality sampling each July", updated.Detail)

		var stored models.AdditionalRequirementModel
		require.NoError(t, gdb.Where("canonical_id = ?", view.ID).First(&stored).Error)
		assert.Equal(t, uint(2), stored.CategoryID)
	})

	t.Run("update of an unknown requirement", func(t *testing.T) {
		_, err := uc.UpdateRequirement(ctx, adminUser(), p.CanonicalID, 4242, AdditionalRequirementCommand{CategoryID: 1})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("destroy removes the row", func(t *testing.T) {
		require.NoError(t, uc.DestroyRequirement(ctx, adminUser(), p.CanonicalID, view.ID))

		var count int64
		require.NoError(t, gdb.Model(&models.AdditionalRequirementModel{}).Count(&count).Error)
		assert.Zero(t, count)

		err := uc.DestroyRequirement(ctx, adminUser(), p.CanonicalID, view.ID)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})
}

func TestPlanExtrasUseCases_ManagementConsiderations(t *testing.T) {
	gdb := setupTestDB(t)
	p := seedCurrentPlan(t, gdb)
	uc := newExtrasUseCases(gdb)
	ctx := context.Background()

	typeID := uint(1)
	view, err := uc.CreateConsideration(ctx, adminUser(), p.CanonicalID, ManagementConsiderationCommand{
		ConsiderationTypeID: &typeID,
		Detail:              "Cattle guard on the south access road",
	})
	require.NoError(t, err)
	require.NotZero(t, view.ID)

	t.Run("update keeps the canonical id", func(t *testing.T) {
		newType := uint(2)
		updated, err := uc.UpdateConsideration(ctx, adminUser(), p.CanonicalID, view.ID, ManagementConsiderationCommand{
			ConsiderationTypeID: &newType,
			Detail:              "Cattle guard relocated to the east gate",
		})
		require.NoError(t, err)
		assert.Equal(t, view.ID, updated.ID)
		require.NotNil(t, updated.ConsiderationTypeID)
		assert.Equal(t, uint(2), *updated.ConsiderationTypeID)
	})

	t.Run("destroy", func(t *testing.T) {
		require.NoError(t, uc.DestroyConsideration(ctx, adminUser(), p.CanonicalID, view.ID))

		err := uc.DestroyConsideration(ctx, adminUser(), p.CanonicalID, view.ID)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})
}
