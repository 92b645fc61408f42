package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myra/internal/infrastructure/persistence/models"
	"myra/internal/infrastructure/repository"
	"myra/internal/shared/constants"
	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/logger"
)

func setupZoneDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.DistrictModel{},
		&models.ZoneModel{},
		&models.UserAccountModel{},
	))
	return gdb
}

func newZoneUseCases(gdb *gorm.DB) *ZoneUseCases {
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewZoneUseCases(repository.NewZoneRepository(gdb), repository.NewUserRepository(gdb), log)
}

func seedZones(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	districts := []models.DistrictModel{
		{ID: 1, Code: "DCS", Description: "Cascades"},
		{ID: 2, Code: "DOS", Description: "Okanagan Shuswap"},
	}
	require.NoError(t, gdb.Create(&districts).Error)

	officer := models.UserAccountModel{
		ID:         7,
		Username:   "rofficer",
		Email:      "officer@example.com",
		GivenName:  "Riley",
		FamilyName: "Officer",
		Role:       constants.RoleRangeOfficer,
		Active:     true,
	}
	require.NoError(t, gdb.Create(&officer).Error)

	officerID := officer.ID
	zones := []models.ZoneModel{
		{ID: 1, Code: "CHWK", DistrictID: 1, UserID: &officerID, Description: "Chilliwack"},
		{ID: 2, Code: "MERR", DistrictID: 1, Description: "Merritt"},
		{ID: 3, Code: "VERN", DistrictID: 2, Description: "Vernon"},
	}
	require.NoError(t, gdb.Create(&zones).Error)
}

func TestZoneUseCases_List(t *testing.T) {
	gdb := setupZoneDB(t)
	seedZones(t, gdb)
	uc := newZoneUseCases(gdb)
	ctx := context.Background()

	t.Run("all zones with relations", func(t *testing.T) {
		views, err := uc.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, views, 3)

		assert.Equal(t, "CHWK", views[0].Code)
		assert.Equal(t, "DCS", views[0].District.Code)
		require.NotNil(t, views[0].User)
		assert.Equal(t, "rofficer", views[0].User.Username)

		assert.Nil(t, views[1].User)
	})

	t.Run("filtered by district", func(t *testing.T) {
		districtID := uint(2)
		views, err := uc.List(ctx, &districtID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "VERN", views[0].Code)
	})

	t.Run("unknown district yields empty list", func(t *testing.T) {
		districtID := uint(99)
		views, err := uc.List(ctx, &districtID)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestZoneUseCases_AssignUser(t *testing.T) {
	gdb := setupZoneDB(t)
	seedZones(t, gdb)
	uc := newZoneUseCases(gdb)
	ctx := context.Background()

	t.Run("assigns officer and replies with the user", func(t *testing.T) {
		view, err := uc.AssignUser(ctx, 2, 7)
		require.NoError(t, err)
		assert.Equal(t, uint(7), view.ID)
		assert.Equal(t, "rofficer", view.Username)

		var stored models.ZoneModel
		require.NoError(t, gdb.First(&stored, 2).Error)
		require.NotNil(t, stored.UserID)
		assert.Equal(t, uint(7), *stored.UserID)
	})

	t.Run("unknown zone", func(t *testing.T) {
		_, err := uc.AssignUser(ctx, 99, 7)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.AssignUser(ctx, 1, 99)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
