package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/constants"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.PlanModel{},
		&models.PastureModel{},
		&models.PlantCommunityModel{},
		&models.IndicatorPlantModel{},
		&models.MonitoringAreaModel{},
		&models.MonitoringAreaPurposeModel{},
		&models.PlantCommunityActionModel{},
		&models.GrazingScheduleModel{},
		&models.GrazingScheduleEntryModel{},
		&models.MinisterIssueModel{},
		&models.MinisterIssueActionModel{},
		&models.MinisterIssuePastureModel{},
		&models.AdditionalRequirementModel{},
		&models.ManagementConsiderationModel{},
	)
	require.NoError(t, err)

	return gdb
}

func TestPlanRepository_CreateBackfillsCanonicalID(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewPlanRepository(gdb)
	ctx := context.Background()

	t.Run("zero canonical id takes the storage key", func(t *testing.T) {
		p := models.PlanModel{AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
		require.NoError(t, repo.Create(ctx, &p))
		assert.Equal(t, p.ID, p.CanonicalID)

		var stored models.PlanModel
		require.NoError(t, gdb.First(&stored, p.ID).Error)
		assert.Equal(t, stored.ID, stored.CanonicalID)
	})

	t.Run("explicit canonical id is preserved", func(t *testing.T) {
		p := models.PlanModel{CanonicalID: 77, AgreementID: "RAN000002", StatusID: 1, CreatorID: 1, Version: 2}
		require.NoError(t, repo.Create(ctx, &p))
		assert.Equal(t, uint(77), p.CanonicalID)
	})
}

func TestPlanRepository_FindCurrentVersion(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewPlanRepository(gdb)
	ctx := context.Background()

	current := models.PlanModel{AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
	require.NoError(t, repo.Create(ctx, &current))

	archived := models.PlanModel{CanonicalID: current.CanonicalID, AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: 1}
	require.NoError(t, repo.Create(ctx, &archived))

	t.Run("returns the version -1 row", func(t *testing.T) {
		found, err := repo.FindCurrentVersion(ctx, current.CanonicalID)
		require.NoError(t, err)
		assert.Equal(t, current.ID, found.ID)
		assert.Equal(t, constants.PlanVersionCurrent, found.Version)
	})

	t.Run("unknown canonical id is not found", func(t *testing.T) {
		_, err := repo.FindCurrentVersion(ctx, 9999)
		assert.ErrorIs(t, err, plan.ErrNotFound)
	})
}

func TestPlanRepository_NextVersion(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewPlanRepository(gdb)
	ctx := context.Background()

	p := models.PlanModel{AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
	require.NoError(t, repo.Create(ctx, &p))

	t.Run("fresh lineage starts at 1", func(t *testing.T) {
		next, err := repo.NextVersion(ctx, p.CanonicalID)
		require.NoError(t, err)
		assert.Equal(t, 1, next)
	})

	t.Run("counts past the highest archived version", func(t *testing.T) {
		for _, v := range []int{1, 2} {
			require.NoError(t, repo.Create(ctx, &models.PlanModel{
				CanonicalID: p.CanonicalID, AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: v,
			}))
		}
		next, err := repo.NextVersion(ctx, p.CanonicalID)
		require.NoError(t, err)
		assert.Equal(t, 3, next)
	})
}

func TestPlanRepository_SetVersion(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewPlanRepository(gdb)
	ctx := context.Background()

	p := models.PlanModel{AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
	require.NoError(t, repo.Create(ctx, &p))

	require.NoError(t, repo.SetVersion(ctx, p.ID, 4))

	var stored models.PlanModel
	require.NoError(t, gdb.First(&stored, p.ID).Error)
	assert.Equal(t, 4, stored.Version)
}

func TestPlanRepository_AgreementIDForPlan(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewPlanRepository(gdb)
	ctx := context.Background()

	p := models.PlanModel{AgreementID: "RAN075974", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
	require.NoError(t, repo.Create(ctx, &p))

	t.Run("resolves the owning agreement", func(t *testing.T) {
		id, err := repo.AgreementIDForPlan(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "RAN075974", id)
	})

	t.Run("unknown plan is not found", func(t *testing.T) {
		_, err := repo.AgreementIDForPlan(ctx, 9999)
		assert.ErrorIs(t, err, plan.ErrNotFound)
	})
}

func TestPastureRepository_Remove(t *testing.T) {
	gdb := setupRepoDB(t)
	planRepo := NewPlanRepository(gdb)
	pastureRepo := NewPastureRepository(gdb)
	ctx := context.Background()

	p := models.PlanModel{AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
	require.NoError(t, planRepo.Create(ctx, &p))

	pasture := models.PastureModel{PlanID: p.ID, Name: "North Block"}
	require.NoError(t, pastureRepo.Create(ctx, &pasture))

	t.Run("removes by canonical id scoped to the plan", func(t *testing.T) {
		affected, err := pastureRepo.Remove(ctx, p.ID, pasture.CanonicalID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)
	})

	t.Run("zero rows for a pasture that is already gone", func(t *testing.T) {
		affected, err := pastureRepo.Remove(ctx, p.ID, pasture.CanonicalID)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestPlanRepository_LoadGraphOrdersSchedules(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewPlanRepository(gdb)
	ctx := context.Background()

	p := models.PlanModel{AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
	require.NoError(t, repo.Create(ctx, &p))

	for _, year := range []int{2027, 2025, 2026} {
		require.NoError(t, gdb.Create(&models.GrazingScheduleModel{
			PlanID: p.ID, CanonicalID: uint(year), Year: year,
		}).Error)
	}

	graph, err := repo.LoadGraph(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, graph.Schedules, 3)
	assert.Equal(t, 2025, graph.Schedules[0].Schedule.Year)
	assert.Equal(t, 2026, graph.Schedules[1].Schedule.Year)
	assert.Equal(t, 2027, graph.Schedules[2].Schedule.Year)
}

func TestPlanRepository_StatusExists(t *testing.T) {
	gdb := setupRepoDB(t)
	require.NoError(t, gdb.AutoMigrate(&models.RefPlanStatusModel{}))
	repo := NewPlanRepository(gdb)
	ctx := context.Background()

	require.NoError(t, gdb.Create(&models.RefPlanStatusModel{ID: 1, Code: "C", Name: "Created", Active: true}).Error)
	require.NoError(t, gdb.Create(&models.RefPlanStatusModel{ID: 2, Code: "RET", Name: "Retired", Active: false}).Error)

	t.Run("inactive flag survives the insert", func(t *testing.T) {
		var stored models.RefPlanStatusModel
		require.NoError(t, gdb.First(&stored, 2).Error)
		assert.False(t, stored.Active)
	})

	t.Run("active status", func(t *testing.T) {
		ok, err := repo.StatusExists(ctx, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("inactive status", func(t *testing.T) {
		ok, err := repo.StatusExists(ctx, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown status", func(t *testing.T) {
		ok, err := repo.StatusExists(ctx, 99)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
