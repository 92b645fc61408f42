package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/infrastructure/repository"
	"myra/internal/shared/constants"
	"myra/internal/shared/db"
	"myra/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newDuplicator(gdb *gorm.DB) *DuplicatePlanUseCase {
	return NewDuplicatePlanUseCase(
		repository.NewPlanRepository(gdb),
		repository.NewPastureRepository(gdb),
		repository.NewPlantCommunityRepository(gdb),
		repository.NewIndicatorPlantRepository(gdb),
		repository.NewPlantCommunityActionRepository(gdb),
		repository.NewMonitoringAreaRepository(gdb),
		repository.NewGrazingScheduleRepository(gdb),
		repository.NewMinisterIssueRepository(gdb),
		repository.NewAdditionalRequirementRepository(gdb),
		repository.NewManagementConsiderationRepository(gdb),
		db.NewTransactionManager(gdb),
		testLogger(),
	)
}

// seedPlanTree inserts a plan with two pastures, a full plant community
// subtree, a schedule whose entries span both pastures, a minister issue
// linked to both pastures, and the flat plan-level collections.
func seedPlanTree(t *testing.T, gdb *gorm.DB) *models.PlanModel {
	t.Helper()

	p := models.PlanModel{
		AgreementID: "RAN075974",
		RangeName:   "Crater Creek",
		StatusID:    1,
		CreatorID:   7,
		Version:     constants.PlanVersionCurrent,
	}
	require.NoError(t, gdb.Create(&p).Error)
	require.NoError(t, gdb.Model(&models.PlanModel{}).Where("id = ?", p.ID).Update("canonical_id", p.ID).Error)
	p.CanonicalID = p.ID

	north := models.PastureModel{PlanID: p.ID, Name: "North Block"}
	south := models.PastureModel{PlanID: p.ID, Name: "South Block"}
	require.NoError(t, gdb.Create(&north).Error)
	require.NoError(t, gdb.Create(&south).Error)
	for _, pa := range []*models.PastureModel{&north, &south} {
		require.NoError(t, gdb.Model(&models.PastureModel{}).Where("id = ?", pa.ID).Update("canonical_id", pa.ID).Error)
	}

	community := models.PlantCommunityModel{
		PastureID:       north.ID,
		CommunityTypeID: 3,
		PurposeOfAction: "maintain",
		Name:            "Bluebunch wheatgrass",
	}
	require.NoError(t, gdb.Create(&community).Error)
	require.NoError(t, gdb.Model(&models.PlantCommunityModel{}).Where("id = ?", community.ID).Update("canonical_id", community.ID).Error)

	value := 15.0
	require.NoError(t, gdb.Create(&models.IndicatorPlantModel{
		PlantCommunityID: community.ID,
		CanonicalID:      1,
		Criteria:         "stubbleheight",
		Value:            &value,
	}).Error)

	area := models.MonitoringAreaModel{
		PlantCommunityID: community.ID,
		CanonicalID:      1,
		Name:             "Transect A",
	}
	require.NoError(t, gdb.Create(&area).Error)
	require.NoError(t, gdb.Create(&models.MonitoringAreaPurposeModel{
		MonitoringAreaID: area.ID,
		CanonicalID:      1,
		PurposeTypeID:    2,
	}).Error)

	require.NoError(t, gdb.Create(&models.PlantCommunityActionModel{
		PlantCommunityID: community.ID,
		CanonicalID:      1,
		ActionTypeID:     1,
		Name:             "Timing",
	}).Error)

	schedule := models.GrazingScheduleModel{PlanID: p.ID, CanonicalID: 1, Year: 2026}
	require.NoError(t, gdb.Create(&schedule).Error)
	dateIn := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	for _, pastureID := range []uint{north.ID, south.ID} {
		require.NoError(t, gdb.Create(&models.GrazingScheduleEntryModel{
			GrazingScheduleID: schedule.ID,
			CanonicalID:       pastureID,
			PastureID:         pastureID,
			LivestockCount:    120,
			DateIn:            &dateIn,
		}).Error)
	}

	issue := models.MinisterIssueModel{PlanID: p.ID, CanonicalID: 1, IssueTypeID: 4, Detail: "Riparian damage"}
	require.NoError(t, gdb.Create(&issue).Error)
	require.NoError(t, gdb.Create(&models.MinisterIssueActionModel{
		MinisterIssueID: issue.ID,
		CanonicalID:     1,
		ActionTypeID:    2,
		Detail:          "Install fencing",
	}).Error)
	for _, pastureID := range []uint{north.ID, south.ID} {
		require.NoError(t, gdb.Create(&models.MinisterIssuePastureModel{
			MinisterIssueID: issue.ID,
			PastureID:       pastureID,
		}).Error)
	}

	require.NoError(t, gdb.Create(&models.AdditionalRequirementModel{
		PlanID:      p.ID,
		CanonicalID: 1,
		CategoryID:  1,
		Detail:      "Water licence condition",
	}).Error)
	require.NoError(t, gdb.Create(&models.ManagementConsiderationModel{
		PlanID:      p.ID,
		CanonicalID: 1,
		Detail:      "Consider deferred turnout",
	}).Error)

	return &p
}

func TestDuplicatePlanUseCase_AsNewVersion(t *testing.T) {
	gdb := setupTestDB(t)
	source := seedPlanTree(t, gdb)
	uc := newDuplicator(gdb)
	ctx := context.Background()

	copied, err := uc.Execute(ctx, source.ID, plan.AsNewVersion)
	require.NoError(t, err)
	require.NotNil(t, copied)

	t.Run("copy keeps the canonical id and becomes current", func(t *testing.T) {
		assert.NotEqual(t, source.ID, copied.ID)
		assert.Equal(t, source.CanonicalID, copied.CanonicalID)
		assert.Equal(t, constants.PlanVersionCurrent, copied.Version)
	})

	t.Run("source is archived with the next version number", func(t *testing.T) {
		var archived models.PlanModel
		require.NoError(t, gdb.First(&archived, source.ID).Error)
		assert.Equal(t, 1, archived.Version)
	})

	t.Run("copied tree has the same shape as the source", func(t *testing.T) {
		sourceGraph, err := repository.NewPlanRepository(gdb).LoadGraph(ctx, source.ID)
		require.NoError(t, err)
		copiedGraph, err := repository.NewPlanRepository(gdb).LoadGraph(ctx, copied.ID)
		require.NoError(t, err)
		assert.Equal(t, sourceGraph.Count(), copiedGraph.Count())
	})

	t.Run("copied rows keep their canonical ids", func(t *testing.T) {
		var sourcePastures, copiedPastures []models.PastureModel
		require.NoError(t, gdb.Where("plan_id = ?", source.ID).Order("canonical_id asc").Find(&sourcePastures).Error)
		require.NoError(t, gdb.Where("plan_id = ?", copied.ID).Order("canonical_id asc").Find(&copiedPastures).Error)
		require.Len(t, copiedPastures, len(sourcePastures))
		for i := range sourcePastures {
			assert.Equal(t, sourcePastures[i].CanonicalID, copiedPastures[i].CanonicalID)
			assert.NotEqual(t, sourcePastures[i].ID, copiedPastures[i].ID)
		}
	})

	t.Run("cross-branch references are remapped to copied pastures", func(t *testing.T) {
		copiedPastureIDs := map[uint]bool{}
		var copiedPastures []models.PastureModel
		require.NoError(t, gdb.Where("plan_id = ?", copied.ID).Find(&copiedPastures).Error)
		for _, pa := range copiedPastures {
			copiedPastureIDs[pa.ID] = true
		}

		var schedules []models.GrazingScheduleModel
		require.NoError(t, gdb.Where("plan_id = ?", copied.ID).Find(&schedules).Error)
		require.Len(t, schedules, 1)
		var entries []models.GrazingScheduleEntryModel
		require.NoError(t, gdb.Where("grazing_schedule_id = ?", schedules[0].ID).Find(&entries).Error)
		require.Len(t, entries, 2)
		for _, entry := range entries {
			assert.True(t, copiedPastureIDs[entry.PastureID],
				"entry %d points at pasture %d which is not part of the copy", entry.ID, entry.PastureID)
		}

		var issues []models.MinisterIssueModel
		require.NoError(t, gdb.Where("plan_id = ?", copied.ID).Find(&issues).Error)
		require.Len(t, issues, 1)
		var links []models.MinisterIssuePastureModel
		require.NoError(t, gdb.Where("minister_issue_id = ?", issues[0].ID).Find(&links).Error)
		require.Len(t, links, 2)
		for _, link := range links {
			assert.True(t, copiedPastureIDs[link.PastureID])
		}
	})
}

func TestDuplicatePlanUseCase_AsNewPlan(t *testing.T) {
	gdb := setupTestDB(t)
	source := seedPlanTree(t, gdb)
	uc := newDuplicator(gdb)
	ctx := context.Background()

	copied, err := uc.Execute(ctx, source.ID, plan.AsNewPlan)
	require.NoError(t, err)

	t.Run("copy starts its own lineage", func(t *testing.T) {
		assert.NotEqual(t, source.CanonicalID, copied.CanonicalID)
		assert.Equal(t, copied.ID, copied.CanonicalID)
		assert.Equal(t, constants.PlanVersionCurrent, copied.Version)
	})

	t.Run("source is left untouched", func(t *testing.T) {
		var reloaded models.PlanModel
		require.NoError(t, gdb.First(&reloaded, source.ID).Error)
		assert.Equal(t, constants.PlanVersionCurrent, reloaded.Version)
		assert.Equal(t, source.CanonicalID, reloaded.CanonicalID)
	})
}

func TestDuplicatePlanUseCase_Mutations(t *testing.T) {
	gdb := setupTestDB(t)
	source := seedPlanTree(t, gdb)
	uc := newDuplicator(gdb)

	copied, err := uc.Execute(context.Background(), source.ID, plan.AsNewPlan, func(p *models.PlanModel) {
		p.CreatorID = 42
		p.AgreementID = "RAN099999"
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), copied.CreatorID)
	assert.Equal(t, "RAN099999", copied.AgreementID)
}

func TestDuplicatePlanUseCase_EmptyPlan(t *testing.T) {
	gdb := setupTestDB(t)
	uc := newDuplicator(gdb)
	ctx := context.Background()

	p := models.PlanModel{AgreementID: "RAN000001", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
	require.NoError(t, gdb.Create(&p).Error)
	require.NoError(t, gdb.Model(&models.PlanModel{}).Where("id = ?", p.ID).Update("canonical_id", p.ID).Error)

	copied, err := uc.Execute(ctx, p.ID, plan.AsNewVersion)
	require.NoError(t, err)

	var pastureCount int64
	require.NoError(t, gdb.Model(&models.PastureModel{}).Where("plan_id = ?", copied.ID).Count(&pastureCount).Error)
	assert.Zero(t, pastureCount)
}

func TestDuplicatePlanUseCase_InconsistentGraphRollsBack(t *testing.T) {
	gdb := setupTestDB(t)
	source := seedPlanTree(t, gdb)
	uc := newDuplicator(gdb)
	ctx := context.Background()

	// Point one schedule entry at a pasture the plan does not own.
	var entry models.GrazingScheduleEntryModel
	require.NoError(t, gdb.First(&entry).Error)
	require.NoError(t, gdb.Model(&models.GrazingScheduleEntryModel{}).
		Where("id = ?", entry.ID).Update("pasture_id", 99999).Error)

	var plansBefore int64
	require.NoError(t, gdb.Model(&models.PlanModel{}).Count(&plansBefore).Error)

	_, err := uc.Execute(ctx, source.ID, plan.AsNewVersion)
	require.ErrorIs(t, err, plan.ErrInconsistentGraph)

	t.Run("nothing is persisted", func(t *testing.T) {
		var plansAfter int64
		require.NoError(t, gdb.Model(&models.PlanModel{}).Count(&plansAfter).Error)
		assert.Equal(t, plansBefore, plansAfter)

		var reloaded models.PlanModel
		require.NoError(t, gdb.First(&reloaded, source.ID).Error)
		assert.Equal(t, constants.PlanVersionCurrent, reloaded.Version,
			"version stamp on the source must roll back with the copy")
	})
}

func TestDuplicatePlanUseCase_UnknownPolicy(t *testing.T) {
	gdb := setupTestDB(t)
	source := seedPlanTree(t, gdb)
	uc := newDuplicator(gdb)

	_, err := uc.Execute(context.Background(), source.ID, plan.VersioningPolicy(9))
	assert.Error(t, err)
}
