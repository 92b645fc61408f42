package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myra/internal/domain/agreement"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/infrastructure/repository"
	"myra/internal/shared/constants"
	"myra/internal/shared/db"
)

// stubAgreementRepo answers access-check queries without agreement tables.
type stubAgreementRepo struct {
	exists     bool
	zoneUserID *uint
	holder     bool
}

func (s *stubAgreementRepo) Exists(ctx context.Context, agreementID string) (bool, error) {
	return s.exists, nil
}

func (s *stubAgreementRepo) ZoneUserID(ctx context.Context, agreementID string) (*uint, error) {
	return s.zoneUserID, nil
}

func (s *stubAgreementRepo) IsHolder(ctx context.Context, userID uint, agreementID string) (bool, error) {
	return s.holder, nil
}

func adminUser() agreement.User {
	return agreement.User{ID: 1, Role: constants.RoleAdmin}
}

func openAccess() *agreement.AccessChecker {
	return agreement.NewAccessChecker(&stubAgreementRepo{exists: true})
}

// seedCommunityTree creates a current plan with one pasture and one plant
// community through the repositories, so canonical ids are backfilled the
// same way production writes are.
func seedCommunityTree(t *testing.T, gdb *gorm.DB) (planID, pastureID, communityID uint) {
	t.Helper()
	ctx := context.Background()

	p := models.PlanModel{
		AgreementID: "RAN075974",
		StatusID:    1,
		CreatorID:   1,
		Version:     constants.PlanVersionCurrent,
	}
	require.NoError(t, repository.NewPlanRepository(gdb).Create(ctx, &p))

	pasture := models.PastureModel{PlanID: p.ID, Name: "North Block"}
	require.NoError(t, repository.NewPastureRepository(gdb).Create(ctx, &pasture))

	community := models.PlantCommunityModel{
		PastureID:       pasture.ID,
		CommunityTypeID: 2,
		PurposeOfAction: "none",
	}
	require.NoError(t, repository.NewPlantCommunityRepository(gdb).Create(ctx, &community))

	return p.CanonicalID, pasture.CanonicalID, community.CanonicalID
}

func newMonitoringAreaUseCases(gdb *gorm.DB) *MonitoringAreaUseCases {
	return NewMonitoringAreaUseCases(
		repository.NewPlanRepository(gdb),
		openAccess(),
		repository.NewPastureRepository(gdb),
		repository.NewPlantCommunityRepository(gdb),
		repository.NewMonitoringAreaRepository(gdb),
		db.NewTransactionManager(gdb),
		testLogger(),
	)
}

func TestMonitoringAreaUseCases_Create(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureID, communityID := seedCommunityTree(t, gdb)
	uc := newMonitoringAreaUseCases(gdb)
	ctx := context.Background()

	view, err := uc.Create(ctx, adminUser(), planID, pastureID, communityID, MonitoringAreaCommand{
		Name:           "Transect A",
		PurposeTypeIDs: []uint{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "Transect A", view.Name)
	require.Len(t, view.Purposes, 2)
	assert.Equal(t, uint(1), view.Purposes[0].PurposeTypeID)
	assert.Equal(t, uint(2), view.Purposes[1].PurposeTypeID)
}

func TestMonitoringAreaUseCases_UpdateReconcilesPurposes(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureID, communityID := seedCommunityTree(t, gdb)
	uc := newMonitoringAreaUseCases(gdb)
	ctx := context.Background()

	created, err := uc.Create(ctx, adminUser(), planID, pastureID, communityID, MonitoringAreaCommand{
		Name:           "Transect A",
		PurposeTypeIDs: []uint{1, 2, 3},
	})
	require.NoError(t, err)

	var before []models.MonitoringAreaPurposeModel
	require.NoError(t, gdb.Order("purpose_type_id asc").Find(&before).Error)
	require.Len(t, before, 3)
	surviving := map[uint]uint{}
	for _, p := range before {
		surviving[p.PurposeTypeID] = p.ID
	}

	updated, err := uc.Update(ctx, adminUser(), planID, pastureID, communityID, created.ID, MonitoringAreaCommand{
		Name:           "Transect A",
		PurposeTypeIDs: []uint{2, 3, 4},
	})
	require.NoError(t, err)
	require.Len(t, updated.Purposes, 3)

	var after []models.MonitoringAreaPurposeModel
	require.NoError(t, gdb.Order("purpose_type_id asc").Find(&after).Error)
	require.Len(t, after, 3)

	t.Run("dropped purpose is removed", func(t *testing.T) {
		for _, p := range after {
			assert.NotEqual(t, uint(1), p.PurposeTypeID)
		}
	})

	t.Run("surviving purposes keep their identity", func(t *testing.T) {
		assert.Equal(t, surviving[2], after[0].ID)
		assert.Equal(t, surviving[3], after[1].ID)
	})

	t.Run("new purpose is added", func(t *testing.T) {
		assert.Equal(t, uint(4), after[2].PurposeTypeID)
		assert.NotContains(t, []uint{surviving[2], surviving[3]}, after[2].ID)
	})
}

func TestMonitoringAreaUseCases_Destroy(t *testing.T) {
	gdb := setupTestDB(t)
	planID, pastureID, communityID := seedCommunityTree(t, gdb)
	uc := newMonitoringAreaUseCases(gdb)
	ctx := context.Background()

	created, err := uc.Create(ctx, adminUser(), planID, pastureID, communityID, MonitoringAreaCommand{
		Name:           "Transect A",
		PurposeTypeIDs: []uint{1},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Destroy(ctx, adminUser(), planID, pastureID, communityID, created.ID))

	t.Run("purpose links are removed with the area", func(t *testing.T) {
		var count int64
		require.NoError(t, gdb.Model(&models.MonitoringAreaPurposeModel{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("destroying again is a bad request", func(t *testing.T) {
		err := uc.Destroy(ctx, adminUser(), planID, pastureID, communityID, created.ID)
		assert.Error(t, err)
	})
}
