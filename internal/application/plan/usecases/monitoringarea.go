package usecases

import (
	"context"
	"errors"
	"fmt"

	"myra/internal/domain/agreement"
	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/db"
	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/logger"
)

// MonitoringAreaUseCases maintains monitoring areas and their purpose sets
// under a plant community.
type MonitoringAreaUseCases struct {
	treeGuard
	areas     plan.MonitoringAreaRepository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewMonitoringAreaUseCases(plans plan.Repository, access *agreement.AccessChecker, pastures plan.PastureRepository, communities plan.PlantCommunityRepository, areas plan.MonitoringAreaRepository, txManager *db.TransactionManager, log logger.Interface) *MonitoringAreaUseCases {
	return &MonitoringAreaUseCases{
		treeGuard: treeGuard{
			guard:       guard{plans: plans, access: access},
			pastures:    pastures,
			communities: communities,
		},
		areas:     areas,
		txManager: txManager,
		logger:    log,
	}
}

type MonitoringAreaCommand struct {
	Name              string
	Latitude          *float64
	Longitude         *float64
	RangelandHealthID *uint
	TransectAzimuth   *int
	Location          string
	OtherPurpose      string
	// PurposeTypeIDs is the desired purpose set. On update the stored set
	// is reconciled to match it exactly.
	PurposeTypeIDs []uint
}

func (uc *MonitoringAreaUseCases) Create(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID uint, cmd MonitoringAreaCommand) (*MonitoringAreaView, error) {
	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return nil, err
	}

	var area models.MonitoringAreaModel
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		area = models.MonitoringAreaModel{
			PlantCommunityID:  community.ID,
			Name:              cmd.Name,
			Latitude:          cmd.Latitude,
			Longitude:         cmd.Longitude,
			RangelandHealthID: cmd.RangelandHealthID,
			TransectAzimuth:   cmd.TransectAzimuth,
			Location:          cmd.Location,
			OtherPurpose:      cmd.OtherPurpose,
		}
		if err := uc.areas.Create(txCtx, &area); err != nil {
			return fmt.Errorf("failed to create monitoring area: %w", err)
		}

		for _, typeID := range cmd.PurposeTypeIDs {
			purpose := models.MonitoringAreaPurposeModel{
				MonitoringAreaID: area.ID,
				PurposeTypeID:    typeID,
			}
			if err := uc.areas.CreatePurpose(txCtx, &purpose); err != nil {
				return fmt.Errorf("failed to create monitoring area purpose: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("monitoring area created",
		"plant_community_id", community.ID,
		"monitoring_area_id", area.ID)
	return uc.view(ctx, &area)
}

// Update rewrites the area's fields and reconciles its purpose set against
// the requested one: purposes missing from the request are removed, new
// ones are added, and purposes present in both keep their identity. The
// whole reconciliation commits or rolls back as a unit.
func (uc *MonitoringAreaUseCases) Update(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID, areaCanonicalID uint, cmd MonitoringAreaCommand) (*MonitoringAreaView, error) {
	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return nil, err
	}

	area, err := uc.findArea(ctx, community.ID, areaCanonicalID)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		area.Name = cmd.Name
		area.Latitude = cmd.Latitude
		area.Longitude = cmd.Longitude
		area.RangelandHealthID = cmd.RangelandHealthID
		area.TransectAzimuth = cmd.TransectAzimuth
		area.Location = cmd.Location
		area.OtherPurpose = cmd.OtherPurpose

		if err := uc.areas.Update(txCtx, area); err != nil {
			return fmt.Errorf("failed to update monitoring area %d: %w", area.ID, err)
		}
		return uc.reconcilePurposes(txCtx, area.ID, cmd.PurposeTypeIDs)
	})
	if err != nil {
		return nil, err
	}

	return uc.view(ctx, area)
}

func (uc *MonitoringAreaUseCases) Destroy(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID, areaCanonicalID uint) error {
	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return err
	}

	area, err := uc.findArea(ctx, community.ID, areaCanonicalID)
	if err != nil {
		return err
	}

	var affected int64
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		affected, err = uc.areas.Remove(txCtx, area.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete monitoring area %d: %w", areaCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("monitoring area %d does not exist", areaCanonicalID))
	}
	return nil
}

// reconcilePurposes brings the stored purpose set in line with the desired
// purpose type ids. Existing links whose type survives are kept untouched.
func (uc *MonitoringAreaUseCases) reconcilePurposes(ctx context.Context, areaID uint, desired []uint) error {
	existing, err := uc.areas.ListPurposes(ctx, areaID)
	if err != nil {
		return err
	}

	desiredSet := make(map[uint]bool, len(desired))
	for _, typeID := range desired {
		desiredSet[typeID] = true
	}
	existingSet := make(map[uint]bool, len(existing))
	for _, purpose := range existing {
		existingSet[purpose.PurposeTypeID] = true
	}

	for _, purpose := range existing {
		if !desiredSet[purpose.PurposeTypeID] {
			if err := uc.areas.RemovePurpose(ctx, areaID, purpose.ID); err != nil {
				return err
			}
		}
	}
	for _, typeID := range desired {
		if !existingSet[typeID] {
			newPurpose := models.MonitoringAreaPurposeModel{
				MonitoringAreaID: areaID,
				PurposeTypeID:    typeID,
			}
			if err := uc.areas.CreatePurpose(ctx, &newPurpose); err != nil {
				return err
			}
		}
	}
	return nil
}

func (uc *MonitoringAreaUseCases) findArea(ctx context.Context, communityID, canonicalID uint) (*models.MonitoringAreaModel, error) {
	area, err := uc.areas.FindByCanonical(ctx, communityID, canonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("monitoring area %d does not exist", canonicalID))
		}
		return nil, err
	}
	return area, nil
}

func (uc *MonitoringAreaUseCases) view(ctx context.Context, area *models.MonitoringAreaModel) (*MonitoringAreaView, error) {
	purposes, err := uc.areas.ListPurposes(ctx, area.ID)
	if err != nil {
		return nil, err
	}
	return newMonitoringAreaView(area, purposes), nil
}
