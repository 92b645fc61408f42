package usecases

import (
	"context"
	"errors"
	"fmt"

	"myra/internal/domain/agreement"
	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/logger"
)

// PlantCommunityActionUseCases maintains actions under a plant community.
type PlantCommunityActionUseCases struct {
	treeGuard
	actions plan.PlantCommunityActionRepository
	logger  logger.Interface
}

func NewPlantCommunityActionUseCases(plans plan.Repository, access *agreement.AccessChecker, pastures plan.PastureRepository, communities plan.PlantCommunityRepository, actions plan.PlantCommunityActionRepository, log logger.Interface) *PlantCommunityActionUseCases {
	return &PlantCommunityActionUseCases{
		treeGuard: treeGuard{
			guard:       guard{plans: plans, access: access},
			pastures:    pastures,
			communities: communities,
		},
		actions: actions,
		logger:  log,
	}
}

type PlantCommunityActionCommand struct {
	ActionTypeID      uint
	Name              string
	Details           string
	NoGrazeStartDay   *int
	NoGrazeStartMonth *int
	NoGrazeEndDay     *int
	NoGrazeEndMonth   *int
}

func (uc *PlantCommunityActionUseCases) Create(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID uint, cmd PlantCommunityActionCommand) (*PlantCommunityActionView, error) {
	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return nil, err
	}

	action := models.PlantCommunityActionModel{
		PlantCommunityID:  community.ID,
		ActionTypeID:      cmd.ActionTypeID,
		Name:              cmd.Name,
		Details:           cmd.Details,
		NoGrazeStartDay:   cmd.NoGrazeStartDay,
		NoGrazeStartMonth: cmd.NoGrazeStartMonth,
		NoGrazeEndDay:     cmd.NoGrazeEndDay,
		NoGrazeEndMonth:   cmd.NoGrazeEndMonth,
	}
	if err := uc.actions.Create(ctx, &action); err != nil {
		return nil, fmt.Errorf("failed to create plant community action: %w", err)
	}

	uc.logger.Infow("plant community action created",
		"plant_community_id", community.ID,
		"action_id", action.ID)
	return newPlantCommunityActionView(&action), nil
}

func (uc *PlantCommunityActionUseCases) Update(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID, actionCanonicalID uint, cmd PlantCommunityActionCommand) (*PlantCommunityActionView, error) {
	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return nil, err
	}

	action, err := uc.actions.FindByCanonical(ctx, community.ID, actionCanonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("plant community action %d does not exist", actionCanonicalID))
		}
		return nil, err
	}

	action.ActionTypeID = cmd.ActionTypeID
	action.Name = cmd.Name
	action.Details = cmd.Details
	action.NoGrazeStartDay = cmd.NoGrazeStartDay
	action.NoGrazeStartMonth = cmd.NoGrazeStartMonth
	action.NoGrazeEndDay = cmd.NoGrazeEndDay
	action.NoGrazeEndMonth = cmd.NoGrazeEndMonth

	if err := uc.actions.Update(ctx, action); err != nil {
		return nil, fmt.Errorf("failed to update plant community action %d: %w", action.ID, err)
	}
	return newPlantCommunityActionView(action), nil
}

func (uc *PlantCommunityActionUseCases) Destroy(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID, actionCanonicalID uint) error {
	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return err
	}

	affected, err := uc.actions.Remove(ctx, community.ID, actionCanonicalID)
	if err != nil {
		return fmt.Errorf("failed to delete plant community action %d: %w", actionCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("plant community action %d does not exist", actionCanonicalID))
	}
	return nil
}
