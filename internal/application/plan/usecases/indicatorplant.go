package usecases

import (
	"context"
	"errors"
	"fmt"

	"myra/internal/domain/agreement"
	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/constants"
	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/logger"
)

// IndicatorPlantUseCases maintains indicator plants under a plant community.
type IndicatorPlantUseCases struct {
	treeGuard
	plants plan.IndicatorPlantRepository
	logger logger.Interface
}

func NewIndicatorPlantUseCases(plans plan.Repository, access *agreement.AccessChecker, pastures plan.PastureRepository, communities plan.PlantCommunityRepository, plants plan.IndicatorPlantRepository, log logger.Interface) *IndicatorPlantUseCases {
	return &IndicatorPlantUseCases{
		treeGuard: treeGuard{
			guard:       guard{plans: plans, access: access},
			pastures:    pastures,
			communities: communities,
		},
		plants: plants,
		logger: log,
	}
}

type IndicatorPlantCommand struct {
	PlantSpeciesID *uint
	Criteria       string
	Value          *float64
	Name           string
}

func (cmd IndicatorPlantCommand) validate() error {
	if !constants.Contains(constants.PlantCommunityCriteria, cmd.Criteria) {
		return apperrors.NewValidationError(
			fmt.Sprintf("criteria must be one of %v", constants.PlantCommunityCriteria))
	}
	return nil
}

func (uc *IndicatorPlantUseCases) Create(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID uint, cmd IndicatorPlantCommand) (*IndicatorPlantView, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return nil, err
	}

	ip := models.IndicatorPlantModel{
		PlantCommunityID: community.ID,
		PlantSpeciesID:   cmd.PlantSpeciesID,
		Criteria:         cmd.Criteria,
		Value:            cmd.Value,
		Name:             cmd.Name,
	}
	if err := uc.plants.Create(ctx, &ip); err != nil {
		return nil, fmt.Errorf("failed to create indicator plant: %w", err)
	}

	uc.logger.Infow("indicator plant created",
		"plant_community_id", community.ID,
		"indicator_plant_id", ip.ID)
	return newIndicatorPlantView(&ip), nil
}

func (uc *IndicatorPlantUseCases) Update(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID, plantCanonicalID uint, cmd IndicatorPlantCommand) (*IndicatorPlantView, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return nil, err
	}

	ip, err := uc.plants.FindByCanonical(ctx, community.ID, plantCanonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("indicator plant %d does not exist", plantCanonicalID))
		}
		return nil, err
	}

	ip.PlantSpeciesID = cmd.PlantSpeciesID
	ip.Criteria = cmd.Criteria
	ip.Value = cmd.Value
	ip.Name = cmd.Name

	if err := uc.plants.Update(ctx, ip); err != nil {
		return nil, fmt.Errorf("failed to update indicator plant %d: %w", ip.ID, err)
	}
	return newIndicatorPlantView(ip), nil
}

func (uc *IndicatorPlantUseCases) Destroy(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID, plantCanonicalID uint) error {
	community, err := uc.resolveCommunity(ctx, user, planCanonicalID, pastureCanonicalID, communityCanonicalID)
	if err != nil {
		return err
	}

	affected, err := uc.plants.Remove(ctx, community.ID, plantCanonicalID)
	if err != nil {
		return fmt.Errorf("failed to delete indicator plant %d: %w", plantCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("indicator plant %d does not exist", plantCanonicalID))
	}
	return nil
}
