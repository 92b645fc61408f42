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

// PlantCommunityUseCases maintains plant communities under a pasture.
type PlantCommunityUseCases struct {
	guard
	pastures    plan.PastureRepository
	communities plan.PlantCommunityRepository
	logger      logger.Interface
}

func NewPlantCommunityUseCases(plans plan.Repository, access *agreement.AccessChecker, pastures plan.PastureRepository, communities plan.PlantCommunityRepository, log logger.Interface) *PlantCommunityUseCases {
	return &PlantCommunityUseCases{
		guard:       guard{plans: plans, access: access},
		pastures:    pastures,
		communities: communities,
		logger:      log,
	}
}

type PlantCommunityCommand struct {
	CommunityTypeID uint
	ElevationID     *uint
	PurposeOfAction string
	Name            string
	Aspect          string
	URL             string
	Notes           string
	Approved        bool
}

func (cmd PlantCommunityCommand) validate() error {
	if !constants.Contains(constants.PurposeOfAction, cmd.PurposeOfAction) {
		return apperrors.NewValidationError(
			fmt.Sprintf("purposeOfAction must be one of %v", constants.PurposeOfAction))
	}
	return nil
}

func (uc *PlantCommunityUseCases) Create(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID uint, cmd PlantCommunityCommand) (*PlantCommunityView, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	p, pasture, err := uc.resolvePasture(ctx, user, planCanonicalID, pastureCanonicalID)
	if err != nil {
		return nil, err
	}

	community := models.PlantCommunityModel{
		PastureID:       pasture.ID,
		CommunityTypeID: cmd.CommunityTypeID,
		ElevationID:     cmd.ElevationID,
		PurposeOfAction: cmd.PurposeOfAction,
		Name:            cmd.Name,
		Aspect:          cmd.Aspect,
		URL:             cmd.URL,
		Notes:           cmd.Notes,
		Approved:        cmd.Approved,
	}
	if err := uc.communities.Create(ctx, &community); err != nil {
		return nil, fmt.Errorf("failed to create plant community: %w", err)
	}

	uc.logger.Infow("plant community created",
		"plan_id", p.ID,
		"pasture_id", pasture.ID,
		"plant_community_id", community.ID)
	return newPlantCommunityView(&community, pasture.CanonicalID), nil
}

func (uc *PlantCommunityUseCases) Update(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID uint, cmd PlantCommunityCommand) (*PlantCommunityView, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	_, pasture, err := uc.resolvePasture(ctx, user, planCanonicalID, pastureCanonicalID)
	if err != nil {
		return nil, err
	}

	community, err := uc.findCommunity(ctx, pasture.ID, communityCanonicalID)
	if err != nil {
		return nil, err
	}

	community.CommunityTypeID = cmd.CommunityTypeID
	community.ElevationID = cmd.ElevationID
	community.PurposeOfAction = cmd.PurposeOfAction
	community.Name = cmd.Name
	community.Aspect = cmd.Aspect
	community.URL = cmd.URL
	community.Notes = cmd.Notes
	community.Approved = cmd.Approved

	if err := uc.communities.Update(ctx, community); err != nil {
		return nil, fmt.Errorf("failed to update plant community %d: %w", community.ID, err)
	}
	return newPlantCommunityView(community, pasture.CanonicalID), nil
}

func (uc *PlantCommunityUseCases) Destroy(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID uint) error {
	_, pasture, err := uc.resolvePasture(ctx, user, planCanonicalID, pastureCanonicalID)
	if err != nil {
		return err
	}

	affected, err := uc.communities.Remove(ctx, pasture.ID, communityCanonicalID)
	if err != nil {
		return fmt.Errorf("failed to delete plant community %d: %w", communityCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("plant community %d does not exist", communityCanonicalID))
	}
	return nil
}

// resolvePasture resolves the plan and the pasture named in the URL.
func (uc *PlantCommunityUseCases) resolvePasture(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID uint) (*models.PlanModel, *models.PastureModel, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, nil, err
	}

	pasture, err := uc.pastures.FindByCanonical(ctx, p.ID, pastureCanonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError(
				fmt.Sprintf("pasture %d does not exist", pastureCanonicalID))
		}
		return nil, nil, err
	}
	return p, pasture, nil
}

func (uc *PlantCommunityUseCases) findCommunity(ctx context.Context, pastureID, canonicalID uint) (*models.PlantCommunityModel, error) {
	community, err := uc.communities.FindByCanonical(ctx, pastureID, canonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("plant community %d does not exist", canonicalID))
		}
		return nil, err
	}
	return community, nil
}
