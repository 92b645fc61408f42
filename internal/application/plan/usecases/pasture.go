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

// PastureUseCases maintains the pastures of a plan's current version.
type PastureUseCases struct {
	guard
	pastures plan.PastureRepository
	logger   logger.Interface
}

func NewPastureUseCases(plans plan.Repository, access *agreement.AccessChecker, pastures plan.PastureRepository, log logger.Interface) *PastureUseCases {
	return &PastureUseCases{
		guard:    guard{plans: plans, access: access},
		pastures: pastures,
		logger:   log,
	}
}

type PastureCommand struct {
	Name         string
	AllowableAUM *int
	GraceDays    *int
	PldPercent   *float64
	Notes        string
}

func (uc *PastureUseCases) Create(ctx context.Context, user agreement.User, planCanonicalID uint, cmd PastureCommand) (*PastureView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	pasture := models.PastureModel{
		PlanID:       p.ID,
		Name:         cmd.Name,
		AllowableAUM: cmd.AllowableAUM,
		GraceDays:    cmd.GraceDays,
		PldPercent:   cmd.PldPercent,
		Notes:        cmd.Notes,
	}
	if err := uc.pastures.Create(ctx, &pasture); err != nil {
		return nil, fmt.Errorf("failed to create pasture: %w", err)
	}

	uc.logger.Infow("pasture created", "plan_id", p.ID, "pasture_id", pasture.ID)
	return newPastureView(&pasture, p.CanonicalID), nil
}

func (uc *PastureUseCases) Update(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID uint, cmd PastureCommand) (*PastureView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	pasture, err := uc.findPasture(ctx, p.ID, pastureCanonicalID)
	if err != nil {
		return nil, err
	}

	pasture.Name = cmd.Name
	pasture.AllowableAUM = cmd.AllowableAUM
	pasture.GraceDays = cmd.GraceDays
	pasture.PldPercent = cmd.PldPercent
	pasture.Notes = cmd.Notes

	if err := uc.pastures.Update(ctx, pasture); err != nil {
		return nil, fmt.Errorf("failed to update pasture %d: %w", pasture.ID, err)
	}
	return newPastureView(pasture, p.CanonicalID), nil
}

// Destroy removes a pasture. Deleting a pasture that does not exist is a
// bad request, not a silent no-op.
func (uc *PastureUseCases) Destroy(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID uint) error {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return err
	}

	affected, err := uc.pastures.Remove(ctx, p.ID, pastureCanonicalID)
	if err != nil {
		return fmt.Errorf("failed to delete pasture %d: %w", pastureCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(fmt.Sprintf("pasture %d does not exist", pastureCanonicalID))
	}

	uc.logger.Infow("pasture deleted", "plan_id", p.ID, "pasture_canonical_id", pastureCanonicalID)
	return nil
}

// findPasture resolves a pasture by canonical id within a plan.
func (uc *PastureUseCases) findPasture(ctx context.Context, planID, canonicalID uint) (*models.PastureModel, error) {
	pasture, err := uc.pastures.FindByCanonical(ctx, planID, canonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("pasture %d does not exist", canonicalID))
		}
		return nil, err
	}
	return pasture, nil
}
