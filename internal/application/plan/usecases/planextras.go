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

// PlanExtrasUseCases maintains the flat plan attachments: additional
// requirements and management considerations.
type PlanExtrasUseCases struct {
	guard
	requirements   plan.AdditionalRequirementRepository
	considerations plan.ManagementConsiderationRepository
	logger         logger.Interface
}

func NewPlanExtrasUseCases(plans plan.Repository, access *agreement.AccessChecker, requirements plan.AdditionalRequirementRepository, considerations plan.ManagementConsiderationRepository, log logger.Interface) *PlanExtrasUseCases {
	return &PlanExtrasUseCases{
		guard:          guard{plans: plans, access: access},
		requirements:   requirements,
		considerations: considerations,
		logger:         log,
	}
}

type AdditionalRequirementCommand struct {
	CategoryID uint
	Detail     string
	URL        string
}

func (uc *PlanExtrasUseCases) CreateRequirement(ctx context.Context, user agreement.User, planCanonicalID uint, cmd AdditionalRequirementCommand) (*AdditionalRequirementView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	req := models.AdditionalRequirementModel{
		PlanID:     p.ID,
		CategoryID: cmd.CategoryID,
		Detail:     cmd.Detail,
		URL:        cmd.URL,
	}
	if err := uc.requirements.Create(ctx, &req); err != nil {
		return nil, fmt.Errorf("failed to create additional requirement: %w", err)
	}

	uc.logger.Infow("additional requirement created",
		"plan_id", p.ID,
		"additional_requirement_id", req.ID)
	return newAdditionalRequirementView(&req), nil
}

func (uc *PlanExtrasUseCases) UpdateRequirement(ctx context.Context, user agreement.User, planCanonicalID, requirementCanonicalID uint, cmd AdditionalRequirementCommand) (*AdditionalRequirementView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	req, err := uc.requirements.FindByCanonical(ctx, p.ID, requirementCanonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("additional requirement %d does not exist", requirementCanonicalID))
		}
		return nil, err
	}

	req.CategoryID = cmd.CategoryID
	req.Detail = cmd.Detail
	req.URL = cmd.URL

	if err := uc.requirements.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update additional requirement %d: %w", req.ID, err)
	}
	return newAdditionalRequirementView(req), nil
}

func (uc *PlanExtrasUseCases) DestroyRequirement(ctx context.Context, user agreement.User, planCanonicalID, requirementCanonicalID uint) error {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return err
	}

	affected, err := uc.requirements.Remove(ctx, p.ID, requirementCanonicalID)
	if err != nil {
		return fmt.Errorf("failed to delete additional requirement %d: %w", requirementCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("additional requirement %d does not exist", requirementCanonicalID))
	}
	return nil
}

type ManagementConsiderationCommand struct {
	ConsiderationTypeID *uint
	Detail              string
	URL                 string
}

func (uc *PlanExtrasUseCases) CreateConsideration(ctx context.Context, user agreement.User, planCanonicalID uint, cmd ManagementConsiderationCommand) (*ManagementConsiderationView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	mc := models.ManagementConsiderationModel{
		PlanID:              p.ID,
		ConsiderationTypeID: cmd.ConsiderationTypeID,
		Detail:              cmd.Detail,
		URL:                 cmd.URL,
	}
	if err := uc.considerations.Create(ctx, &mc); err != nil {
		return nil, fmt.Errorf("failed to create management consideration: %w", err)
	}
	return newManagementConsiderationView(&mc), nil
}

func (uc *PlanExtrasUseCases) UpdateConsideration(ctx context.Context, user agreement.User, planCanonicalID, considerationCanonicalID uint, cmd ManagementConsiderationCommand) (*ManagementConsiderationView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	mc, err := uc.considerations.FindByCanonical(ctx, p.ID, considerationCanonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("management consideration %d does not exist", considerationCanonicalID))
		}
		return nil, err
	}

	mc.ConsiderationTypeID = cmd.ConsiderationTypeID
	mc.Detail = cmd.Detail
	mc.URL = cmd.URL

	if err := uc.considerations.Update(ctx, mc); err != nil {
		return nil, fmt.Errorf("failed to update management consideration %d: %w", mc.ID, err)
	}
	return newManagementConsiderationView(mc), nil
}

func (uc *PlanExtrasUseCases) DestroyConsideration(ctx context.Context, user agreement.User, planCanonicalID, considerationCanonicalID uint) error {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return err
	}

	affected, err := uc.considerations.Remove(ctx, p.ID, considerationCanonicalID)
	if err != nil {
		return fmt.Errorf("failed to delete management consideration %d: %w", considerationCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("management consideration %d does not exist", considerationCanonicalID))
	}
	return nil
}
