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

// MinisterIssueUseCases maintains minister issues, their actions, and their
// pasture links. Pasture links come in as canonical pasture ids and are
// translated within the plan.
type MinisterIssueUseCases struct {
	guard
	issues    plan.MinisterIssueRepository
	pastures  plan.PastureRepository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewMinisterIssueUseCases(plans plan.Repository, access *agreement.AccessChecker, issues plan.MinisterIssueRepository, pastures plan.PastureRepository, txManager *db.TransactionManager, log logger.Interface) *MinisterIssueUseCases {
	return &MinisterIssueUseCases{
		guard:     guard{plans: plans, access: access},
		issues:    issues,
		pastures:  pastures,
		txManager: txManager,
		logger:    log,
	}
}

type MinisterIssueCommand struct {
	IssueTypeID uint
	Detail      string
	Objective   string
	Identified  bool
	// PastureIDs is the desired set of affected pastures, by canonical id.
	PastureIDs []uint
}

func (uc *MinisterIssueUseCases) Create(ctx context.Context, user agreement.User, planCanonicalID uint, cmd MinisterIssueCommand) (*MinisterIssueView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	pastureIDs, err := uc.translatePastures(ctx, p.ID, cmd.PastureIDs)
	if err != nil {
		return nil, err
	}

	var issue models.MinisterIssueModel
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		issue = models.MinisterIssueModel{
			PlanID:      p.ID,
			IssueTypeID: cmd.IssueTypeID,
			Detail:      cmd.Detail,
			Objective:   cmd.Objective,
			Identified:  cmd.Identified,
		}
		if err := uc.issues.Create(txCtx, &issue); err != nil {
			return fmt.Errorf("failed to create minister issue: %w", err)
		}
		for _, pastureID := range pastureIDs {
			if err := uc.issues.LinkPasture(txCtx, issue.ID, pastureID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("minister issue created",
		"plan_id", p.ID,
		"minister_issue_id", issue.ID)
	return uc.view(ctx, p, &issue, pastureIDs)
}

// Update rewrites the issue and swaps its pasture link set for the
// requested one.
func (uc *MinisterIssueUseCases) Update(ctx context.Context, user agreement.User, planCanonicalID, issueCanonicalID uint, cmd MinisterIssueCommand) (*MinisterIssueView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	issue, err := uc.findIssue(ctx, p.ID, issueCanonicalID)
	if err != nil {
		return nil, err
	}

	pastureIDs, err := uc.translatePastures(ctx, p.ID, cmd.PastureIDs)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		issue.IssueTypeID = cmd.IssueTypeID
		issue.Detail = cmd.Detail
		issue.Objective = cmd.Objective
		issue.Identified = cmd.Identified
		if err := uc.issues.Update(txCtx, issue); err != nil {
			return fmt.Errorf("failed to update minister issue %d: %w", issue.ID, err)
		}
		return uc.issues.ReplacePastureLinks(txCtx, issue.ID, pastureIDs)
	})
	if err != nil {
		return nil, err
	}

	return uc.view(ctx, p, issue, pastureIDs)
}

func (uc *MinisterIssueUseCases) Destroy(ctx context.Context, user agreement.User, planCanonicalID, issueCanonicalID uint) error {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return err
	}

	var affected int64
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		affected, err = uc.issues.Remove(txCtx, p.ID, issueCanonicalID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete minister issue %d: %w", issueCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("minister issue %d does not exist", issueCanonicalID))
	}
	return nil
}

type MinisterIssueActionCommand struct {
	ActionTypeID      uint
	Detail            string
	Other             string
	NoGrazeStartDay   *int
	NoGrazeStartMonth *int
	NoGrazeEndDay     *int
	NoGrazeEndMonth   *int
}

func (uc *MinisterIssueUseCases) CreateAction(ctx context.Context, user agreement.User, planCanonicalID, issueCanonicalID uint, cmd MinisterIssueActionCommand) (*MinisterIssueActionView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	issue, err := uc.findIssue(ctx, p.ID, issueCanonicalID)
	if err != nil {
		return nil, err
	}

	action := models.MinisterIssueActionModel{
		MinisterIssueID:   issue.ID,
		ActionTypeID:      cmd.ActionTypeID,
		Detail:            cmd.Detail,
		Other:             cmd.Other,
		NoGrazeStartDay:   cmd.NoGrazeStartDay,
		NoGrazeStartMonth: cmd.NoGrazeStartMonth,
		NoGrazeEndDay:     cmd.NoGrazeEndDay,
		NoGrazeEndMonth:   cmd.NoGrazeEndMonth,
	}
	if err := uc.issues.CreateAction(ctx, &action); err != nil {
		return nil, fmt.Errorf("failed to create minister issue action: %w", err)
	}

	view := newMinisterIssueActionView(&action)
	return &view, nil
}

func (uc *MinisterIssueUseCases) UpdateAction(ctx context.Context, user agreement.User, planCanonicalID, issueCanonicalID, actionCanonicalID uint, cmd MinisterIssueActionCommand) (*MinisterIssueActionView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	issue, err := uc.findIssue(ctx, p.ID, issueCanonicalID)
	if err != nil {
		return nil, err
	}

	action, err := uc.issues.FindActionByCanonical(ctx, issue.ID, actionCanonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("minister issue action %d does not exist", actionCanonicalID))
		}
		return nil, err
	}

	action.ActionTypeID = cmd.ActionTypeID
	action.Detail = cmd.Detail
	action.Other = cmd.Other
	action.NoGrazeStartDay = cmd.NoGrazeStartDay
	action.NoGrazeStartMonth = cmd.NoGrazeStartMonth
	action.NoGrazeEndDay = cmd.NoGrazeEndDay
	action.NoGrazeEndMonth = cmd.NoGrazeEndMonth

	if err := uc.issues.UpdateAction(ctx, action); err != nil {
		return nil, fmt.Errorf("failed to update minister issue action %d: %w", action.ID, err)
	}

	view := newMinisterIssueActionView(action)
	return &view, nil
}

func (uc *MinisterIssueUseCases) DestroyAction(ctx context.Context, user agreement.User, planCanonicalID, issueCanonicalID, actionCanonicalID uint) error {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return err
	}

	issue, err := uc.findIssue(ctx, p.ID, issueCanonicalID)
	if err != nil {
		return err
	}

	affected, err := uc.issues.RemoveAction(ctx, issue.ID, actionCanonicalID)
	if err != nil {
		return fmt.Errorf("failed to delete minister issue action %d: %w", actionCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("minister issue action %d does not exist", actionCanonicalID))
	}
	return nil
}

// translatePastures maps canonical pasture ids to storage keys within the
// plan. Any pasture outside the plan is a validation error.
func (uc *MinisterIssueUseCases) translatePastures(ctx context.Context, planID uint, canonicalIDs []uint) ([]uint, error) {
	ids := make([]uint, 0, len(canonicalIDs))
	for _, canonicalID := range canonicalIDs {
		pasture, err := uc.pastures.FindByCanonical(ctx, planID, canonicalID)
		if err != nil {
			if errors.Is(err, plan.ErrNotFound) {
				return nil, apperrors.NewValidationError(
					fmt.Sprintf("pasture %d does not belong to this plan", canonicalID))
			}
			return nil, err
		}
		ids = append(ids, pasture.ID)
	}
	return ids, nil
}

func (uc *MinisterIssueUseCases) findIssue(ctx context.Context, planID, canonicalID uint) (*models.MinisterIssueModel, error) {
	issue, err := uc.issues.FindByCanonical(ctx, planID, canonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("minister issue %d does not exist", canonicalID))
		}
		return nil, err
	}
	return issue, nil
}

func (uc *MinisterIssueUseCases) view(ctx context.Context, p *models.PlanModel, issue *models.MinisterIssueModel, pastureIDs []uint) (*MinisterIssueView, error) {
	pastures, err := uc.pastures.ListByPlan(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	pastureCanonical := make(map[uint]uint, len(pastures))
	for _, pasture := range pastures {
		pastureCanonical[pasture.ID] = pasture.CanonicalID
	}
	return newMinisterIssueView(issue, nil, pastureIDs, p.CanonicalID, pastureCanonical), nil
}
