package usecases

import (
	"context"
	"fmt"
	"time"

	"myra/internal/domain/agreement"
	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/logger"
)

// PlanUseCases covers the plan surface itself: reading the full plan tree,
// creating and updating plans, moving them through statuses, and the two
// duplication flows (archive a version, copy to a new plan).
type PlanUseCases struct {
	guard
	duplicator *DuplicatePlanUseCase
	logger     logger.Interface
}

func NewPlanUseCases(plans plan.Repository, access *agreement.AccessChecker, duplicator *DuplicatePlanUseCase, log logger.Interface) *PlanUseCases {
	return &PlanUseCases{
		guard:      guard{plans: plans, access: access},
		duplicator: duplicator,
		logger:     log,
	}
}

// Get returns the full plan tree for a canonical plan id.
func (uc *PlanUseCases) Get(ctx context.Context, user agreement.User, canonicalID uint) (*PlanView, error) {
	p, err := uc.resolve(ctx, user, canonicalID)
	if err != nil {
		return nil, err
	}

	graph, err := uc.plans.LoadGraph(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", p.ID, err)
	}
	return newPlanView(graph), nil
}

type CreatePlanCommand struct {
	AgreementID     string
	RangeName       string
	AltBusinessName string
	PlanStartDate   *time.Time
	PlanEndDate     *time.Time
	Notes           string
	StatusID        uint
	ExtensionID     *uint
	AmendmentTypeID *uint
	Uploaded        bool
	StaffInitiated  bool
}

// Create inserts a new plan as the current version of a fresh canonical
// lineage. The caller must have access to the target agreement.
func (uc *PlanUseCases) Create(ctx context.Context, user agreement.User, cmd CreatePlanCommand) (*PlanView, error) {
	if err := uc.access.CanUserAccessAgreement(ctx, user, cmd.AgreementID); err != nil {
		return nil, err
	}
	if err := uc.checkStatus(ctx, cmd.StatusID); err != nil {
		return nil, err
	}

	p := models.PlanModel{
		AgreementID:     cmd.AgreementID,
		RangeName:       cmd.RangeName,
		AltBusinessName: cmd.AltBusinessName,
		PlanStartDate:   cmd.PlanStartDate,
		PlanEndDate:     cmd.PlanEndDate,
		Notes:           cmd.Notes,
		StatusID:        cmd.StatusID,
		ExtensionID:     cmd.ExtensionID,
		AmendmentTypeID: cmd.AmendmentTypeID,
		Uploaded:        cmd.Uploaded,
		StaffInitiated:  cmd.StaffInitiated,
		CreatorID:       user.ID,
	}
	if err := uc.plans.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created",
		"plan_id", p.ID,
		"agreement_id", p.AgreementID,
		"creator_id", user.ID)

	graph, err := uc.plans.LoadGraph(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", p.ID, err)
	}
	return newPlanView(graph), nil
}

type UpdatePlanCommand struct {
	RangeName       string
	AltBusinessName string
	PlanStartDate   *time.Time
	PlanEndDate     *time.Time
	Notes           string
	ExtensionID     *uint
	AmendmentTypeID *uint
	Uploaded        bool
}

// Update rewrites the editable fields of the current version of a plan.
func (uc *PlanUseCases) Update(ctx context.Context, user agreement.User, canonicalID uint, cmd UpdatePlanCommand) (*PlanView, error) {
	p, err := uc.resolve(ctx, user, canonicalID)
	if err != nil {
		return nil, err
	}

	p.RangeName = cmd.RangeName
	p.AltBusinessName = cmd.AltBusinessName
	p.PlanStartDate = cmd.PlanStartDate
	p.PlanEndDate = cmd.PlanEndDate
	p.Notes = cmd.Notes
	p.ExtensionID = cmd.ExtensionID
	p.AmendmentTypeID = cmd.AmendmentTypeID
	p.Uploaded = cmd.Uploaded

	if err := uc.plans.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update plan %d: %w", p.ID, err)
	}

	graph, err := uc.plans.LoadGraph(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", p.ID, err)
	}
	return newPlanView(graph), nil
}

// UpdateStatus moves the plan to a new status. The status must be a known,
// active reference row.
func (uc *PlanUseCases) UpdateStatus(ctx context.Context, user agreement.User, canonicalID, statusID uint) (*PlanView, error) {
	p, err := uc.resolve(ctx, user, canonicalID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkStatus(ctx, statusID); err != nil {
		return nil, err
	}

	if err := uc.plans.SetStatus(ctx, p.ID, statusID); err != nil {
		return nil, fmt.Errorf("failed to update status of plan %d: %w", p.ID, err)
	}

	uc.logger.Infow("plan status updated",
		"plan_id", p.ID,
		"status_id", statusID,
		"user_id", user.ID)

	graph, err := uc.plans.LoadGraph(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", p.ID, err)
	}
	return newPlanView(graph), nil
}

// CreateVersion archives the current version of the plan and installs a
// deep copy as the new current version. The canonical id is unchanged, so
// clients keep using the same plan id.
func (uc *PlanUseCases) CreateVersion(ctx context.Context, user agreement.User, canonicalID uint) (*PlanView, error) {
	p, err := uc.resolve(ctx, user, canonicalID)
	if err != nil {
		return nil, err
	}

	copied, err := uc.duplicator.Execute(ctx, p.ID, plan.AsNewVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to version plan %d: %w", p.ID, err)
	}

	graph, err := uc.plans.LoadGraph(ctx, copied.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", copied.ID, err)
	}
	return newPlanView(graph), nil
}

type CopyPlanCommand struct {
	// AgreementID optionally moves the copy to another agreement the
	// caller has access to. Empty keeps the source's agreement.
	AgreementID string
}

// Copy deep-copies the plan into a brand new plan with its own canonical
// id. The copy is credited to the caller.
func (uc *PlanUseCases) Copy(ctx context.Context, user agreement.User, canonicalID uint, cmd CopyPlanCommand) (*PlanView, error) {
	p, err := uc.resolve(ctx, user, canonicalID)
	if err != nil {
		return nil, err
	}

	if cmd.AgreementID != "" {
		if err := uc.access.CanUserAccessAgreement(ctx, user, cmd.AgreementID); err != nil {
			return nil, err
		}
	}

	copied, err := uc.duplicator.Execute(ctx, p.ID, plan.AsNewPlan, func(np *models.PlanModel) {
		np.CreatorID = user.ID
		if cmd.AgreementID != "" {
			np.AgreementID = cmd.AgreementID
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy plan %d: %w", p.ID, err)
	}

	graph, err := uc.plans.LoadGraph(ctx, copied.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", copied.ID, err)
	}
	return newPlanView(graph), nil
}

func (uc *PlanUseCases) checkStatus(ctx context.Context, statusID uint) error {
	ok, err := uc.plans.StatusExists(ctx, statusID)
	if err != nil {
		return fmt.Errorf("failed to check plan status %d: %w", statusID, err)
	}
	if !ok {
		return apperrors.NewValidationError(fmt.Sprintf("status %d does not exist", statusID))
	}
	return nil
}
