package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"myra/internal/domain/agreement"
	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/db"
	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/logger"
)

// GrazingScheduleUseCases maintains a plan's grazing schedules. Schedule
// entries reference pastures by their canonical id on the wire; they are
// translated to storage keys within the plan before writing.
type GrazingScheduleUseCases struct {
	guard
	schedules plan.GrazingScheduleRepository
	pastures  plan.PastureRepository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewGrazingScheduleUseCases(plans plan.Repository, access *agreement.AccessChecker, schedules plan.GrazingScheduleRepository, pastures plan.PastureRepository, txManager *db.TransactionManager, log logger.Interface) *GrazingScheduleUseCases {
	return &GrazingScheduleUseCases{
		guard:     guard{plans: plans, access: access},
		schedules: schedules,
		pastures:  pastures,
		txManager: txManager,
		logger:    log,
	}
}

type GrazingScheduleEntryCommand struct {
	PastureID       uint
	LivestockTypeID *uint
	LivestockCount  int
	DateIn          *time.Time
	DateOut         *time.Time
	GraceDays       *int
}

type GrazingScheduleCommand struct {
	Year      int
	Narrative string
	Entries   []GrazingScheduleEntryCommand
}

func (uc *GrazingScheduleUseCases) Create(ctx context.Context, user agreement.User, planCanonicalID uint, cmd GrazingScheduleCommand) (*GrazingScheduleView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	var schedule models.GrazingScheduleModel
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		schedule = models.GrazingScheduleModel{
			PlanID:    p.ID,
			Year:      cmd.Year,
			Narrative: cmd.Narrative,
		}
		if err := uc.schedules.Create(txCtx, &schedule); err != nil {
			return fmt.Errorf("failed to create grazing schedule: %w", err)
		}
		return uc.writeEntries(txCtx, p.ID, schedule.ID, cmd.Entries)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("grazing schedule created",
		"plan_id", p.ID,
		"grazing_schedule_id", schedule.ID,
		"year", schedule.Year)
	return uc.view(ctx, p, &schedule)
}

// Update rewrites the schedule and replaces its entry set wholesale.
func (uc *GrazingScheduleUseCases) Update(ctx context.Context, user agreement.User, planCanonicalID, scheduleCanonicalID uint, cmd GrazingScheduleCommand) (*GrazingScheduleView, error) {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.findSchedule(ctx, p.ID, scheduleCanonicalID)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		schedule.Year = cmd.Year
		schedule.Narrative = cmd.Narrative
		if err := uc.schedules.Update(txCtx, schedule); err != nil {
			return fmt.Errorf("failed to update grazing schedule %d: %w", schedule.ID, err)
		}
		if err := uc.schedules.DeleteEntries(txCtx, schedule.ID); err != nil {
			return err
		}
		return uc.writeEntries(txCtx, p.ID, schedule.ID, cmd.Entries)
	})
	if err != nil {
		return nil, err
	}

	return uc.view(ctx, p, schedule)
}

func (uc *GrazingScheduleUseCases) Destroy(ctx context.Context, user agreement.User, planCanonicalID, scheduleCanonicalID uint) error {
	p, err := uc.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return err
	}

	var affected int64
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		affected, err = uc.schedules.Remove(txCtx, p.ID, scheduleCanonicalID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete grazing schedule %d: %w", scheduleCanonicalID, err)
	}
	if affected == 0 {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("grazing schedule %d does not exist", scheduleCanonicalID))
	}
	return nil
}

// writeEntries inserts the requested entries, translating each pasture
// canonical id to the plan's storage key. A pasture outside the plan is a
// validation error.
func (uc *GrazingScheduleUseCases) writeEntries(ctx context.Context, planID, scheduleID uint, entries []GrazingScheduleEntryCommand) error {
	for _, entry := range entries {
		pasture, err := uc.pastures.FindByCanonical(ctx, planID, entry.PastureID)
		if err != nil {
			if errors.Is(err, plan.ErrNotFound) {
				return apperrors.NewValidationError(
					fmt.Sprintf("pasture %d does not belong to this plan", entry.PastureID))
			}
			return err
		}

		e := models.GrazingScheduleEntryModel{
			GrazingScheduleID: scheduleID,
			PastureID:         pasture.ID,
			LivestockTypeID:   entry.LivestockTypeID,
			LivestockCount:    entry.LivestockCount,
			DateIn:            entry.DateIn,
			DateOut:           entry.DateOut,
			GraceDays:         entry.GraceDays,
		}
		if err := uc.schedules.CreateEntry(ctx, &e); err != nil {
			return fmt.Errorf("failed to create grazing schedule entry: %w", err)
		}
	}
	return nil
}

func (uc *GrazingScheduleUseCases) findSchedule(ctx context.Context, planID, canonicalID uint) (*models.GrazingScheduleModel, error) {
	schedule, err := uc.schedules.FindByCanonical(ctx, planID, canonicalID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("grazing schedule %d does not exist", canonicalID))
		}
		return nil, err
	}
	return schedule, nil
}

func (uc *GrazingScheduleUseCases) view(ctx context.Context, p *models.PlanModel, schedule *models.GrazingScheduleModel) (*GrazingScheduleView, error) {
	entries, err := uc.schedules.ListEntries(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}

	pastures, err := uc.pastures.ListByPlan(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	pastureCanonical := make(map[uint]uint, len(pastures))
	for _, pasture := range pastures {
		pastureCanonical[pasture.ID] = pasture.CanonicalID
	}

	return newGrazingScheduleView(schedule, entries, p.CanonicalID, pastureCanonical), nil
}
