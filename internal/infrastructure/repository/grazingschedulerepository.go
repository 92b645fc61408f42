package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/db"
)

type GrazingScheduleRepository struct {
	db *gorm.DB
}

func NewGrazingScheduleRepository(gdb *gorm.DB) *GrazingScheduleRepository {
	return &GrazingScheduleRepository{db: gdb}
}

func (r *GrazingScheduleRepository) FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.GrazingScheduleModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var s models.GrazingScheduleModel
	err := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find grazing schedule: %w", err)
	}
	return &s, nil
}

func (r *GrazingScheduleRepository) Create(ctx context.Context, s *models.GrazingScheduleModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(s).Error; err != nil {
		return fmt.Errorf("failed to create grazing schedule: %w", err)
	}
	return backfillCanonicalID(tx, &models.GrazingScheduleModel{}, s.ID, &s.CanonicalID)
}

func (r *GrazingScheduleRepository) Update(ctx context.Context, s *models.GrazingScheduleModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.GrazingScheduleModel{}).Where("id = ?", s.ID).Updates(s).Error
	if err != nil {
		return fmt.Errorf("failed to update grazing schedule: %w", err)
	}
	return nil
}

// Remove deletes a schedule and its entries. Entries have no canonical
// identity of their own and never outlive their schedule.
func (r *GrazingScheduleRepository) Remove(ctx context.Context, planID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var s models.GrazingScheduleModel
	err := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find grazing schedule: %w", err)
	}

	err = tx.Where("grazing_schedule_id = ?", s.ID).
		Delete(&models.GrazingScheduleEntryModel{}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to delete grazing schedule entries: %w", err)
	}

	result := tx.Where("id = ?", s.ID).Delete(&models.GrazingScheduleModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete grazing schedule: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GrazingScheduleRepository) ListEntries(ctx context.Context, scheduleID uint) ([]models.GrazingScheduleEntryModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var entries []models.GrazingScheduleEntryModel
	err := tx.Where("grazing_schedule_id = ?", scheduleID).Order("id").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list grazing schedule entries: %w", err)
	}
	return entries, nil
}

func (r *GrazingScheduleRepository) CreateEntry(ctx context.Context, e *models.GrazingScheduleEntryModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(e).Error; err != nil {
		return fmt.Errorf("failed to create grazing schedule entry: %w", err)
	}
	return nil
}

func (r *GrazingScheduleRepository) DeleteEntries(ctx context.Context, scheduleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("grazing_schedule_id = ?", scheduleID).
		Delete(&models.GrazingScheduleEntryModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete grazing schedule entries: %w", err)
	}
	return nil
}
