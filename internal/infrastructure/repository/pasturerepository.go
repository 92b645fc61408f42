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

type PastureRepository struct {
	db *gorm.DB
}

func NewPastureRepository(gdb *gorm.DB) *PastureRepository {
	return &PastureRepository{db: gdb}
}

func (r *PastureRepository) FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.PastureModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var p models.PastureModel
	err := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pasture: %w", err)
	}
	return &p, nil
}

func (r *PastureRepository) ListByPlan(ctx context.Context, planID uint) ([]models.PastureModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var pastures []models.PastureModel
	if err := tx.Where("plan_id = ?", planID).Order("id").Find(&pastures).Error; err != nil {
		return nil, fmt.Errorf("failed to list pastures: %w", err)
	}
	return pastures, nil
}

func (r *PastureRepository) Create(ctx context.Context, p *models.PastureModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create pasture: %w", err)
	}
	return backfillCanonicalID(tx, &models.PastureModel{}, p.ID, &p.CanonicalID)
}

func (r *PastureRepository) Update(ctx context.Context, p *models.PastureModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.PastureModel{}).Where("id = ?", p.ID).Updates(p).Error; err != nil {
		return fmt.Errorf("failed to update pasture: %w", err)
	}
	return nil
}

func (r *PastureRepository) Remove(ctx context.Context, planID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).
		Delete(&models.PastureModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete pasture: %w", result.Error)
	}
	return result.RowsAffected, nil
}
