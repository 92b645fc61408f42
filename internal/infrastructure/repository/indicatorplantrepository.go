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

type IndicatorPlantRepository struct {
	db *gorm.DB
}

func NewIndicatorPlantRepository(gdb *gorm.DB) *IndicatorPlantRepository {
	return &IndicatorPlantRepository{db: gdb}
}

func (r *IndicatorPlantRepository) FindByCanonical(ctx context.Context, communityID, canonicalID uint) (*models.IndicatorPlantModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ip models.IndicatorPlantModel
	err := tx.Where("plant_community_id = ? AND canonical_id = ?", communityID, canonicalID).
		First(&ip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find indicator plant: %w", err)
	}
	return &ip, nil
}

func (r *IndicatorPlantRepository) Create(ctx context.Context, ip *models.IndicatorPlantModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(ip).Error; err != nil {
		return fmt.Errorf("failed to create indicator plant: %w", err)
	}
	return backfillCanonicalID(tx, &models.IndicatorPlantModel{}, ip.ID, &ip.CanonicalID)
}

func (r *IndicatorPlantRepository) Update(ctx context.Context, ip *models.IndicatorPlantModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.IndicatorPlantModel{}).Where("id = ?", ip.ID).Updates(ip).Error
	if err != nil {
		return fmt.Errorf("failed to update indicator plant: %w", err)
	}
	return nil
}

func (r *IndicatorPlantRepository) Remove(ctx context.Context, communityID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("plant_community_id = ? AND canonical_id = ?", communityID, canonicalID).
		Delete(&models.IndicatorPlantModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete indicator plant: %w", result.Error)
	}
	return result.RowsAffected, nil
}
