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

type PlantCommunityActionRepository struct {
	db *gorm.DB
}

func NewPlantCommunityActionRepository(gdb *gorm.DB) *PlantCommunityActionRepository {
	return &PlantCommunityActionRepository{db: gdb}
}

func (r *PlantCommunityActionRepository) FindByCanonical(ctx context.Context, communityID, canonicalID uint) (*models.PlantCommunityActionModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var a models.PlantCommunityActionModel
	err := tx.Where("plant_community_id = ? AND canonical_id = ?", communityID, canonicalID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plant community action: %w", err)
	}
	return &a, nil
}

func (r *PlantCommunityActionRepository) Create(ctx context.Context, a *models.PlantCommunityActionModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(a).Error; err != nil {
		return fmt.Errorf("failed to create plant community action: %w", err)
	}
	return backfillCanonicalID(tx, &models.PlantCommunityActionModel{}, a.ID, &a.CanonicalID)
}

func (r *PlantCommunityActionRepository) Update(ctx context.Context, a *models.PlantCommunityActionModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.PlantCommunityActionModel{}).Where("id = ?", a.ID).Updates(a).Error
	if err != nil {
		return fmt.Errorf("failed to update plant community action: %w", err)
	}
	return nil
}

func (r *PlantCommunityActionRepository) Remove(ctx context.Context, communityID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("plant_community_id = ? AND canonical_id = ?", communityID, canonicalID).
		Delete(&models.PlantCommunityActionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete plant community action: %w", result.Error)
	}
	return result.RowsAffected, nil
}
