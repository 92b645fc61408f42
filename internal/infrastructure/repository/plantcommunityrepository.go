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

type PlantCommunityRepository struct {
	db *gorm.DB
}

func NewPlantCommunityRepository(gdb *gorm.DB) *PlantCommunityRepository {
	return &PlantCommunityRepository{db: gdb}
}

func (r *PlantCommunityRepository) FindByCanonical(ctx context.Context, pastureID, canonicalID uint) (*models.PlantCommunityModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var pc models.PlantCommunityModel
	err := tx.Where("pasture_id = ? AND canonical_id = ?", pastureID, canonicalID).First(&pc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plant community: %w", err)
	}
	return &pc, nil
}

func (r *PlantCommunityRepository) Create(ctx context.Context, pc *models.PlantCommunityModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(pc).Error; err != nil {
		return fmt.Errorf("failed to create plant community: %w", err)
	}
	return backfillCanonicalID(tx, &models.PlantCommunityModel{}, pc.ID, &pc.CanonicalID)
}

func (r *PlantCommunityRepository) Update(ctx context.Context, pc *models.PlantCommunityModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.PlantCommunityModel{}).Where("id = ?", pc.ID).Updates(pc).Error
	if err != nil {
		return fmt.Errorf("failed to update plant community: %w", err)
	}
	return nil
}

func (r *PlantCommunityRepository) Remove(ctx context.Context, pastureID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("pasture_id = ? AND canonical_id = ?", pastureID, canonicalID).
		Delete(&models.PlantCommunityModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete plant community: %w", result.Error)
	}
	return result.RowsAffected, nil
}
