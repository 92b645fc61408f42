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

type MonitoringAreaRepository struct {
	db *gorm.DB
}

func NewMonitoringAreaRepository(gdb *gorm.DB) *MonitoringAreaRepository {
	return &MonitoringAreaRepository{db: gdb}
}

func (r *MonitoringAreaRepository) FindByCanonical(ctx context.Context, communityID, canonicalID uint) (*models.MonitoringAreaModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var a models.MonitoringAreaModel
	err := tx.Where("plant_community_id = ? AND canonical_id = ?", communityID, canonicalID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find monitoring area: %w", err)
	}
	return &a, nil
}

func (r *MonitoringAreaRepository) Create(ctx context.Context, a *models.MonitoringAreaModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(a).Error; err != nil {
		return fmt.Errorf("failed to create monitoring area: %w", err)
	}
	return backfillCanonicalID(tx, &models.MonitoringAreaModel{}, a.ID, &a.CanonicalID)
}

func (r *MonitoringAreaRepository) Update(ctx context.Context, a *models.MonitoringAreaModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.MonitoringAreaModel{}).Where("id = ?", a.ID).Updates(a).Error
	if err != nil {
		return fmt.Errorf("failed to update monitoring area: %w", err)
	}
	return nil
}

// Remove deletes a monitoring area by internal id together with its purpose
// links. Purpose links carry no canonical identity, so the cascade is done
// here rather than by the caller.
func (r *MonitoringAreaRepository) Remove(ctx context.Context, areaID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("monitoring_area_id = ?", areaID).
		Delete(&models.MonitoringAreaPurposeModel{}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to delete monitoring area purposes: %w", err)
	}

	result := tx.Where("id = ?", areaID).Delete(&models.MonitoringAreaModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete monitoring area: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MonitoringAreaRepository) ListPurposes(ctx context.Context, areaID uint) ([]models.MonitoringAreaPurposeModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var purposes []models.MonitoringAreaPurposeModel
	err := tx.Where("monitoring_area_id = ?", areaID).Order("id").Find(&purposes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list monitoring area purposes: %w", err)
	}
	return purposes, nil
}

func (r *MonitoringAreaRepository) CreatePurpose(ctx context.Context, p *models.MonitoringAreaPurposeModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create monitoring area purpose: %w", err)
	}
	return nil
}

func (r *MonitoringAreaRepository) RemovePurpose(ctx context.Context, areaID, purposeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("monitoring_area_id = ? AND id = ?", areaID, purposeID).
		Delete(&models.MonitoringAreaPurposeModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete monitoring area purpose: %w", err)
	}
	return nil
}
