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

// AdditionalRequirementRepository persists the per-plan additional
// requirement rows.
type AdditionalRequirementRepository struct {
	db *gorm.DB
}

func NewAdditionalRequirementRepository(gdb *gorm.DB) *AdditionalRequirementRepository {
	return &AdditionalRequirementRepository{db: gdb}
}

func (r *AdditionalRequirementRepository) FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.AdditionalRequirementModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var req models.AdditionalRequirementModel
	err := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find additional requirement: %w", err)
	}
	return &req, nil
}

func (r *AdditionalRequirementRepository) Create(ctx context.Context, req *models.AdditionalRequirementModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(req).Error; err != nil {
		return fmt.Errorf("failed to create additional requirement: %w", err)
	}
	return backfillCanonicalID(tx, &models.AdditionalRequirementModel{}, req.ID, &req.CanonicalID)
}

func (r *AdditionalRequirementRepository) Update(ctx context.Context, req *models.AdditionalRequirementModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.AdditionalRequirementModel{}).Where("id = ?", req.ID).Updates(req).Error
	if err != nil {
		return fmt.Errorf("failed to update additional requirement: %w", err)
	}
	return nil
}

func (r *AdditionalRequirementRepository) Remove(ctx context.Context, planID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).
		Delete(&models.AdditionalRequirementModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete additional requirement: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ManagementConsiderationRepository persists management considerations.
type ManagementConsiderationRepository struct {
	db *gorm.DB
}

func NewManagementConsiderationRepository(gdb *gorm.DB) *ManagementConsiderationRepository {
	return &ManagementConsiderationRepository{db: gdb}
}

func (r *ManagementConsiderationRepository) FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.ManagementConsiderationModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var m models.ManagementConsiderationModel
	err := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find management consideration: %w", err)
	}
	return &m, nil
}

func (r *ManagementConsiderationRepository) Create(ctx context.Context, m *models.ManagementConsiderationModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(m).Error; err != nil {
		return fmt.Errorf("failed to create management consideration: %w", err)
	}
	return backfillCanonicalID(tx, &models.ManagementConsiderationModel{}, m.ID, &m.CanonicalID)
}

func (r *ManagementConsiderationRepository) Update(ctx context.Context, m *models.ManagementConsiderationModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ManagementConsiderationModel{}).Where("id = ?", m.ID).Updates(m).Error
	if err != nil {
		return fmt.Errorf("failed to update management consideration: %w", err)
	}
	return nil
}

func (r *ManagementConsiderationRepository) Remove(ctx context.Context, planID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).
		Delete(&models.ManagementConsiderationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete management consideration: %w", result.Error)
	}
	return result.RowsAffected, nil
}
