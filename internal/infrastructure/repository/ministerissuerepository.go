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

type MinisterIssueRepository struct {
	db *gorm.DB
}

func NewMinisterIssueRepository(gdb *gorm.DB) *MinisterIssueRepository {
	return &MinisterIssueRepository{db: gdb}
}

func (r *MinisterIssueRepository) FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.MinisterIssueModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var i models.MinisterIssueModel
	err := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).First(&i).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find minister issue: %w", err)
	}
	return &i, nil
}

func (r *MinisterIssueRepository) Create(ctx context.Context, i *models.MinisterIssueModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(i).Error; err != nil {
		return fmt.Errorf("failed to create minister issue: %w", err)
	}
	return backfillCanonicalID(tx, &models.MinisterIssueModel{}, i.ID, &i.CanonicalID)
}

func (r *MinisterIssueRepository) Update(ctx context.Context, i *models.MinisterIssueModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.MinisterIssueModel{}).Where("id = ?", i.ID).Updates(i).Error
	if err != nil {
		return fmt.Errorf("failed to update minister issue: %w", err)
	}
	return nil
}

// Remove deletes an issue along with its actions and pasture links.
func (r *MinisterIssueRepository) Remove(ctx context.Context, planID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var i models.MinisterIssueModel
	err := tx.Where("plan_id = ? AND canonical_id = ?", planID, canonicalID).First(&i).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find minister issue: %w", err)
	}

	err = tx.Where("minister_issue_id = ?", i.ID).
		Delete(&models.MinisterIssueActionModel{}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to delete minister issue actions: %w", err)
	}
	err = tx.Where("minister_issue_id = ?", i.ID).
		Delete(&models.MinisterIssuePastureModel{}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to delete minister issue pastures: %w", err)
	}

	result := tx.Where("id = ?", i.ID).Delete(&models.MinisterIssueModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete minister issue: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MinisterIssueRepository) FindActionByCanonical(ctx context.Context, issueID, canonicalID uint) (*models.MinisterIssueActionModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var a models.MinisterIssueActionModel
	err := tx.Where("minister_issue_id = ? AND canonical_id = ?", issueID, canonicalID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find minister issue action: %w", err)
	}
	return &a, nil
}

func (r *MinisterIssueRepository) CreateAction(ctx context.Context, a *models.MinisterIssueActionModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(a).Error; err != nil {
		return fmt.Errorf("failed to create minister issue action: %w", err)
	}
	return backfillCanonicalID(tx, &models.MinisterIssueActionModel{}, a.ID, &a.CanonicalID)
}

func (r *MinisterIssueRepository) UpdateAction(ctx context.Context, a *models.MinisterIssueActionModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.MinisterIssueActionModel{}).Where("id = ?", a.ID).Updates(a).Error
	if err != nil {
		return fmt.Errorf("failed to update minister issue action: %w", err)
	}
	return nil
}

func (r *MinisterIssueRepository) RemoveAction(ctx context.Context, issueID, canonicalID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("minister_issue_id = ? AND canonical_id = ?", issueID, canonicalID).
		Delete(&models.MinisterIssueActionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete minister issue action: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MinisterIssueRepository) LinkPasture(ctx context.Context, issueID, pastureID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	link := models.MinisterIssuePastureModel{
		MinisterIssueID: issueID,
		PastureID:       pastureID,
	}
	if err := tx.Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link pasture to minister issue: %w", err)
	}
	return nil
}

// ReplacePastureLinks swaps the full pasture link set of an issue.
func (r *MinisterIssueRepository) ReplacePastureLinks(ctx context.Context, issueID uint, pastureIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("minister_issue_id = ?", issueID).
		Delete(&models.MinisterIssuePastureModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear minister issue pastures: %w", err)
	}
	for _, pastureID := range pastureIDs {
		if err := r.LinkPasture(ctx, issueID, pastureID); err != nil {
			return err
		}
	}
	return nil
}
