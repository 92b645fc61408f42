package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/db"
)

type AgreementRepository struct {
	db *gorm.DB
}

func NewAgreementRepository(gdb *gorm.DB) *AgreementRepository {
	return &AgreementRepository{db: gdb}
}

func (r *AgreementRepository) Exists(ctx context.Context, agreementID string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.AgreementModel{}).Where("id = ?", agreementID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check agreement: %w", err)
	}
	return count > 0, nil
}

func (r *AgreementRepository) ZoneUserID(ctx context.Context, agreementID string) (*uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var zone models.ZoneModel
	err := tx.
		Joins("JOIN agreement ON agreement.zone_id = ref_zone.id").
		Where("agreement.id = ?", agreementID).
		First(&zone).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve agreement zone: %w", err)
	}
	return zone.UserID, nil
}

func (r *AgreementRepository) IsHolder(ctx context.Context, userID uint, agreementID string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.UserClientLinkModel{}).
		Joins("JOIN client_agreement ON client_agreement.client_id = user_client_link.client_id").
		Where("user_client_link.user_id = ? AND client_agreement.agreement_id = ?", userID, agreementID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to resolve agreement holders: %w", err)
	}
	return count > 0, nil
}
