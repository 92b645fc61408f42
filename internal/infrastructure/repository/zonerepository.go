package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"myra/internal/domain/zone"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/db"
)

type ZoneRepository struct {
	db *gorm.DB
}

func NewZoneRepository(gdb *gorm.DB) *ZoneRepository {
	return &ZoneRepository{db: gdb}
}

// List returns zones with their district and assigned user resolved. The
// joins are done in application code since the models carry no gorm
// associations.
func (r *ZoneRepository) List(ctx context.Context, districtID *uint) ([]zone.ZoneWithRelations, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ZoneModel{}).Order("id")
	if districtID != nil {
		query = query.Where("district_id = ?", *districtID)
	}

	var zones []models.ZoneModel
	if err := query.Find(&zones).Error; err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	districts := map[uint]models.DistrictModel{}
	users := map[uint]models.UserAccountModel{}

	result := make([]zone.ZoneWithRelations, 0, len(zones))
	for _, z := range zones {
		entry := zone.ZoneWithRelations{Zone: z}

		district, ok := districts[z.DistrictID]
		if !ok {
			if err := tx.First(&district, z.DistrictID).Error; err != nil {
				return nil, fmt.Errorf("failed to load district for zone %d: %w", z.ID, err)
			}
			districts[z.DistrictID] = district
		}
		entry.District = district

		if z.UserID != nil {
			user, ok := users[*z.UserID]
			if !ok {
				if err := tx.First(&user, *z.UserID).Error; err != nil {
					return nil, fmt.Errorf("failed to load user for zone %d: %w", z.ID, err)
				}
				users[*z.UserID] = user
			}
			entry.User = &user
		}

		result = append(result, entry)
	}
	return result, nil
}

func (r *ZoneRepository) FindByID(ctx context.Context, id uint) (*models.ZoneModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var z models.ZoneModel
	if err := tx.First(&z, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, zone.ErrZoneNotFound
		}
		return nil, fmt.Errorf("failed to find zone: %w", err)
	}
	return &z, nil
}

func (r *ZoneRepository) AssignUser(ctx context.Context, zoneID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ZoneModel{}).
		Where("id = ?", zoneID).
		Update("user_id", userID).Error
	if err != nil {
		return fmt.Errorf("failed to assign zone user: %w", err)
	}
	return nil
}

// UserRepository resolves user accounts for zone assignment.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{db: gdb}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.UserAccountModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var u models.UserAccountModel
	if err := tx.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, zone.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}
