// Package usecases implements the zone administration workflows: listing
// zones with their district and staff assignment, and reassigning the range
// officer responsible for a zone.
package usecases

import (
	"context"
	"errors"
	"fmt"

	"myra/internal/domain/zone"
	"myra/internal/infrastructure/persistence/models"
	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/logger"
)

type ZoneUseCases struct {
	zones  zone.Repository
	users  zone.UserRepository
	logger logger.Interface
}

func NewZoneUseCases(zones zone.Repository, users zone.UserRepository, log logger.Interface) *ZoneUseCases {
	return &ZoneUseCases{zones: zones, users: users, logger: log}
}

type DistrictView struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type ZoneUserView struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
}

type ZoneView struct {
	ID          uint          `json:"id"`
	Code        string        `json:"code"`
	Description string        `json:"description"`
	DistrictID  uint          `json:"districtId"`
	District    DistrictView  `json:"district"`
	User        *ZoneUserView `json:"user"`
}

// List returns zones with district and assigned user, optionally filtered
// by district.
func (uc *ZoneUseCases) List(ctx context.Context, districtID *uint) ([]ZoneView, error) {
	zones, err := uc.zones.List(ctx, districtID)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	views := make([]ZoneView, 0, len(zones))
	for _, z := range zones {
		views = append(views, newZoneView(z))
	}
	return views, nil
}

// AssignUser sets the range officer for a zone and returns the assigned
// user. Unknown zones and unknown users are both not-found errors.
func (uc *ZoneUseCases) AssignUser(ctx context.Context, zoneID, userID uint) (*ZoneUserView, error) {
	z, err := uc.zones.FindByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, zone.ErrZoneNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("zone %d does not exist", zoneID))
		}
		return nil, err
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, zone.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d does not exist", userID))
		}
		return nil, err
	}

	if err := uc.zones.AssignUser(ctx, z.ID, user.ID); err != nil {
		return nil, fmt.Errorf("failed to assign user %d to zone %d: %w", userID, zoneID, err)
	}

	uc.logger.Infow("zone user assigned", "zone_id", zoneID, "user_id", userID)

	return newZoneUserView(user), nil
}

func newZoneView(entry zone.ZoneWithRelations) ZoneView {
	view := ZoneView{
		ID:          entry.Zone.ID,
		Code:        entry.Zone.Code,
		Description: entry.Zone.Description,
		DistrictID:  entry.Zone.DistrictID,
		District: DistrictView{
			ID:          entry.District.ID,
			Code:        entry.District.Code,
			Description: entry.District.Description,
		},
	}
	if entry.User != nil {
		view.User = newZoneUserView(entry.User)
	}
	return view
}

func newZoneUserView(u *models.UserAccountModel) *ZoneUserView {
	return &ZoneUserView{
		ID:         u.ID,
		Username:   u.Username,
		GivenName:  u.GivenName,
		FamilyName: u.FamilyName,
		Email:      u.Email,
	}
}
