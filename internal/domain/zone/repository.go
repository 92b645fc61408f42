// Package zone covers range zones, districts, and their staff assignment.
package zone

import (
	"context"
	"errors"

	"myra/internal/infrastructure/persistence/models"
)

var (
	ErrZoneNotFound = errors.New("zone not found")
	ErrUserNotFound = errors.New("user not found")
)

// ZoneWithRelations is a zone with its district and assigned user resolved
// for the client.
type ZoneWithRelations struct {
	Zone     models.ZoneModel
	District models.DistrictModel
	User     *models.UserAccountModel
}

// Repository is the persistence contract for zones.
type Repository interface {
	// List returns zones, optionally filtered by district, with district
	// and assigned user loaded.
	List(ctx context.Context, districtID *uint) ([]ZoneWithRelations, error)

	FindByID(ctx context.Context, id uint) (*models.ZoneModel, error)

	// AssignUser sets the range officer responsible for a zone.
	AssignUser(ctx context.Context, zoneID, userID uint) error
}

// UserRepository resolves user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.UserAccountModel, error)
}
