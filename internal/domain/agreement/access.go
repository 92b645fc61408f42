// Package agreement ties plans to the agreements that own them and decides
// which users may touch a given agreement's plans.
package agreement

import (
	"context"
	"errors"
	"fmt"

	"myra/internal/shared/constants"
	apperrors "myra/internal/shared/errors"
)

// ErrNotFound is returned when an agreement cannot be resolved.
var ErrNotFound = errors.New("agreement not found")

// Repository is the persistence contract for agreement access data.
type Repository interface {
	// Exists reports whether the agreement is known.
	Exists(ctx context.Context, agreementID string) (bool, error)

	// ZoneUserID returns the user id of the range officer assigned to the
	// agreement's zone, or nil when the zone is unassigned.
	ZoneUserID(ctx context.Context, agreementID string) (*uint, error)

	// IsHolder reports whether the user is linked, through a client, to the
	// agreement.
	IsHolder(ctx context.Context, userID uint, agreementID string) (bool, error)
}

// User is the requesting caller as seen by the access check.
type User struct {
	ID   uint
	Role string
}

// AccessChecker decides whether a user may act on an agreement's plans.
// The check is unconditional per request; results are never memoized.
type AccessChecker struct {
	repo Repository
}

func NewAccessChecker(repo Repository) *AccessChecker {
	return &AccessChecker{repo: repo}
}

// CanUserAccessAgreement returns nil when access is allowed. Admins always
// pass; range officers pass for agreements in a zone assigned to them;
// agreement holders pass for agreements their client holds. Denial is a
// forbidden error, an unknown agreement a not-found error.
func (c *AccessChecker) CanUserAccessAgreement(ctx context.Context, user User, agreementID string) error {
	if agreementID == "" {
		return apperrors.NewNotFoundError("agreement required for access check")
	}

	exists, err := c.repo.Exists(ctx, agreementID)
	if err != nil {
		return fmt.Errorf("failed to resolve agreement %s: %w", agreementID, err)
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("agreement %s does not exist", agreementID))
	}

	switch user.Role {
	case constants.RoleAdmin:
		return nil

	case constants.RoleRangeOfficer:
		officerID, err := c.repo.ZoneUserID(ctx, agreementID)
		if err != nil {
			return fmt.Errorf("failed to resolve zone officer for %s: %w", agreementID, err)
		}
		if officerID != nil && *officerID == user.ID {
			return nil
		}

	case constants.RoleAgreementHolder:
		holder, err := c.repo.IsHolder(ctx, user.ID, agreementID)
		if err != nil {
			return fmt.Errorf("failed to resolve holders for %s: %w", agreementID, err)
		}
		if holder {
			return nil
		}
	}

	return apperrors.NewForbiddenError("you do not have access to this agreement")
}
