package agreement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"myra/internal/shared/constants"
	apperrors "myra/internal/shared/errors"
)

type fakeRepo struct {
	exists     bool
	zoneUserID *uint
	holder     bool
}

func (f *fakeRepo) Exists(ctx context.Context, agreementID string) (bool, error) {
	return f.exists, nil
}

func (f *fakeRepo) ZoneUserID(ctx context.Context, agreementID string) (*uint, error) {
	return f.zoneUserID, nil
}

func (f *fakeRepo) IsHolder(ctx context.Context, userID uint, agreementID string) (bool, error) {
	return f.holder, nil
}

func TestAccessChecker_CanUserAccessAgreement(t *testing.T) {
	officerID := uint(12)

	tests := []struct {
		name        string
		repo        *fakeRepo
		user        User
		agreementID string
		wantErr     func(error) bool
	}{
		{
			name:        "admin always passes",
			repo:        &fakeRepo{exists: true},
			user:        User{ID: 1, Role: constants.RoleAdmin},
			agreementID: "RAN075974",
			wantErr:     nil,
		},
		{
			name:        "assigned range officer passes",
			repo:        &fakeRepo{exists: true, zoneUserID: &officerID},
			user:        User{ID: 12, Role: constants.RoleRangeOfficer},
			agreementID: "RAN075974",
			wantErr:     nil,
		},
		{
			name:        "unassigned range officer is forbidden",
			repo:        &fakeRepo{exists: true, zoneUserID: &officerID},
			user:        User{ID: 99, Role: constants.RoleRangeOfficer},
			agreementID: "RAN075974",
			wantErr:     apperrors.IsForbiddenError,
		},
		{
			name:        "officer of an unassigned zone is forbidden",
			repo:        &fakeRepo{exists: true},
			user:        User{ID: 12, Role: constants.RoleRangeOfficer},
			agreementID: "RAN075974",
			wantErr:     apperrors.IsForbiddenError,
		},
		{
			name:        "agreement holder passes",
			repo:        &fakeRepo{exists: true, holder: true},
			user:        User{ID: 3, Role: constants.RoleAgreementHolder},
			agreementID: "RAN075974",
			wantErr:     nil,
		},
		{
			name:        "non-holder client is forbidden",
			repo:        &fakeRepo{exists: true},
			user:        User{ID: 3, Role: constants.RoleAgreementHolder},
			agreementID: "RAN075974",
			wantErr:     apperrors.IsForbiddenError,
		},
		{
			name:        "unknown role is forbidden",
			repo:        &fakeRepo{exists: true},
			user:        User{ID: 3, Role: "intruder"},
			agreementID: "RAN075974",
			wantErr:     apperrors.IsForbiddenError,
		},
		{
			name:        "unknown agreement is not found even for admins",
			repo:        &fakeRepo{exists: false},
			user:        User{ID: 1, Role: constants.RoleAdmin},
			agreementID: "RAN000000",
			wantErr:     apperrors.IsNotFoundError,
		},
		{
			name:        "empty agreement id is not found",
			repo:        &fakeRepo{exists: true},
			user:        User{ID: 1, Role: constants.RoleAdmin},
			agreementID: "",
			wantErr:     apperrors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewAccessChecker(tt.repo)
			err := checker.CanUserAccessAgreement(context.Background(), tt.user, tt.agreementID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, tt.wantErr(err))
			}
		})
	}
}
