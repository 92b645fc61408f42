package models

import "time"

// PlanModel is one version of a range use plan. CanonicalID is the stable
// identity shared by every version; Version -1 marks the current, editable
// row. The schema enforces at most one current row per canonical id.
type PlanModel struct {
	ID              uint   `gorm:"primaryKey"`
	CanonicalID     uint   `gorm:"not null;index:idx_plan_canonical_version,unique,where:version = -1"`
	Version         int    `gorm:"not null;default:-1"`
	AgreementID     string `gorm:"size:9;not null;index"`
	RangeName       string `gorm:"size:64"`
	AltBusinessName string `gorm:"size:64"`
	PlanStartDate   *time.Time
	PlanEndDate     *time.Time
	Notes           string `gorm:"type:text"`
	StatusID        uint   `gorm:"not null"`
	ExtensionID     *uint
	CreatorID       uint `gorm:"not null;index"`
	AmendmentTypeID *uint
	Uploaded        bool `gorm:"not null;default:false"`
	StaffInitiated  bool `gorm:"not null;default:false"`
	EffectiveAt     *time.Time
	SubmittedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Note: no gorm associations. Relationships are managed by application
	// logic so the duplication workflow controls every query it issues.
}

func (PlanModel) TableName() string {
	return "plan"
}
