package models

import "time"

// PastureModel is a land unit inside a plan. CanonicalID is the external
// identity used in URLs and responses; ID is the storage key used by
// foreign keys and is never exposed to clients.
type PastureModel struct {
	ID           uint   `gorm:"primaryKey"`
	CanonicalID  uint   `gorm:"not null;index:idx_pasture_plan_canonical"`
	PlanID       uint   `gorm:"not null;index:idx_pasture_plan_canonical"`
	Name         string `gorm:"size:64;not null"`
	AllowableAUM *int
	GraceDays    *int
	PldPercent   *float64
	Notes        string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PastureModel) TableName() string {
	return "pasture"
}
