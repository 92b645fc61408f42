package models

import "time"

// AdditionalRequirementModel is an extra legal requirement attached to a plan.
type AdditionalRequirementModel struct {
	ID          uint   `gorm:"primaryKey"`
	CanonicalID uint   `gorm:"not null;index"`
	PlanID      uint   `gorm:"not null;index"`
	CategoryID  uint   `gorm:"not null"`
	Detail      string `gorm:"type:text"`
	URL         string `gorm:"size:256"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AdditionalRequirementModel) TableName() string {
	return "additional_requirement"
}

// ManagementConsiderationModel is a non-binding consideration noted on a plan.
type ManagementConsiderationModel struct {
	ID                  uint `gorm:"primaryKey"`
	CanonicalID         uint `gorm:"not null;index"`
	PlanID              uint `gorm:"not null;index"`
	ConsiderationTypeID *uint
	Detail              string `gorm:"type:text"`
	URL                 string `gorm:"size:256"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ManagementConsiderationModel) TableName() string {
	return "management_consideration"
}
