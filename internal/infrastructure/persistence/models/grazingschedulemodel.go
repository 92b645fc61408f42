package models

import "time"

// GrazingScheduleModel is a plan's schedule for one grazing year.
type GrazingScheduleModel struct {
	ID          uint   `gorm:"primaryKey"`
	CanonicalID uint   `gorm:"not null;index"`
	PlanID      uint   `gorm:"not null;index"`
	Year        int    `gorm:"not null"`
	Narrative   string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (GrazingScheduleModel) TableName() string {
	return "grazing_schedule"
}

// GrazingScheduleEntryModel is one pasture's use within a schedule year.
// PastureID references a pasture of the same plan; the duplication workflow
// must remap it to the copied pasture.
type GrazingScheduleEntryModel struct {
	ID                uint `gorm:"primaryKey"`
	CanonicalID       uint `gorm:"not null;index"`
	GrazingScheduleID uint `gorm:"not null;index"`
	PastureID         uint `gorm:"not null;index"`
	LivestockTypeID   *uint
	LivestockCount    int
	DateIn            *time.Time
	DateOut           *time.Time
	GraceDays         *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (GrazingScheduleEntryModel) TableName() string {
	return "grazing_schedule_entry"
}
