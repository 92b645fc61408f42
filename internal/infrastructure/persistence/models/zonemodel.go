package models

import "time"

// ZoneModel is a range zone within a district, optionally assigned to a
// range officer (UserID).
type ZoneModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:10;not null"`
	DistrictID  uint   `gorm:"not null;index"`
	UserID      *uint  `gorm:"index"`
	Description string `gorm:"size:128"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ZoneModel) TableName() string {
	return "ref_zone"
}

// DistrictModel is a forest district.
type DistrictModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:10;not null"`
	Description string `gorm:"size:128"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DistrictModel) TableName() string {
	return "ref_district"
}
