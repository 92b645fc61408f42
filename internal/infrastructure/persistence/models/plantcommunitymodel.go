package models

import "time"

// PlantCommunityModel describes the vegetation on a pasture.
type PlantCommunityModel struct {
	ID              uint `gorm:"primaryKey"`
	CanonicalID     uint `gorm:"not null;index:idx_plant_community_pasture_canonical"`
	PastureID       uint `gorm:"not null;index:idx_plant_community_pasture_canonical"`
	CommunityTypeID uint `gorm:"not null"`
	ElevationID     *uint
	PurposeOfAction string `gorm:"size:32;not null"`
	Name            string `gorm:"size:64"`
	Aspect          string `gorm:"size:16"`
	URL             string `gorm:"size:256"`
	Notes           string `gorm:"type:text"`
	Approved        bool   `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PlantCommunityModel) TableName() string {
	return "plant_community"
}

// IndicatorPlantModel is a plant tracked against a community criteria.
type IndicatorPlantModel struct {
	ID               uint `gorm:"primaryKey"`
	CanonicalID      uint `gorm:"not null;index"`
	PlantCommunityID uint `gorm:"not null;index"`
	PlantSpeciesID   *uint
	Criteria         string `gorm:"size:32;not null"`
	Value            *float64
	Name             string `gorm:"size:64"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (IndicatorPlantModel) TableName() string {
	return "indicator_plant"
}

// MonitoringAreaModel is a monitoring site within a plant community. Its
// purposes live in monitoring_area_purpose and are reconciled as a set.
type MonitoringAreaModel struct {
	ID                uint   `gorm:"primaryKey"`
	CanonicalID       uint   `gorm:"not null;index"`
	PlantCommunityID  uint   `gorm:"not null;index"`
	Name              string `gorm:"size:64;not null"`
	Latitude          *float64
	Longitude         *float64
	RangelandHealthID *uint
	TransectAzimuth   *int
	Location          string `gorm:"size:128"`
	OtherPurpose      string `gorm:"size:64"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (MonitoringAreaModel) TableName() string {
	return "monitoring_area"
}

// MonitoringAreaPurposeModel links a monitoring area to a purpose type.
type MonitoringAreaPurposeModel struct {
	ID               uint `gorm:"primaryKey"`
	CanonicalID      uint `gorm:"not null;index"`
	MonitoringAreaID uint `gorm:"not null;index"`
	PurposeTypeID    uint `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (MonitoringAreaPurposeModel) TableName() string {
	return "monitoring_area_purpose"
}

// PlantCommunityActionModel records a management action against a community.
type PlantCommunityActionModel struct {
	ID                uint   `gorm:"primaryKey"`
	CanonicalID       uint   `gorm:"not null;index"`
	PlantCommunityID  uint   `gorm:"not null;index"`
	ActionTypeID      uint   `gorm:"not null"`
	Name              string `gorm:"size:64"`
	Details           string `gorm:"type:text"`
	NoGrazeStartDay   *int
	NoGrazeStartMonth *int
	NoGrazeEndDay     *int
	NoGrazeEndMonth   *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (PlantCommunityActionModel) TableName() string {
	return "plant_community_action"
}
