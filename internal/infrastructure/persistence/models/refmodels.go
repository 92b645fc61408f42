package models

// Reference tables. Each row is a fixed lookup value seeded at install time;
// Active rows are offered to clients, inactive ones are kept for old data.

type RefPlanStatusModel struct {
	ID     uint   `gorm:"primaryKey"`
	Code   string `gorm:"size:8;not null"`
	Name   string `gorm:"size:64;not null"`
	Active bool   `gorm:"not null"`
}

func (RefPlanStatusModel) TableName() string {
	return "ref_plan_status"
}

type RefAmendmentTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:8;not null"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefAmendmentTypeModel) TableName() string {
	return "ref_amendment_type"
}

type RefPlantCommunityTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefPlantCommunityTypeModel) TableName() string {
	return "ref_plant_community_type"
}

type RefPlantCommunityElevationModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefPlantCommunityElevationModel) TableName() string {
	return "ref_plant_community_elevation"
}

type RefPlantCommunityHealthModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefPlantCommunityHealthModel) TableName() string {
	return "ref_plant_community_health"
}

type RefPlantCommunityActionTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefPlantCommunityActionTypeModel) TableName() string {
	return "ref_plant_community_action_type"
}

type RefMonitoringAreaPurposeTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefMonitoringAreaPurposeTypeModel) TableName() string {
	return "ref_monitoring_area_purpose_type"
}

type RefMinisterIssueTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefMinisterIssueTypeModel) TableName() string {
	return "ref_minister_issue_type"
}

type RefMinisterIssueActionTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefMinisterIssueActionTypeModel) TableName() string {
	return "ref_minister_issue_action_type"
}

type RefAdditionalRequirementCategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefAdditionalRequirementCategoryModel) TableName() string {
	return "ref_additional_requirement_category"
}

type RefManagementConsiderationTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:128;not null"`
	Active      bool   `gorm:"not null"`
}

func (RefManagementConsiderationTypeModel) TableName() string {
	return "ref_management_consideration_type"
}

type RefLivestockTypeModel struct {
	ID          uint    `gorm:"primaryKey"`
	Description string  `gorm:"size:128;not null"`
	AUMFactor   float64 `gorm:"not null;default:0"`
	Active      bool    `gorm:"not null"`
}

func (RefLivestockTypeModel) TableName() string {
	return "ref_livestock_type"
}
