package seeds

import (
	"gorm.io/gorm"

	"myra/internal/infrastructure/persistence/models"
)

// SeedPlanStatuses seeds the plan status reference table
func SeedPlanStatuses(db *gorm.DB) error {
	statuses := []models.RefPlanStatusModel{
		{Code: "C", Name: "Created", Active: true},
		{Code: "D", Name: "Draft", Active: true},
		{Code: "SR", Name: "Submitted For Review", Active: true},
		{Code: "SFD", Name: "Submitted For Final Decision", Active: true},
		{Code: "RR", Name: "Recommend Ready", Active: true},
		{Code: "RNR", Name: "Recommend Not Ready", Active: true},
		{Code: "A", Name: "Approved", Active: true},
		{Code: "NA", Name: "Not Approved", Active: true},
		{Code: "NF", Name: "Not Approved - Further Work Required", Active: true},
		{Code: "R", Name: "Change Requested", Active: true},
		{Code: "S", Name: "Stands", Active: true},
		{Code: "WM", Name: "Wrongly Made - Without Effect", Active: true},
		{Code: "SW", Name: "Stands - Wrongly Made", Active: true},
		{Code: "RET", Name: "Retired", Active: true},
		{Code: "E", Name: "Expired", Active: true},
	}

	for _, status := range statuses {
		if err := db.FirstOrCreate(&status, models.RefPlanStatusModel{
			Code: status.Code,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAmendmentTypes seeds the amendment type reference table
func SeedAmendmentTypes(db *gorm.DB) error {
	types := []models.RefAmendmentTypeModel{
		{Code: "MNA", Description: "Minor Amendment", Active: true},
		{Code: "MA", Description: "Mandatory Amendment", Active: true},
	}

	for _, t := range types {
		if err := db.FirstOrCreate(&t, models.RefAmendmentTypeModel{
			Code: t.Code,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedPlantCommunityHealth seeds the rangeland health reference table.
// Values match the province's published descriptions, spelling included.
func SeedPlantCommunityHealth(db *gorm.DB) error {
	refs := []models.RefPlantCommunityHealthModel{
		{Description: "Low Risk", Active: true},
		{Description: "Moderatly at Risk", Active: true},
		{Description: "Highly at Risk", Active: true},
		{Description: "Non Functional", Active: true},
		{Description: "Properly Funcitonal (PFC)", Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefPlantCommunityHealthModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedPlantCommunityElevations seeds the elevation bands
func SeedPlantCommunityElevations(db *gorm.DB) error {
	refs := []models.RefPlantCommunityElevationModel{
		{Description: "<500", Active: true},
		{Description: "500-699", Active: true},
		{Description: "700-899", Active: true},
		{Description: "900-1099", Active: true},
		{Description: "1100-1299", Active: true},
		{Description: "1300-1500", Active: true},
		{Description: ">1500", Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefPlantCommunityElevationModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMonitoringAreaPurposeTypes seeds the monitoring area purpose types
func SeedMonitoringAreaPurposeTypes(db *gorm.DB) error {
	refs := []models.RefMonitoringAreaPurposeTypeModel{
		{Description: "Range Readiness", Active: true},
		{Description: "Stubble Height", Active: true},
		{Description: "Shrub Use", Active: true},
		{Description: "Key Area", Active: true},
		{Description: "Other", Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefMonitoringAreaPurposeTypeModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedLivestockTypes seeds livestock types with their animal unit month factors
func SeedLivestockTypes(db *gorm.DB) error {
	refs := []models.RefLivestockTypeModel{
		{Description: "Cow with Calf", AUMFactor: 1, Active: true},
		{Description: "Bull", AUMFactor: 1.5, Active: true},
		{Description: "Yearling", AUMFactor: 0.7, Active: true},
		{Description: "Horse", AUMFactor: 1.25, Active: true},
		{Description: "Sheep", AUMFactor: 0.2, Active: true},
		{Description: "Alpaca", AUMFactor: 0.1, Active: true},
		{Description: "Goat", AUMFactor: 0.2, Active: true},
		{Description: "Llama", AUMFactor: 0.2, Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefLivestockTypeModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMinisterIssueTypes seeds the minister issue types
func SeedMinisterIssueTypes(db *gorm.DB) error {
	refs := []models.RefMinisterIssueTypeModel{
		{Description: "Riparian", Active: true},
		{Description: "Water Quality", Active: true},
		{Description: "Community Watershed", Active: true},
		{Description: "Wildlife", Active: true},
		{Description: "Species at Risk", Active: true},
		{Description: "Rangeland Health", Active: true},
		{Description: "Invasive Plants", Active: true},
		{Description: "Other", Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefMinisterIssueTypeModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMinisterIssueActionTypes seeds the minister issue action types
func SeedMinisterIssueActionTypes(db *gorm.DB) error {
	refs := []models.RefMinisterIssueActionTypeModel{
		{Description: "Herding", Active: true},
		{Description: "Livestock Variables", Active: true},
		{Description: "Salting", Active: true},
		{Description: "Supplemental Feeding", Active: true},
		{Description: "Timing", Active: true},
		{Description: "Other", Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefMinisterIssueActionTypeModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedPlantCommunityActionTypes seeds the plant community action types
func SeedPlantCommunityActionTypes(db *gorm.DB) error {
	refs := []models.RefPlantCommunityActionTypeModel{
		{Description: "Herding", Active: true},
		{Description: "Salting", Active: true},
		{Description: "Supplemental Feeding", Active: true},
		{Description: "Timing", Active: true},
		{Description: "Other", Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefPlantCommunityActionTypeModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdditionalRequirementCategories seeds the additional requirement categories
func SeedAdditionalRequirementCategories(db *gorm.DB) error {
	refs := []models.RefAdditionalRequirementCategoryModel{
		{Description: "Land Use Plan", Active: true},
		{Description: "Memorandum of Understanding", Active: true},
		{Description: "Agreement", Active: true},
		{Description: "Other", Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefAdditionalRequirementCategoryModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedManagementConsiderationTypes seeds the management consideration types
func SeedManagementConsiderationTypes(db *gorm.DB) error {
	refs := []models.RefManagementConsiderationTypeModel{
		{Description: "Recreation", Active: true},
		{Description: "Cultural Heritage", Active: true},
		{Description: "Wildlife Habitat", Active: true},
		{Description: "Other", Active: true},
	}

	for _, ref := range refs {
		if err := db.FirstOrCreate(&ref, models.RefManagementConsiderationTypeModel{
			Description: ref.Description,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAll runs every reference data seeder
func SeedAll(db *gorm.DB) error {
	seeders := []func(*gorm.DB) error{
		SeedPlanStatuses,
		SeedAmendmentTypes,
		SeedPlantCommunityHealth,
		SeedPlantCommunityElevations,
		SeedMonitoringAreaPurposeTypes,
		SeedLivestockTypes,
		SeedMinisterIssueTypes,
		SeedMinisterIssueActionTypes,
		SeedPlantCommunityActionTypes,
		SeedAdditionalRequirementCategories,
		SeedManagementConsiderationTypes,
	}

	for _, seed := range seeders {
		if err := seed(db); err != nil {
			return err
		}
	}
	return nil
}
