package migration

import (
	"fmt"

	"gorm.io/gorm"

	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema straight from the model
// structs. Development use only.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every model in migration order: reference tables
// first, then agreements and users, then the plan tree.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		// reference data
		&models.RefPlanStatusModel{},
		&models.RefAmendmentTypeModel{},
		&models.RefPlantCommunityTypeModel{},
		&models.RefPlantCommunityElevationModel{},
		&models.RefPlantCommunityHealthModel{},
		&models.RefPlantCommunityActionTypeModel{},
		&models.RefMonitoringAreaPurposeTypeModel{},
		&models.RefMinisterIssueTypeModel{},
		&models.RefMinisterIssueActionTypeModel{},
		&models.RefAdditionalRequirementCategoryModel{},
		&models.RefManagementConsiderationTypeModel{},
		&models.RefLivestockTypeModel{},
		&models.DistrictModel{},
		&models.ZoneModel{},

		// parties
		&models.UserAccountModel{},
		&models.ClientModel{},
		&models.AgreementModel{},
		&models.ClientAgreementModel{},
		&models.UserClientLinkModel{},

		// plan tree
		&models.PlanModel{},
		&models.PastureModel{},
		&models.PlantCommunityModel{},
		&models.IndicatorPlantModel{},
		&models.MonitoringAreaModel{},
		&models.MonitoringAreaPurposeModel{},
		&models.PlantCommunityActionModel{},
		&models.GrazingScheduleModel{},
		&models.GrazingScheduleEntryModel{},
		&models.MinisterIssueModel{},
		&models.MinisterIssueActionModel{},
		&models.MinisterIssuePastureModel{},
		&models.AdditionalRequirementModel{},
		&models.ManagementConsiderationModel{},
	}
}
