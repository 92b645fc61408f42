package plan

import (
	"context"

	"myra/internal/infrastructure/persistence/models"
)

// Repository is the plan-level persistence contract.
type Repository interface {
	// FindByID returns a plan row by internal id.
	FindByID(ctx context.Context, id uint) (*models.PlanModel, error)

	// FindCurrentVersion returns the version -1 row for a canonical id.
	// Zero rows and storage failures both surface as ErrNotFound.
	FindCurrentVersion(ctx context.Context, canonicalID uint) (*models.PlanModel, error)

	// AgreementIDForPlan resolves the agreement a plan belongs to.
	AgreementIDForPlan(ctx context.Context, planID uint) (string, error)

	// Create inserts a plan row. A zero CanonicalID is backfilled with the
	// freshly assigned internal id.
	Create(ctx context.Context, p *models.PlanModel) error

	Update(ctx context.Context, p *models.PlanModel) error

	// SetVersion stamps a plan row with a version number.
	SetVersion(ctx context.Context, planID uint, version int) error

	// NextVersion returns the next archive version number for a canonical
	// id (1 for a lineage that has never been versioned).
	NextVersion(ctx context.Context, canonicalID uint) (int, error)

	SetStatus(ctx context.Context, planID, statusID uint) error

	// StatusExists reports whether a plan status reference row exists.
	StatusExists(ctx context.Context, statusID uint) (bool, error)

	// LoadGraph eager-loads the full owned subtree of a plan.
	LoadGraph(ctx context.Context, planID uint) (*Graph, error)
}

// PastureRepository persists pastures.
type PastureRepository interface {
	FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.PastureModel, error)
	ListByPlan(ctx context.Context, planID uint) ([]models.PastureModel, error)
	Create(ctx context.Context, p *models.PastureModel) error
	Update(ctx context.Context, p *models.PastureModel) error
	// Remove deletes by canonical id scoped to a plan and reports the
	// number of rows affected; zero means the pasture did not exist.
	Remove(ctx context.Context, planID, canonicalID uint) (int64, error)
}

// PlantCommunityRepository persists plant communities.
type PlantCommunityRepository interface {
	FindByCanonical(ctx context.Context, pastureID, canonicalID uint) (*models.PlantCommunityModel, error)
	Create(ctx context.Context, pc *models.PlantCommunityModel) error
	Update(ctx context.Context, pc *models.PlantCommunityModel) error
	Remove(ctx context.Context, pastureID, canonicalID uint) (int64, error)
}

// IndicatorPlantRepository persists indicator plants.
type IndicatorPlantRepository interface {
	FindByCanonical(ctx context.Context, communityID, canonicalID uint) (*models.IndicatorPlantModel, error)
	Create(ctx context.Context, ip *models.IndicatorPlantModel) error
	Update(ctx context.Context, ip *models.IndicatorPlantModel) error
	Remove(ctx context.Context, communityID, canonicalID uint) (int64, error)
}

// PlantCommunityActionRepository persists plant community actions.
type PlantCommunityActionRepository interface {
	FindByCanonical(ctx context.Context, communityID, canonicalID uint) (*models.PlantCommunityActionModel, error)
	Create(ctx context.Context, a *models.PlantCommunityActionModel) error
	Update(ctx context.Context, a *models.PlantCommunityActionModel) error
	Remove(ctx context.Context, communityID, canonicalID uint) (int64, error)
}

// MonitoringAreaRepository persists monitoring areas and their purpose links.
type MonitoringAreaRepository interface {
	FindByCanonical(ctx context.Context, communityID, canonicalID uint) (*models.MonitoringAreaModel, error)
	Create(ctx context.Context, a *models.MonitoringAreaModel) error
	Update(ctx context.Context, a *models.MonitoringAreaModel) error
	Remove(ctx context.Context, areaID uint) (int64, error)

	ListPurposes(ctx context.Context, areaID uint) ([]models.MonitoringAreaPurposeModel, error)
	CreatePurpose(ctx context.Context, p *models.MonitoringAreaPurposeModel) error
	RemovePurpose(ctx context.Context, areaID, purposeID uint) error
}

// GrazingScheduleRepository persists grazing schedules and their entries.
type GrazingScheduleRepository interface {
	FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.GrazingScheduleModel, error)
	Create(ctx context.Context, s *models.GrazingScheduleModel) error
	Update(ctx context.Context, s *models.GrazingScheduleModel) error
	Remove(ctx context.Context, planID, canonicalID uint) (int64, error)

	ListEntries(ctx context.Context, scheduleID uint) ([]models.GrazingScheduleEntryModel, error)
	CreateEntry(ctx context.Context, e *models.GrazingScheduleEntryModel) error
	DeleteEntries(ctx context.Context, scheduleID uint) error
}

// MinisterIssueRepository persists minister issues, their actions, and their
// pasture links.
type MinisterIssueRepository interface {
	FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.MinisterIssueModel, error)
	Create(ctx context.Context, i *models.MinisterIssueModel) error
	Update(ctx context.Context, i *models.MinisterIssueModel) error
	Remove(ctx context.Context, planID, canonicalID uint) (int64, error)

	FindActionByCanonical(ctx context.Context, issueID, canonicalID uint) (*models.MinisterIssueActionModel, error)
	CreateAction(ctx context.Context, a *models.MinisterIssueActionModel) error
	UpdateAction(ctx context.Context, a *models.MinisterIssueActionModel) error
	RemoveAction(ctx context.Context, issueID, canonicalID uint) (int64, error)

	LinkPasture(ctx context.Context, issueID, pastureID uint) error
	ReplacePastureLinks(ctx context.Context, issueID uint, pastureIDs []uint) error
}

// AdditionalRequirementRepository persists additional requirements.
type AdditionalRequirementRepository interface {
	FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.AdditionalRequirementModel, error)
	Create(ctx context.Context, r *models.AdditionalRequirementModel) error
	Update(ctx context.Context, r *models.AdditionalRequirementModel) error
	Remove(ctx context.Context, planID, canonicalID uint) (int64, error)
}

// ManagementConsiderationRepository persists management considerations.
type ManagementConsiderationRepository interface {
	FindByCanonical(ctx context.Context, planID, canonicalID uint) (*models.ManagementConsiderationModel, error)
	Create(ctx context.Context, m *models.ManagementConsiderationModel) error
	Update(ctx context.Context, m *models.ManagementConsiderationModel) error
	Remove(ctx context.Context, planID, canonicalID uint) (int64, error)
}
