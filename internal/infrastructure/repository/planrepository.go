package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/constants"
	"myra/internal/shared/db"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(gdb *gorm.DB) *PlanRepository {
	return &PlanRepository{db: gdb}
}

func (r *PlanRepository) FindByID(ctx context.Context, id uint) (*models.PlanModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var p models.PlanModel
	if err := tx.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}
	return &p, nil
}

// FindCurrentVersion resolves the live row for a canonical id. Any failure,
// storage faults included, degrades to plan.ErrNotFound so callers branch on
// a single not-found condition.
func (r *PlanRepository) FindCurrentVersion(ctx context.Context, canonicalID uint) (*models.PlanModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var p models.PlanModel
	err := tx.
		Where("canonical_id = ? AND version = ?", canonicalID, constants.PlanVersionCurrent).
		First(&p).Error
	if err != nil {
		return nil, plan.ErrNotFound
	}
	return &p, nil
}

func (r *PlanRepository) AgreementIDForPlan(ctx context.Context, planID uint) (string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var agreementID string
	err := tx.Model(&models.PlanModel{}).
		Where("id = ?", planID).
		Select("agreement_id").
		Scan(&agreementID).Error
	if err != nil {
		return "", fmt.Errorf("failed to resolve agreement for plan: %w", err)
	}
	if agreementID == "" {
		return "", plan.ErrNotFound
	}
	return agreementID, nil
}

func (r *PlanRepository) Create(ctx context.Context, p *models.PlanModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return backfillCanonicalID(tx, &models.PlanModel{}, p.ID, &p.CanonicalID)
}

func (r *PlanRepository) Update(ctx context.Context, p *models.PlanModel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.PlanModel{}).Where("id = ?", p.ID).Updates(p).Error; err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) SetVersion(ctx context.Context, planID uint, version int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.PlanModel{}).
		Where("id = ?", planID).
		Update("version", version).Error
	if err != nil {
		return fmt.Errorf("failed to set plan version: %w", err)
	}
	return nil
}

func (r *PlanRepository) NextVersion(ctx context.Context, canonicalID uint) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var maxVersion int
	err := tx.Model(&models.PlanModel{}).
		Where("canonical_id = ? AND version <> ?", canonicalID, constants.PlanVersionCurrent).
		Select("COALESCE(MAX(version), 0)").
		Scan(&maxVersion).Error
	if err != nil {
		return 0, fmt.Errorf("failed to resolve next plan version: %w", err)
	}
	return maxVersion + 1, nil
}

func (r *PlanRepository) SetStatus(ctx context.Context, planID, statusID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.PlanModel{}).
		Where("id = ?", planID).
		Update("status_id", statusID).Error
	if err != nil {
		return fmt.Errorf("failed to set plan status: %w", err)
	}
	return nil
}

func (r *PlanRepository) StatusExists(ctx context.Context, statusID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.RefPlanStatusModel{}).
		Where("id = ? AND active = ?", statusID, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check plan status: %w", err)
	}
	return count > 0, nil
}

// LoadGraph eager-loads the full owned subtree of a plan. Every level is an
// independent query scoped by its parent id.
func (r *PlanRepository) LoadGraph(ctx context.Context, planID uint) (*plan.Graph, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	p, err := r.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	g := &plan.Graph{Plan: *p}

	if g.Pastures, err = r.loadPastures(tx, planID); err != nil {
		return nil, err
	}
	if g.Schedules, err = r.loadSchedules(tx, planID); err != nil {
		return nil, err
	}
	if g.MinisterIssues, err = r.loadMinisterIssues(tx, planID); err != nil {
		return nil, err
	}

	err = tx.Where("plan_id = ?", planID).Order("id").Find(&g.AdditionalRequirements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load additional requirements: %w", err)
	}
	err = tx.Where("plan_id = ?", planID).Order("id").Find(&g.ManagementConsiderations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load management considerations: %w", err)
	}

	return g, nil
}

func (r *PlanRepository) loadPastures(tx *gorm.DB, planID uint) ([]plan.PastureNode, error) {
	var pastures []models.PastureModel
	if err := tx.Where("plan_id = ?", planID).Order("id").Find(&pastures).Error; err != nil {
		return nil, fmt.Errorf("failed to load pastures: %w", err)
	}

	nodes := make([]plan.PastureNode, 0, len(pastures))
	for _, pasture := range pastures {
		node := plan.PastureNode{Pasture: pasture}

		var communities []models.PlantCommunityModel
		err := tx.Where("pasture_id = ?", pasture.ID).Order("id").Find(&communities).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load plant communities: %w", err)
		}

		for _, community := range communities {
			cNode := plan.CommunityNode{Community: community}

			err = tx.Where("plant_community_id = ?", community.ID).Order("id").
				Find(&cNode.IndicatorPlants).Error
			if err != nil {
				return nil, fmt.Errorf("failed to load indicator plants: %w", err)
			}

			err = tx.Where("plant_community_id = ?", community.ID).Order("id").
				Find(&cNode.Actions).Error
			if err != nil {
				return nil, fmt.Errorf("failed to load plant community actions: %w", err)
			}

			var areas []models.MonitoringAreaModel
			err = tx.Where("plant_community_id = ?", community.ID).Order("id").Find(&areas).Error
			if err != nil {
				return nil, fmt.Errorf("failed to load monitoring areas: %w", err)
			}
			for _, area := range areas {
				aNode := plan.AreaNode{Area: area}
				err = tx.Where("monitoring_area_id = ?", area.ID).Order("id").
					Find(&aNode.Purposes).Error
				if err != nil {
					return nil, fmt.Errorf("failed to load monitoring area purposes: %w", err)
				}
				cNode.MonitoringAreas = append(cNode.MonitoringAreas, aNode)
			}

			node.Communities = append(node.Communities, cNode)
		}

		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (r *PlanRepository) loadSchedules(tx *gorm.DB, planID uint) ([]plan.ScheduleNode, error) {
	var schedules []models.GrazingScheduleModel
	err := tx.Where("plan_id = ?", planID).Order("year asc").Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load grazing schedules: %w", err)
	}

	nodes := make([]plan.ScheduleNode, 0, len(schedules))
	for _, schedule := range schedules {
		node := plan.ScheduleNode{Schedule: schedule}
		err = tx.Where("grazing_schedule_id = ?", schedule.ID).Order("id").
			Find(&node.Entries).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load grazing schedule entries: %w", err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (r *PlanRepository) loadMinisterIssues(tx *gorm.DB, planID uint) ([]plan.MinisterIssueNode, error) {
	var issues []models.MinisterIssueModel
	if err := tx.Where("plan_id = ?", planID).Order("id").Find(&issues).Error; err != nil {
		return nil, fmt.Errorf("failed to load minister issues: %w", err)
	}

	nodes := make([]plan.MinisterIssueNode, 0, len(issues))
	for _, issue := range issues {
		node := plan.MinisterIssueNode{Issue: issue}

		err := tx.Where("minister_issue_id = ?", issue.ID).Order("id").
			Find(&node.Actions).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load minister issue actions: %w", err)
		}

		err = tx.Model(&models.MinisterIssuePastureModel{}).
			Where("minister_issue_id = ?", issue.ID).Order("id").
			Pluck("pasture_id", &node.PastureIDs).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load minister issue pastures: %w", err)
		}

		nodes = append(nodes, node)
	}
	return nodes, nil
}

// backfillCanonicalID assigns canonical_id = id for freshly created rows
// that were not given an explicit canonical identity. Duplicated rows carry
// their source's canonical id and are left untouched.
func backfillCanonicalID(tx *gorm.DB, model interface{}, id uint, canonical *uint) error {
	if *canonical != 0 {
		return nil
	}
	*canonical = id
	if err := tx.Model(model).Where("id = ?", id).Update("canonical_id", id).Error; err != nil {
		return fmt.Errorf("failed to backfill canonical id: %w", err)
	}
	return nil
}
