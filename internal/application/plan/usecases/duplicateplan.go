package usecases

import (
	"context"
	"fmt"

	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/shared/constants"
	"myra/internal/shared/db"
	"myra/internal/shared/logger"
)

// DuplicatePlanUseCase deep-copies a plan and its entire owned subtree in a
// single transaction. Copies keep their source's canonical id at every
// level; only storage keys change. Cross-branch references (schedule entries
// and minister issue pasture links) are remapped through a translation table
// built while copying pastures.
type DuplicatePlanUseCase struct {
	plans            plan.Repository
	pastures         plan.PastureRepository
	communities      plan.PlantCommunityRepository
	indicatorPlants  plan.IndicatorPlantRepository
	communityActions plan.PlantCommunityActionRepository
	areas            plan.MonitoringAreaRepository
	schedules        plan.GrazingScheduleRepository
	issues           plan.MinisterIssueRepository
	requirements     plan.AdditionalRequirementRepository
	considerations   plan.ManagementConsiderationRepository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewDuplicatePlanUseCase(
	plans plan.Repository,
	pastures plan.PastureRepository,
	communities plan.PlantCommunityRepository,
	indicatorPlants plan.IndicatorPlantRepository,
	communityActions plan.PlantCommunityActionRepository,
	areas plan.MonitoringAreaRepository,
	schedules plan.GrazingScheduleRepository,
	issues plan.MinisterIssueRepository,
	requirements plan.AdditionalRequirementRepository,
	considerations plan.ManagementConsiderationRepository,
	txManager *db.TransactionManager,
	log logger.Interface,
) *DuplicatePlanUseCase {
	return &DuplicatePlanUseCase{
		plans:            plans,
		pastures:         pastures,
		communities:      communities,
		indicatorPlants:  indicatorPlants,
		communityActions: communityActions,
		areas:            areas,
		schedules:        schedules,
		issues:           issues,
		requirements:     requirements,
		considerations:   considerations,
		txManager:        txManager,
		logger:           log,
	}
}

// Mutate adjusts the copied plan row before it is inserted. Used by callers
// to stamp amendment types or a different creator on the copy.
type Mutate func(p *models.PlanModel)

// Execute copies the plan identified by sourcePlanID under the given
// versioning policy and returns the new current plan row. Any failure rolls
// back the entire copy; a plan is never left partially duplicated.
func (uc *DuplicatePlanUseCase) Execute(ctx context.Context, sourcePlanID uint, policy plan.VersioningPolicy, mutations ...Mutate) (*models.PlanModel, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown versioning policy %d", int(policy))
	}

	var copied *models.PlanModel
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		graph, err := uc.plans.LoadGraph(txCtx, sourcePlanID)
		if err != nil {
			return fmt.Errorf("failed to load plan %d: %w", sourcePlanID, err)
		}

		copied, err = uc.copyPlanRow(txCtx, graph, policy, mutations)
		if err != nil {
			return err
		}

		pastureIDs, err := uc.copyPastureTree(txCtx, graph, copied.ID)
		if err != nil {
			return err
		}
		if err := uc.copySchedules(txCtx, graph, copied.ID, pastureIDs); err != nil {
			return err
		}
		if err := uc.copyMinisterIssues(txCtx, graph, copied.ID, pastureIDs); err != nil {
			return err
		}
		if err := uc.copyPlanExtras(txCtx, graph, copied.ID); err != nil {
			return err
		}

		counts := graph.Count()
		uc.logger.Infow("plan duplicated",
			"source_plan_id", sourcePlanID,
			"new_plan_id", copied.ID,
			"canonical_id", copied.CanonicalID,
			"policy", policy.String(),
			"pastures", counts.Pastures,
			"schedules", counts.Schedules,
			"minister_issues", counts.MinisterIssues)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return copied, nil
}

// copyPlanRow inserts the copy of the plan row itself. Under AsNewVersion
// the source is archived first with the next version number, which frees the
// one-current-row-per-canonical-id slot for the copy.
func (uc *DuplicatePlanUseCase) copyPlanRow(ctx context.Context, graph *plan.Graph, policy plan.VersioningPolicy, mutations []Mutate) (*models.PlanModel, error) {
	source := graph.Plan

	newPlan := source
	newPlan.ID = 0
	newPlan.Version = constants.PlanVersionCurrent
	newPlan.CreatedAt = zeroTime
	newPlan.UpdatedAt = zeroTime

	switch policy {
	case plan.AsNewVersion:
		next, err := uc.plans.NextVersion(ctx, source.CanonicalID)
		if err != nil {
			return nil, err
		}
		if err := uc.plans.SetVersion(ctx, source.ID, next); err != nil {
			return nil, err
		}
	case plan.AsNewPlan:
		newPlan.CanonicalID = 0
	}

	for _, mutate := range mutations {
		mutate(&newPlan)
	}

	if err := uc.plans.Create(ctx, &newPlan); err != nil {
		return nil, err
	}
	return &newPlan, nil
}

// copyPastureTree copies pastures with their plant communities, indicator
// plants, monitoring areas and purposes, and community actions. It returns
// the old-to-new pasture id translation table used by the cross-branch
// levels.
func (uc *DuplicatePlanUseCase) copyPastureTree(ctx context.Context, graph *plan.Graph, newPlanID uint) (map[uint]uint, error) {
	pastureIDs := make(map[uint]uint, len(graph.Pastures))

	for _, node := range graph.Pastures {
		newPasture := node.Pasture
		newPasture.ID = 0
		newPasture.PlanID = newPlanID
		newPasture.CreatedAt = zeroTime
		newPasture.UpdatedAt = zeroTime
		if err := uc.pastures.Create(ctx, &newPasture); err != nil {
			return nil, err
		}
		pastureIDs[node.Pasture.ID] = newPasture.ID

		for _, cNode := range node.Communities {
			if err := uc.copyCommunity(ctx, cNode, newPasture.ID); err != nil {
				return nil, err
			}
		}
	}
	return pastureIDs, nil
}

func (uc *DuplicatePlanUseCase) copyCommunity(ctx context.Context, node plan.CommunityNode, newPastureID uint) error {
	newCommunity := node.Community
	newCommunity.ID = 0
	newCommunity.PastureID = newPastureID
	newCommunity.CreatedAt = zeroTime
	newCommunity.UpdatedAt = zeroTime
	if err := uc.communities.Create(ctx, &newCommunity); err != nil {
		return err
	}

	for _, ip := range node.IndicatorPlants {
		newPlant := ip
		newPlant.ID = 0
		newPlant.PlantCommunityID = newCommunity.ID
		newPlant.CreatedAt = zeroTime
		newPlant.UpdatedAt = zeroTime
		if err := uc.indicatorPlants.Create(ctx, &newPlant); err != nil {
			return err
		}
	}

	for _, aNode := range node.MonitoringAreas {
		newArea := aNode.Area
		newArea.ID = 0
		newArea.PlantCommunityID = newCommunity.ID
		newArea.CreatedAt = zeroTime
		newArea.UpdatedAt = zeroTime
		if err := uc.areas.Create(ctx, &newArea); err != nil {
			return err
		}
		for _, purpose := range aNode.Purposes {
			newPurpose := purpose
			newPurpose.ID = 0
			newPurpose.MonitoringAreaID = newArea.ID
			newPurpose.CreatedAt = zeroTime
			newPurpose.UpdatedAt = zeroTime
			if err := uc.areas.CreatePurpose(ctx, &newPurpose); err != nil {
				return err
			}
		}
	}

	for _, action := range node.Actions {
		newAction := action
		newAction.ID = 0
		newAction.PlantCommunityID = newCommunity.ID
		newAction.CreatedAt = zeroTime
		newAction.UpdatedAt = zeroTime
		if err := uc.communityActions.Create(ctx, &newAction); err != nil {
			return err
		}
	}
	return nil
}

func (uc *DuplicatePlanUseCase) copySchedules(ctx context.Context, graph *plan.Graph, newPlanID uint, pastureIDs map[uint]uint) error {
	for _, node := range graph.Schedules {
		newSchedule := node.Schedule
		newSchedule.ID = 0
		newSchedule.PlanID = newPlanID
		newSchedule.CreatedAt = zeroTime
		newSchedule.UpdatedAt = zeroTime
		if err := uc.schedules.Create(ctx, &newSchedule); err != nil {
			return err
		}

		for _, entry := range node.Entries {
			newPastureID, ok := pastureIDs[entry.PastureID]
			if !ok {
				return fmt.Errorf("schedule entry %d references pasture %d outside plan %d: %w",
					entry.ID, entry.PastureID, graph.Plan.ID, plan.ErrInconsistentGraph)
			}
			newEntry := entry
			newEntry.ID = 0
			newEntry.GrazingScheduleID = newSchedule.ID
			newEntry.PastureID = newPastureID
			newEntry.CreatedAt = zeroTime
			newEntry.UpdatedAt = zeroTime
			if err := uc.schedules.CreateEntry(ctx, &newEntry); err != nil {
				return err
			}
		}
	}
	return nil
}

func (uc *DuplicatePlanUseCase) copyMinisterIssues(ctx context.Context, graph *plan.Graph, newPlanID uint, pastureIDs map[uint]uint) error {
	for _, node := range graph.MinisterIssues {
		newIssue := node.Issue
		newIssue.ID = 0
		newIssue.PlanID = newPlanID
		newIssue.CreatedAt = zeroTime
		newIssue.UpdatedAt = zeroTime
		if err := uc.issues.Create(ctx, &newIssue); err != nil {
			return err
		}

		for _, action := range node.Actions {
			newAction := action
			newAction.ID = 0
			newAction.MinisterIssueID = newIssue.ID
			newAction.CreatedAt = zeroTime
			newAction.UpdatedAt = zeroTime
			if err := uc.issues.CreateAction(ctx, &newAction); err != nil {
				return err
			}
		}

		for _, oldPastureID := range node.PastureIDs {
			newPastureID, ok := pastureIDs[oldPastureID]
			if !ok {
				return fmt.Errorf("minister issue %d references pasture %d outside plan %d: %w",
					node.Issue.ID, oldPastureID, graph.Plan.ID, plan.ErrInconsistentGraph)
			}
			if err := uc.issues.LinkPasture(ctx, newIssue.ID, newPastureID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (uc *DuplicatePlanUseCase) copyPlanExtras(ctx context.Context, graph *plan.Graph, newPlanID uint) error {
	for _, req := range graph.AdditionalRequirements {
		newReq := req
		newReq.ID = 0
		newReq.PlanID = newPlanID
		newReq.CreatedAt = zeroTime
		newReq.UpdatedAt = zeroTime
		if err := uc.requirements.Create(ctx, &newReq); err != nil {
			return err
		}
	}
	for _, mc := range graph.ManagementConsiderations {
		newMC := mc
		newMC.ID = 0
		newMC.PlanID = newPlanID
		newMC.CreatedAt = zeroTime
		newMC.UpdatedAt = zeroTime
		if err := uc.considerations.Create(ctx, &newMC); err != nil {
			return err
		}
	}
	return nil
}
