// Package usecases implements the application workflows for range use
// plans: resolving plans by their canonical id, checking agreement access,
// maintaining every level of the plan tree, and duplicating whole plans.
package usecases

import (
	"context"
	"fmt"
	"time"

	"myra/internal/domain/agreement"
	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
	apperrors "myra/internal/shared/errors"
)

// zeroTime resets timestamps on copied rows so the database stamps them at
// insert time.
var zeroTime time.Time

// guard bundles the two checks every plan-scoped operation performs before
// touching data: resolving the current version of the plan named in the URL,
// and verifying the caller may act on the plan's agreement.
type guard struct {
	plans  plan.Repository
	access *agreement.AccessChecker
}

// currentPlan resolves the live row for a canonical plan id. An unknown or
// unresolvable plan is a not-found error.
func (g *guard) currentPlan(ctx context.Context, canonicalID uint) (*models.PlanModel, error) {
	p, err := g.plans.FindCurrentVersion(ctx, canonicalID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("plan %d does not exist", canonicalID))
	}
	return p, nil
}

// authorize verifies the caller may act on the agreement owning the plan.
func (g *guard) authorize(ctx context.Context, user agreement.User, planID uint) error {
	agreementID, err := g.plans.AgreementIDForPlan(ctx, planID)
	if err != nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("agreement for plan %d does not exist", planID))
	}
	return g.access.CanUserAccessAgreement(ctx, user, agreementID)
}

// resolve combines currentPlan and authorize; nearly every operation starts
// with this pair.
func (g *guard) resolve(ctx context.Context, user agreement.User, canonicalID uint) (*models.PlanModel, error) {
	p, err := g.currentPlan(ctx, canonicalID)
	if err != nil {
		return nil, err
	}
	if err := g.authorize(ctx, user, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// treeGuard extends guard for operations nested below a plant community.
// It resolves the whole pasture/community ancestry named in the URL.
type treeGuard struct {
	guard
	pastures    plan.PastureRepository
	communities plan.PlantCommunityRepository
}

func (g *treeGuard) resolveCommunity(ctx context.Context, user agreement.User, planCanonicalID, pastureCanonicalID, communityCanonicalID uint) (*models.PlantCommunityModel, error) {
	p, err := g.resolve(ctx, user, planCanonicalID)
	if err != nil {
		return nil, err
	}

	pasture, err := g.pastures.FindByCanonical(ctx, p.ID, pastureCanonicalID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pasture %d does not exist", pastureCanonicalID))
	}

	community, err := g.communities.FindByCanonical(ctx, pasture.ID, communityCanonicalID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("plant community %d does not exist", communityCanonicalID))
	}
	return community, nil
}
