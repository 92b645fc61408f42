// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	planHandlers "myra/internal/interfaces/http/handlers/plan"
	"myra/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for the plan tree routes.
type PlanRouteConfig struct {
	PlanHandler           *planHandlers.PlanHandler
	PastureHandler        *planHandlers.PastureHandler
	PlantCommunityHandler *planHandlers.PlantCommunityHandler
	MonitoringAreaHandler *planHandlers.MonitoringAreaHandler
	ScheduleHandler       *planHandlers.GrazingScheduleHandler
	MinisterIssueHandler  *planHandlers.MinisterIssueHandler
	PlanExtrasHandler     *planHandlers.PlanExtrasHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// SetupPlanRoutes configures the plan tree routes. All ids in these paths are
// canonical ids; access to every route is scoped by the plan's agreement.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/api/v1/plan")
	plans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		plans.POST("", cfg.PlanHandler.CreatePlan)
		plans.GET("/:planId", cfg.PlanHandler.GetPlan)
		plans.PUT("/:planId", cfg.PlanHandler.UpdatePlan)
		plans.PUT("/:planId/status", cfg.PlanHandler.UpdatePlanStatus)
		plans.POST("/:planId/version", cfg.PlanHandler.CreateVersion)
		plans.POST("/:planId/copy", cfg.PlanHandler.CopyPlan)

		plans.POST("/:planId/pasture", cfg.PastureHandler.CreatePasture)
		plans.PUT("/:planId/pasture/:pastureId", cfg.PastureHandler.UpdatePasture)
		plans.DELETE("/:planId/pasture/:pastureId", cfg.PastureHandler.DestroyPasture)

		communities := plans.Group("/:planId/pasture/:pastureId/plant-community")
		{
			communities.POST("", cfg.PlantCommunityHandler.CreatePlantCommunity)
			communities.PUT("/:communityId", cfg.PlantCommunityHandler.UpdatePlantCommunity)
			communities.DELETE("/:communityId", cfg.PlantCommunityHandler.DestroyPlantCommunity)

			communities.POST("/:communityId/indicator-plant", cfg.PlantCommunityHandler.CreateIndicatorPlant)
			communities.PUT("/:communityId/indicator-plant/:plantId", cfg.PlantCommunityHandler.UpdateIndicatorPlant)
			communities.DELETE("/:communityId/indicator-plant/:plantId", cfg.PlantCommunityHandler.DestroyIndicatorPlant)

			communities.POST("/:communityId/action", cfg.PlantCommunityHandler.CreateAction)
			communities.PUT("/:communityId/action/:actionId", cfg.PlantCommunityHandler.UpdateAction)
			communities.DELETE("/:communityId/action/:actionId", cfg.PlantCommunityHandler.DestroyAction)

			communities.POST("/:communityId/monitoring-area", cfg.MonitoringAreaHandler.CreateMonitoringArea)
			communities.PUT("/:communityId/monitoring-area/:areaId", cfg.MonitoringAreaHandler.UpdateMonitoringArea)
			communities.DELETE("/:communityId/monitoring-area/:areaId", cfg.MonitoringAreaHandler.DestroyMonitoringArea)
		}

		plans.POST("/:planId/schedule", cfg.ScheduleHandler.CreateSchedule)
		plans.PUT("/:planId/schedule/:scheduleId", cfg.ScheduleHandler.UpdateSchedule)
		plans.DELETE("/:planId/schedule/:scheduleId", cfg.ScheduleHandler.DestroySchedule)

		plans.POST("/:planId/issue", cfg.MinisterIssueHandler.CreateIssue)
		plans.PUT("/:planId/issue/:issueId", cfg.MinisterIssueHandler.UpdateIssue)
		plans.DELETE("/:planId/issue/:issueId", cfg.MinisterIssueHandler.DestroyIssue)
		plans.POST("/:planId/issue/:issueId/action", cfg.MinisterIssueHandler.CreateAction)
		plans.PUT("/:planId/issue/:issueId/action/:actionId", cfg.MinisterIssueHandler.UpdateAction)
		plans.DELETE("/:planId/issue/:issueId/action/:actionId", cfg.MinisterIssueHandler.DestroyAction)

		plans.POST("/:planId/additional-requirement", cfg.PlanExtrasHandler.CreateAdditionalRequirement)
		plans.PUT("/:planId/additional-requirement/:requirementId", cfg.PlanExtrasHandler.UpdateAdditionalRequirement)
		plans.DELETE("/:planId/additional-requirement/:requirementId", cfg.PlanExtrasHandler.DestroyAdditionalRequirement)

		plans.POST("/:planId/management-consideration", cfg.PlanExtrasHandler.CreateManagementConsideration)
		plans.PUT("/:planId/management-consideration/:considerationId", cfg.PlanExtrasHandler.UpdateManagementConsideration)
		plans.DELETE("/:planId/management-consideration/:considerationId", cfg.PlanExtrasHandler.DestroyManagementConsideration)
	}
}
