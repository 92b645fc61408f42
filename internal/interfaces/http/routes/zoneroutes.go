package routes

import (
	"github.com/gin-gonic/gin"

	zoneHandlers "myra/internal/interfaces/http/handlers/zone"
	"myra/internal/interfaces/http/middleware"
	"myra/internal/shared/constants"
)

// ZoneRouteConfig holds dependencies for zone administration routes.
type ZoneRouteConfig struct {
	ZoneHandler    *zoneHandlers.ZoneHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupZoneRoutes configures zone routes. Listing is open to any
// authenticated staff role; reassigning a zone's range officer is
// admin only.
func SetupZoneRoutes(engine *gin.Engine, cfg *ZoneRouteConfig) {
	zones := engine.Group("/api/v1/zone")
	zones.Use(cfg.AuthMiddleware.RequireAuth())
	{
		zones.GET("", cfg.ZoneHandler.ListZones)
		zones.PUT("/:zoneId/user",
			cfg.AuthMiddleware.RequireRole(constants.RoleAdmin),
			cfg.ZoneHandler.AssignUser)
	}
}
