// Package http wires the HTTP surface: repositories into use cases, use
// cases into handlers, handlers into routes.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	planUsecases "myra/internal/application/plan/usecases"
	zoneUsecases "myra/internal/application/zone/usecases"
	"myra/internal/domain/agreement"
	"myra/internal/infrastructure/auth"
	"myra/internal/infrastructure/config"
	"myra/internal/infrastructure/repository"
	planHandlers "myra/internal/interfaces/http/handlers/plan"
	zoneHandlers "myra/internal/interfaces/http/handlers/zone"
	"myra/internal/interfaces/http/middleware"
	"myra/internal/interfaces/http/routes"
	"myra/internal/shared/db"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

// Router holds the configured gin engine and the underlying HTTP server.
type Router struct {
	engine *gin.Engine
	server *http.Server
	logger logger.Interface
}

// NewRouter builds the full dependency graph on top of the given database
// handle and returns a router ready to run.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.ErrorHandler())

	txManager := db.NewTransactionManager(gdb)

	planRepo := repository.NewPlanRepository(gdb)
	pastureRepo := repository.NewPastureRepository(gdb)
	communityRepo := repository.NewPlantCommunityRepository(gdb)
	plantRepo := repository.NewIndicatorPlantRepository(gdb)
	communityActionRepo := repository.NewPlantCommunityActionRepository(gdb)
	areaRepo := repository.NewMonitoringAreaRepository(gdb)
	scheduleRepo := repository.NewGrazingScheduleRepository(gdb)
	issueRepo := repository.NewMinisterIssueRepository(gdb)
	requirementRepo := repository.NewAdditionalRequirementRepository(gdb)
	considerationRepo := repository.NewManagementConsiderationRepository(gdb)
	agreementRepo := repository.NewAgreementRepository(gdb)
	zoneRepo := repository.NewZoneRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)

	access := agreement.NewAccessChecker(agreementRepo)

	duplicator := planUsecases.NewDuplicatePlanUseCase(
		planRepo, pastureRepo, communityRepo, plantRepo, communityActionRepo,
		areaRepo, scheduleRepo, issueRepo, requirementRepo, considerationRepo,
		txManager, log)

	planUC := planUsecases.NewPlanUseCases(planRepo, access, duplicator, log)
	pastureUC := planUsecases.NewPastureUseCases(planRepo, access, pastureRepo, log)
	communityUC := planUsecases.NewPlantCommunityUseCases(planRepo, access, pastureRepo, communityRepo, log)
	plantUC := planUsecases.NewIndicatorPlantUseCases(planRepo, access, pastureRepo, communityRepo, plantRepo, log)
	communityActionUC := planUsecases.NewPlantCommunityActionUseCases(planRepo, access, pastureRepo, communityRepo, communityActionRepo, log)
	areaUC := planUsecases.NewMonitoringAreaUseCases(planRepo, access, pastureRepo, communityRepo, areaRepo, txManager, log)
	scheduleUC := planUsecases.NewGrazingScheduleUseCases(planRepo, access, scheduleRepo, pastureRepo, txManager, log)
	issueUC := planUsecases.NewMinisterIssueUseCases(planRepo, access, issueRepo, pastureRepo, txManager, log)
	extrasUC := planUsecases.NewPlanExtrasUseCases(planRepo, access, requirementRepo, considerationRepo, log)
	zoneUC := zoneUsecases.NewZoneUseCases(zoneRepo, userRepo, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	planRoutes := &routes.PlanRouteConfig{
		PlanHandler:           planHandlers.NewPlanHandler(planUC, log),
		PastureHandler:        planHandlers.NewPastureHandler(pastureUC, log),
		PlantCommunityHandler: planHandlers.NewPlantCommunityHandler(communityUC, plantUC, communityActionUC, log),
		MonitoringAreaHandler: planHandlers.NewMonitoringAreaHandler(areaUC, log),
		ScheduleHandler:       planHandlers.NewGrazingScheduleHandler(scheduleUC, log),
		MinisterIssueHandler:  planHandlers.NewMinisterIssueHandler(issueUC, log),
		PlanExtrasHandler:     planHandlers.NewPlanExtrasHandler(extrasUC, log),
		AuthMiddleware:        authMiddleware,
	}
	zoneRoutes := &routes.ZoneRouteConfig{
		ZoneHandler:    zoneHandlers.NewZoneHandler(zoneUC, log),
		AuthMiddleware: authMiddleware,
	}

	engine.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupPlanRoutes(engine, planRoutes)
	routes.SetupZoneRoutes(engine, zoneRoutes)

	return &Router{
		engine: engine,
		server: &http.Server{
			Addr:         cfg.Server.GetAddr(),
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger: log,
	}
}

// Run starts the HTTP server and blocks until it stops.
func (r *Router) Run() error {
	r.logger.Infow("starting http server", "addr", r.server.Addr)
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
