package routes

import (
	"leave-tracker-backend/internal/api/handlers"
	"leave-tracker-backend/internal/api/middleware"
	"leave-tracker-backend/internal/auth"
	"leave-tracker-backend/internal/config"
	"leave-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// APIPrefix is the global prefix of the leave API
const APIPrefix = "/v6/leave"

// Dependencies are the collaborators the HTTP layer needs
type Dependencies struct {
	Auth         *auth.AuthService
	Leave        service.LeaveServiceInterface
	Slack        service.SlackServiceInterface
	Registry     *prometheus.Registry
	HealthChecks map[string]handlers.HealthCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(deps.Registry))

	authMiddleware := auth.NewAuthMiddleware(deps.Auth, cfg.AdminRole, cfg.StaffRole)

	healthHandler := handlers.NewHealthHandler(db, deps.HealthChecks)
	leaveHandler := handlers.NewLeaveHandler(deps.Leave, deps.Slack)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Every leave endpoint requires a human staff or admin token
	leave := router.Group(APIPrefix)
	leave.Use(authMiddleware.RequireAuth())
	leave.Use(middleware.RateLimitByUser(rate.Limit(20), 40))
	leave.Use(authMiddleware.RequireLeaveAccess())
	{
		leave.POST("/dates", leaveHandler.SetLeaveDates)
		leave.PATCH("/dates", leaveHandler.SetLeaveDates)
		leave.GET("/dates", leaveHandler.GetLeaveDates)
		leave.GET("/team", leaveHandler.GetTeamLeave)
		leave.GET("/wipro-holidays", leaveHandler.GetCompanyHolidays)

		admin := leave.Group("", authMiddleware.RequireAdmin())
		{
			admin.POST("/wipro-holidays", leaveHandler.CreateCompanyHolidays)
			admin.POST("/slack/test", leaveHandler.SendSlackTestMessage)
		}
	}

	return router
}
