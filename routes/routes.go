package routes

import (
	"html/template"

	"finboard/client"
	"finboard/config"
	"finboard/controller"
	"finboard/middleware"
	"finboard/service"
	"finboard/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.SystemConfigs) *gin.Engine {
	cfgManager := config.NewConfigManager(cfg.Config)

	r := gin.New()
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.RateLimiter(cfgManager))
	r.Use(middleware.CORS(cfgManager))

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Files, "index.html")))

	// --- Clients ---
	yahooClient := client.NewYahooClient(cfg.Config)

	// --- Services (Dependency Injection) ---
	dashboardSvc := service.NewDashboardService(yahooClient)
	calendarSvc := service.NewCalendarService()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- Routes & Controllers ---
	controller.NewPageController().RegisterRoutes(&r.RouterGroup)

	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Dashboard Endpoints
		controller.NewDashboardController(dashboardSvc).RegisterRoutes(api)

		// Calendar Endpoints
		controller.NewCalendarController(calendarSvc).RegisterRoutes(api)
	}

	return r
}
