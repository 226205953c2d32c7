package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/luo-one/organizer/internal/api/handlers"
	"github.com/luo-one/organizer/internal/api/middleware"
	"github.com/luo-one/organizer/internal/config"
	"github.com/luo-one/organizer/internal/database"
	"github.com/luo-one/organizer/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services bundles the service layer the router serves
type Services struct {
	Logs        *services.LogService
	Emails      *services.EmailAccountService
	Websites    *services.WebsiteService
	Submissions *services.SubmissionService
	Plans       *services.DayPlanService
	Dashboard   *services.DashboardService
	Search      *services.SearchService
}

// NewServices wires every service against db
func NewServices(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *Services {
	logService := services.NewLogServiceWithLevel(db, logger, cfg.LogLevel)
	return &Services{
		Logs:        logService,
		Emails:      services.NewEmailAccountService(db, logService),
		Websites:    services.NewWebsiteService(db, logService),
		Submissions: services.NewSubmissionService(db, logService),
		Plans:       services.NewDayPlanService(db, logService),
		Dashboard:   services.NewDashboardService(db),
		Search:      services.NewSearchService(db),
	}
}

// SetupRouter initializes and returns the Gin router with all routes configured
func SetupRouter(db *gorm.DB, cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	return SetupRouterWithServices(db, NewServices(db, cfg, logger), cfg, logger)
}

// SetupRouterWithServices builds the router around an existing service set
func SetupRouterWithServices(db *gorm.DB, svc *Services, cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())

	origins := cfg.GetCORSOrigins()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(origins),
		MaxAge:           12 * time.Hour,
	}))

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	static, err := staticFiles()
	if err != nil {
		return nil, err
	}
	router.StaticFS("/static", http.FS(static))

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, svc.Search)
	emailHandler := handlers.NewEmailAccountHandler(svc.Emails)
	websiteHandler := handlers.NewWebsiteHandler(svc.Websites)
	submissionHandler := handlers.NewSubmissionHandler(svc.Submissions, svc.Websites)
	planHandler := handlers.NewDayPlanHandler(svc.Plans, svc.Dashboard)

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", dashboardHandler.Index)
	router.GET("/search", dashboardHandler.Search)

	// Email accounts
	router.GET("/emails", emailHandler.ListEmailAccounts)
	router.POST("/add_email", emailHandler.CreateEmailAccount)
	router.POST("/delete_email/:id", emailHandler.DeleteEmailAccount)

	// Websites
	router.GET("/websites/:email_id", websiteHandler.ListWebsites)
	router.POST("/add_website", websiteHandler.CreateWebsite)
	router.POST("/delete_website/:id", websiteHandler.DeleteWebsite)

	// Submissions
	router.GET("/submissions", submissionHandler.ListSubmissions)
	router.POST("/add_submission", submissionHandler.CreateSubmission)
	router.POST("/update_submission_status/:id", submissionHandler.UpdateSubmissionStatus)
	router.POST("/delete_submission/:id", submissionHandler.DeleteSubmission)

	// Day planner
	router.GET("/day-planner", planHandler.ShowDayPlanner)
	router.POST("/add_day_plan", planHandler.CreateDayPlan)
	router.POST("/update_day_plan_status/:id", planHandler.UpdateDayPlanStatus)
	router.POST("/delete_day_plan/:id", planHandler.DeleteDayPlan)

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"status":  http.StatusNotFound,
			"title":   http.StatusText(http.StatusNotFound),
			"message": "Page not found",
		})
	})

	return router, nil
}

// a wildcard origin cannot be combined with credentials
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
