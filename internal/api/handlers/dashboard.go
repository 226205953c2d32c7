package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luo-one/organizer/internal/services"
)

// DashboardHandler serves the home page and search
type DashboardHandler struct {
	dashboardService *services.DashboardService
	searchService    *services.SearchService
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(dashboardService *services.DashboardService, searchService *services.SearchService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		searchService:    searchService,
	}
}

// Index renders the dashboard
// GET /
func (h *DashboardHandler) Index(c *gin.Context) {
	dashboard, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "Dashboard",
		"active":   "dashboard",
		"emails":   dashboard.Emails,
		"upcoming": dashboard.Upcoming,
		"overdue":  dashboard.Overdue,
		"stats":    dashboard.Stats,
		"now":      dashboard.Now,
	})
}

// Search renders matches for q across accounts, websites and submissions
// GET /search?q=
func (h *DashboardHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	results, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "search.html", gin.H{
		"title":       "Search",
		"active":      "search",
		"query":       results.Query,
		"emails":      results.Emails,
		"websites":    results.Websites,
		"submissions": results.Submissions,
		"empty":       results.Empty(),
	})
}
