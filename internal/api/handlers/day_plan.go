package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luo-one/organizer/internal/database/models"
	"github.com/luo-one/organizer/internal/services"
)

// DayPlanHandler handles the day planner
type DayPlanHandler struct {
	planService      *services.DayPlanService
	dashboardService *services.DashboardService
}

// NewDayPlanHandler creates a new DayPlanHandler instance
func NewDayPlanHandler(planService *services.DayPlanService, dashboardService *services.DashboardService) *DayPlanHandler {
	return &DayPlanHandler{
		planService:      planService,
		dashboardService: dashboardService,
	}
}

// CreateDayPlanForm is the form posted by the add-task modal
type CreateDayPlanForm struct {
	Date        string `form:"date"`
	TaskTitle   string `form:"task_title"`
	Description string `form:"description"`
	StartTime   string `form:"start_time"`
	EndTime     string `form:"end_time"`
	Priority    string `form:"priority"`
	Category    string `form:"category"`
}

// ShowDayPlanner renders one day's tasks, stats and submissions due.
// Without a date query parameter it shows today.
// GET /day-planner?date=YYYY-MM-DD
func (h *DayPlanHandler) ShowDayPlanner(c *gin.Context) {
	date := h.dashboardService.Today()
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := services.ParseDate(raw)
		if err != nil {
			renderError(c, err)
			return
		}
		date = parsed
	}

	view, err := h.dashboardService.DayPlanner(c.Request.Context(), date)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "day_planner.html", gin.H{
		"title":            "Day Planner",
		"active":           "day-planner",
		"selectedDate":     date,
		"date":             view.Date,
		"prevDate":         date.AddDate(0, 0, -1).Format(models.DateLayout),
		"nextDate":         date.AddDate(0, 0, 1).Format(models.DateLayout),
		"tasks":            view.Tasks,
		"stats":            view.Stats,
		"submissionsToday": view.SubmissionsDue,
	})
}

// CreateDayPlan stores a pending task and returns to its day
// POST /add_day_plan
func (h *DayPlanHandler) CreateDayPlan(c *gin.Context) {
	var form CreateDayPlanForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid form data")
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), services.CreateDayPlanInput{
		Date:        form.Date,
		TaskTitle:   form.TaskTitle,
		Description: form.Description,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
		Priority:    form.Priority,
		Category:    form.Category,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create task")
		return
	}

	c.Redirect(http.StatusFound, "/day-planner?date="+url.QueryEscape(plan.Date))
}

// UpdateDayPlanStatus sets the status of one task
// POST /update_day_plan_status/:id
func (h *DayPlanHandler) UpdateDayPlanStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "day plan")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid request body")
		return
	}

	if err := h.planService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondServiceError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteDayPlan removes one task and reports its date so the page can reload it
// POST /delete_day_plan/:id
func (h *DayPlanHandler) DeleteDayPlan(c *gin.Context) {
	id, ok := parseID(c, "id", "day plan")
	if !ok {
		return
	}

	plan, err := h.planService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    plan.Date,
	})
}
